package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateNormalizes(t *testing.T) {
	d := NewDate(reference, Month)
	assert.True(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC).Equal(d.Time()))
	assert.Equal(t, Month, d.Precision())
	assert.Equal(t, "2024-03", d.Format())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2345-6-7", Day)
	require.NoError(t, err)
	assert.Equal(t, "2345-06-07", d.String())
	assert.Equal(t, Day, d.Precision())

	_, err = ParseDate("not-a-date", Day)
	require.Error(t, err)
	assert.True(t, IsMalformedDate(err))
}

func TestDateShiftStaysNormalized(t *testing.T) {
	d := NewDate(reference, Month) // 2024-03
	next := d.Shift(11)            // carries into 2025

	assert.Equal(t, "2025-02", next.Format())
	assert.True(t, next.Time().Equal(Truncate(next.Time(), Month)))

	// The original value is untouched.
	assert.Equal(t, "2024-03", d.Format())
}

func TestDateClampRetruncates(t *testing.T) {
	// The winning bound carries a mid-year instant; clamping a Year-precision
	// date against it re-truncates so the result stays normalized.
	d := NewDate(time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC), Year)
	max := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	min := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	clamped := d.Clamp(min, max)
	assert.Equal(t, "2025", clamped.Format())
	assert.True(t, clamped.Time().Equal(Truncate(clamped.Time(), Year)))
}

func TestDateEqual(t *testing.T) {
	a := NewDate(reference, Day)
	b := NewDate(reference.Add(5*time.Hour), Day) // same day after truncation
	c := NewDate(reference, Month)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same instant at different precision is not equal")
}

func TestZeroDate(t *testing.T) {
	var d Date
	assert.Equal(t, Year, d.Precision())
	assert.Equal(t, "0001", d.Format())
}
