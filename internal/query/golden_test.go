package query

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden files pin the canonical payload encoding end to end: key order,
// string normalization, number rendering, filter normalization. Regenerate
// with: go test ./internal/query -update
func TestBuildGoldenPayloads(t *testing.T) {
	tests := []struct {
		name    string
		dataset string
		query   Query
	}{
		{
			name:    "payload_basic",
			dataset: "paleocar",
			query:   Query{Variable: "PPT", Start: "1500", End: "1600"},
		},
		{
			name:    "payload_filtered",
			dataset: "paleocar",
			query:   Query{Filter: map[string]any{"area": "12.5", "shape": "rect", "note": ""}},
		},
		{
			name:    "payload_clamped",
			dataset: "lbda",
			query:   Query{Variable: "PDSI", Start: "-200-06", End: "2020-01"},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(testDataset(t, tt.dataset),
				WithTokenGenerator(NewFixedGenerator("golden-req")))

			r, err := b.Build(tt.query)
			require.NoError(t, err)
			g.Assert(t, tt.name, r.Payload)
		})
	}
}
