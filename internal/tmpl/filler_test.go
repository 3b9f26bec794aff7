package tmpl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveLiteral(t *testing.T) {
	require.Equal(t, "plain", resolve(Lit("plain")))
	require.Equal(t, 42, resolve(Lit(42)))
	require.Nil(t, resolve(Lit(nil)))
}

func TestResolveProducer(t *testing.T) {
	calls := 0
	p := Producer(func() any {
		calls++
		return calls
	})

	require.Equal(t, 1, resolve(p))
	require.Equal(t, 2, resolve(p))
	require.Equal(t, 2, calls)
}

func TestResolveNilProducer(t *testing.T) {
	var p Producer
	require.Nil(t, resolve(p))
}

func TestFillerIsSealed(t *testing.T) {
	// Both union members satisfy the interface; resolution covers each arm.
	var fs []Filler
	fs = append(fs, Lit("a"), Producer(func() any { return "b" }))
	require.Equal(t, "a", resolve(fs[0]))
	require.Equal(t, "b", resolve(fs[1]))
}
