package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededIsDeterministic(t *testing.T) {
	t.Parallel()

	a := NewSeeded(7, 13)
	b := NewSeeded(7, 13)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(9), b.IntN(9))
	}
}

func TestSystemStaysInBounds(t *testing.T) {
	t.Parallel()

	src := System{}
	for i := 0; i < 100; i++ {
		v := src.IntN(9)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 9)
	}
}
