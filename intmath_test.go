package glzw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog2Floor(t *testing.T) {
	cases := map[uint64]int{
		1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 7: 2, 8: 3, 255: 7, 256: 8, 1023: 9, 1024: 10,
	}
	for x, want := range cases {
		require.Equal(t, want, log2Floor(x), "log2Floor(%d)", x)
	}
}

func TestLog2CeilConvention(t *testing.T) {
	// log2Ceil(1) = 1 by explicit convention, not 0.
	require.Equal(t, 1, log2Ceil(1))
	require.Equal(t, 1, log2Ceil(0))
}

func TestLog2CeilPowersOfTwo(t *testing.T) {
	cases := map[uint64]int{
		2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 256: 8, 257: 9,
	}
	for x, want := range cases {
		require.Equal(t, want, log2Ceil(x), "log2Ceil(%d)", x)
	}
}
