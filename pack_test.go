package glzw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	codes := []uint64{0, 5, 300, 1, 4095, 4095, 2}
	packed, err := packBits(codes, 12, Binary256)
	require.NoError(t, err)

	// Two header symbols plus payload.
	require.Greater(t, len(packed), 2)

	back, err := unpackBits(packed, Binary256)
	require.NoError(t, err)
	require.Equal(t, codes, back)
}

func TestPackUnpackEmptyCodeList(t *testing.T) {
	packed, err := packBits(nil, 8, Binary256)
	require.NoError(t, err)
	require.Len(t, packed, 2)

	back, err := unpackBits(packed, Binary256)
	require.NoError(t, err)
	require.Empty(t, back)
}

func TestPackUnpackNarrowPackAlphabet(t *testing.T) {
	// URIPack has 62 symbols, C = log2Floor(62) = 5 payload bits per
	// symbol: a deliberately awkward, non-power-of-two case.
	codes := []uint64{0, 1, 61, 30, 15}
	packed, err := packBits(codes, 6, URIPack)
	require.NoError(t, err)

	back, err := unpackBits(packed, URIPack)
	require.NoError(t, err)
	require.Equal(t, codes, back)
}

func TestPackRejectsBitDepthWiderThanPackAlphabet(t *testing.T) {
	// URIPack has 62 symbols, so a bit depth of 62 has no header symbol.
	_, err := packBits([]uint64{0}, URIPack.Len(), URIPack)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestUnpackTruncatedHeader(t *testing.T) {
	hdr1, err := Binary256.SymbolAt(8)
	require.NoError(t, err)
	_, err = unpackBits([]Symbol{hdr1}, Binary256)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestUnpackDeadBitsExceedPayload(t *testing.T) {
	hdr1, _ := Binary256.SymbolAt(4)
	hdr2, _ := Binary256.SymbolAt(200)
	_, err := unpackBits([]Symbol{hdr1, hdr2}, Binary256)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestUnpackNonMultipleOfBitDepth(t *testing.T) {
	// One payload symbol of 8 usable bits with bit depth 3 does not
	// divide evenly.
	hdr1, _ := Binary256.SymbolAt(3)
	hdr2, _ := Binary256.SymbolAt(0)
	sym, _ := Binary256.SymbolAt(0xFF)
	_, err := unpackBits([]Symbol{hdr1, hdr2, sym}, Binary256)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestPackCapacity(t *testing.T) {
	require.Equal(t, 8, packCapacity(Binary256))
	require.Equal(t, 7, packCapacity(ASCII128))
	require.Equal(t, 5, packCapacity(URIPack))
}
