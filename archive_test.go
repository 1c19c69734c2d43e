package glzw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTripEveryTransport(t *testing.T) {
	packed, err := StringCodec.Encode(stringToSymbols("ARCHIVE ROUND TRIP ARCHIVE ROUND TRIP ARCHIVE ROUND TRIP"))
	require.NoError(t, err)

	for _, transport := range []string{"none", "flate", "lz4", "s2", "zstd"} {
		t.Run(transport, func(t *testing.T) {
			data, err := StringCodec.MarshalArchive(packed, transport)
			require.NoError(t, err)
			require.True(t, len(data) > 0)

			back, err := StringCodec.UnmarshalArchive(data)
			require.NoError(t, err)
			require.Equal(t, packed, back)
		})
	}
}

func TestArchiveDefaultTransportOption(t *testing.T) {
	codec, err := NewCodec(ASCII128, ASCII128, WithArchiveTransport("zstd"))
	require.NoError(t, err)

	packed, err := codec.Encode(stringToSymbols("DEFAULT TRANSPORT OPTION DEFAULT TRANSPORT OPTION"))
	require.NoError(t, err)

	data, err := codec.MarshalArchive(packed, "")
	require.NoError(t, err)

	back, err := codec.UnmarshalArchive(data)
	require.NoError(t, err)
	require.Equal(t, packed, back)
}

func TestArchiveRejectsUnknownTransport(t *testing.T) {
	_, err := StringCodec.MarshalArchive([]Symbol{'A'}, "bogus")
	require.ErrorIs(t, err, ErrCodecInvalid)
}

func TestArchiveRejectsBadMagic(t *testing.T) {
	packed, err := StringCodec.Encode(stringToSymbols("MAGIC"))
	require.NoError(t, err)
	data, err := StringCodec.MarshalArchive(packed, "none")
	require.NoError(t, err)

	data[0] ^= 0xFF

	_, err = StringCodec.UnmarshalArchive(data)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestArchiveDetectsChecksumCorruption(t *testing.T) {
	packed, err := StringCodec.Encode(stringToSymbols("CHECKSUM GUARD CHECKSUM GUARD"))
	require.NoError(t, err)
	data, err := StringCodec.MarshalArchive(packed, "none")
	require.NoError(t, err)

	// Flip the last payload byte, just before the checksum trailer, leaving
	// the trailer untouched so only content/checksum mismatch is exercised.
	data[len(data)-9] ^= 0xFF

	_, err = StringCodec.UnmarshalArchive(data)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestArchiveRejectsTruncatedHeader(t *testing.T) {
	_, err := StringCodec.UnmarshalArchive([]byte("GL"))
	require.ErrorIs(t, err, ErrTruncated)
}

func TestArchiveRejectsUnsupportedVersion(t *testing.T) {
	packed, err := StringCodec.Encode(stringToSymbols("VERSION"))
	require.NoError(t, err)
	data, err := StringCodec.MarshalArchive(packed, "none")
	require.NoError(t, err)

	data[4] = 0xFF // version low byte, little-endian

	_, err = StringCodec.UnmarshalArchive(data)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestArchiveEmptyPackedStream(t *testing.T) {
	data, err := StringCodec.MarshalArchive(nil, "none")
	require.NoError(t, err)

	back, err := StringCodec.UnmarshalArchive(data)
	require.NoError(t, err)
	require.Empty(t, back)
}
