package archivecompress

import "github.com/klauspost/compress/s2"

// S2Codec compresses with S2, klauspost/compress's faster Snappy
// extension. S2 frames carry their own length prefix, so unlike LZ4
// block mode no adaptive buffer growth is needed on decode.
type S2Codec struct{}

var _ Codec = S2Codec{}

// Compress implements Codec.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Encode(nil, data), nil
}

// Decompress implements Codec.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Decode(nil, data)
}
