package archivecompress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances: they hold internal
// state that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// LZ4Codec compresses with LZ4 block compression.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// Compress implements Codec.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// Decompress implements Codec. Since an LZ4 block carries no header
// describing its decompressed size, the buffer is grown geometrically
// until it is large enough, capped at maxSize; a final attempt is made
// at exactly maxSize so any payload that decompresses to at most that
// size succeeds regardless of how large the compressed block is.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxSize = 128 * 1024 * 1024 // 128MB safety limit
	const minBufSize = 4096

	bufSize := len(data) * 4
	if bufSize < minBufSize {
		bufSize = minBufSize
	}
	if bufSize > maxSize {
		bufSize = maxSize
	}

	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				if bufSize > maxSize {
					bufSize = maxSize
				}
				continue
			}
			return nil, err
		}
		return buf[:n], nil
	}
}
