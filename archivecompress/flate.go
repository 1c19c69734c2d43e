package archivecompress

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
)

// maxDecodedBytes bounds a single decompression, guarding against a
// corrupt or hostile archive claiming an unbounded expansion ratio.
const maxDecodedBytes = 1 << 30 // 1 GiB

// FlateCodec compresses with the standard library's DEFLATE
// implementation.
type FlateCodec struct{}

var _ Codec = FlateCodec{}

// Compress implements Codec.
func (FlateCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress implements Codec.
func (FlateCodec) Decompress(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	limited := io.LimitReader(r, maxDecodedBytes+1)
	raw, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if len(raw) > maxDecodedBytes {
		return nil, fmt.Errorf("archivecompress: flate payload expands beyond %d bytes", maxDecodedBytes)
	}
	return raw, nil
}
