// Package archivecompress provides pluggable, byte-to-byte transport
// compression for a marshaled glzw archive. It is orthogonal to the LZW
// codec itself: the LZW stream already shrinks the input, and a
// transport codec here may further shrink the bytes used to serialize
// that stream.
package archivecompress

import "fmt"

// Codec compresses and decompresses an opaque byte payload.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Tag identifies a registered Codec in an archive's framing header.
type Tag uint8

// Registered transport tags.
const (
	TagNone Tag = iota
	TagFlate
	TagLZ4
	TagS2
	TagZstd
)

var byName = map[string]Tag{
	"none":  TagNone,
	"flate": TagFlate,
	"lz4":   TagLZ4,
	"s2":    TagS2,
	"zstd":  TagZstd,
}

var byTag = map[Tag]Codec{
	TagNone:  NoopCodec{},
	TagFlate: FlateCodec{},
	TagLZ4:   LZ4Codec{},
	TagS2:    S2Codec{},
	TagZstd:  ZstdCodec{},
}

// Lookup resolves a transport codec by its configured name.
func Lookup(name string) (Tag, Codec, error) {
	tag, ok := byName[name]
	if !ok {
		return 0, nil, fmt.Errorf("archivecompress: unknown transport %q", name)
	}
	return tag, byTag[tag], nil
}

// ByTag resolves a transport codec by its on-wire tag, as read back from
// a marshaled archive.
func ByTag(tag Tag) (Codec, error) {
	c, ok := byTag[tag]
	if !ok {
		return nil, fmt.Errorf("archivecompress: unknown transport tag %d", tag)
	}
	return c, nil
}
