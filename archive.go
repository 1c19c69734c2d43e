package glzw

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/mmoraru/glzw/archivecompress"
)

const (
	archiveMagic   = "GLZW"
	archiveVersion = uint16(1)

	// maxArchiveSymbols bounds how many symbols a single archive may
	// claim to carry, guarding against a corrupt length field driving an
	// unbounded allocation before the checksum has even been checked.
	maxArchiveSymbols = 1 << 32
	maxPayloadBytes   = 1 << 30 // 1 GiB
)

// MarshalArchive packs packed (the output of Encode) into a
// self-describing byte container: magic, version, transport tag,
// varint-encoded symbol stream, and a trailing checksum.
// transport names a registered archivecompress.Codec ("none", "flate",
// "lz4", "s2", "zstd") applied to the symbol section; an empty name uses
// the Codec's configured default (see WithArchiveTransport).
func (c *Codec) MarshalArchive(packed []Symbol, transport string) ([]byte, error) {
	if transport == "" {
		transport = c.transport
	}
	tag, codec, err := archivecompress.Lookup(transport)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecInvalid, err)
	}

	raw := make([]byte, 0, len(packed)*2)
	var varintBuf [binary.MaxVarintLen64]byte
	for _, s := range packed {
		idx, err := c.pack.IndexOf(s)
		if err != nil {
			return nil, err
		}
		n := binary.PutUvarint(varintBuf[:], uint64(idx))
		raw = append(raw, varintBuf[:n]...)
	}

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(archiveMagic)

	var u16 [2]byte
	binary.LittleEndian.PutUint16(u16[:], archiveVersion)
	buf.Write(u16[:])

	buf.WriteByte(byte(tag))

	n := binary.PutUvarint(varintBuf[:], uint64(len(packed)))
	buf.Write(varintBuf[:n])

	n = binary.PutUvarint(varintBuf[:], uint64(len(payload)))
	buf.Write(varintBuf[:n])

	buf.Write(payload)

	checksum := xxhash.Sum64(buf.Bytes())
	var u64 [8]byte
	binary.LittleEndian.PutUint64(u64[:], checksum)
	buf.Write(u64[:])

	return buf.Bytes(), nil
}

// UnmarshalArchive is the inverse of MarshalArchive: it validates magic,
// version and checksum before trusting any framed length, then decodes
// the symbol stream back through c's pack alphabet.
func (c *Codec) UnmarshalArchive(data []byte) ([]Symbol, error) {
	if len(data) < len(archiveMagic)+2+1 {
		return nil, fmt.Errorf("%w: archive shorter than fixed header", ErrTruncated)
	}

	if string(data[:len(archiveMagic)]) != archiveMagic {
		return nil, fmt.Errorf("%w: bad archive magic", ErrCorrupt)
	}
	rest := data[len(archiveMagic):]

	version := binary.LittleEndian.Uint16(rest[:2])
	if version != archiveVersion {
		return nil, fmt.Errorf("%w: unsupported archive version %d", ErrCorrupt, version)
	}
	rest = rest[2:]

	tag := archivecompress.Tag(rest[0])
	rest = rest[1:]

	symCount, n := binary.Uvarint(rest)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad symbol-count field", ErrCorrupt)
	}
	if symCount > maxArchiveSymbols {
		return nil, fmt.Errorf("%w: symbol count %d exceeds limit", ErrCorrupt, symCount)
	}
	rest = rest[n:]

	payloadLen, n := binary.Uvarint(rest)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad payload-length field", ErrCorrupt)
	}
	if payloadLen > maxPayloadBytes {
		return nil, fmt.Errorf("%w: payload length %d exceeds limit", ErrCorrupt, payloadLen)
	}
	rest = rest[n:]

	if uint64(len(rest)) < payloadLen+8 {
		return nil, fmt.Errorf("%w: archive truncated before payload and checksum", ErrTruncated)
	}
	payload := rest[:payloadLen]
	checksumBytes := rest[payloadLen : payloadLen+8]
	if len(rest) != int(payloadLen)+8 {
		return nil, fmt.Errorf("%w: trailing bytes after checksum", ErrCorrupt)
	}

	framed := data[:len(data)-8]
	wantChecksum := binary.LittleEndian.Uint64(checksumBytes)
	if xxhash.Sum64(framed) != wantChecksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	codec, err := archivecompress.ByTag(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: transport decompression failed: %v", ErrCorrupt, err)
	}

	// Every encoded symbol consumes at least one byte of raw, so len(raw)
	// is a tighter, cheaply-known cap than trusting symCount outright.
	prealloc := symCount
	if uint64(len(raw)) < prealloc {
		prealloc = uint64(len(raw))
	}
	symbols := make([]Symbol, 0, prealloc)
	for len(raw) > 0 {
		idx, n := binary.Uvarint(raw)
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad symbol varint", ErrCorrupt)
		}
		raw = raw[n:]

		s, err := c.pack.SymbolAt(int(idx))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		symbols = append(symbols, s)
	}

	if uint64(len(symbols)) != symCount {
		return nil, fmt.Errorf("%w: decoded %d symbols, header claimed %d", ErrCorrupt, len(symbols), symCount)
	}

	return symbols, nil
}
