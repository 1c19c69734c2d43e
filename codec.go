package glzw

import (
	"fmt"
	"iter"
	"sync"
)

// Codec binds an input alphabet and a pack alphabet into a ready-to-use
// LZW codec. A Codec is safe for concurrent use: its initial
// dictionaries are built once (sync.Once) and cloned per call, and it
// otherwise holds no mutable state.
type Codec struct {
	in   *Alphabet
	pack *Alphabet

	codeBufferHint int
	transport      string

	once           sync.Once
	baseEncodeMap  map[string]int
	baseEncodeNext int
	baseDecode     [][]Symbol
}

// NewCodec constructs a Codec, rejecting alphabet combinations that can
// never work regardless of input:
//   - C = log2_floor(len(pack)) must be at least 1 and at most a machine
//     word, so payload symbols carry a usable, representable bit width;
//   - len(pack) must be at least log2_ceil(len(in)), so even the
//     singleton-only code range fits in one packed symbol's width.
func NewCodec(in, pack *Alphabet, opts ...Option) (*Codec, error) {
	if in == nil || pack == nil {
		return nil, fmt.Errorf("%w: both alphabets are required", ErrCodecInvalid)
	}

	c := packCapacity(pack)
	if c < 1 {
		return nil, fmt.Errorf("%w: pack alphabet of size %d carries no usable payload bits", ErrCodecInvalid, pack.Len())
	}
	if c > wordBits {
		return nil, fmt.Errorf("%w: pack alphabet needs %d payload bits, exceeding machine word", ErrCodecInvalid, c)
	}

	need := log2Ceil(uint64(in.Len()))
	if pack.Len() < need {
		return nil, fmt.Errorf("%w: pack alphabet of size %d is too small for input alphabet of size %d (needs >= %d)",
			ErrCodecInvalid, pack.Len(), in.Len(), need)
	}

	codec := &Codec{in: in, pack: pack, transport: "none"}
	for _, opt := range opts {
		opt(codec)
	}
	return codec, nil
}

// mustNewCodec panics on construction failure. Used only for the
// package-level predefined codecs, whose alphabets are build-time
// constants known to be valid.
func mustNewCodec(in, pack *Alphabet) *Codec {
	c, err := NewCodec(in, pack)
	if err != nil {
		panic(err)
	}
	return c
}

// Predefined codecs.
var (
	// BinaryCodec maps arbitrary byte sequences to byte sequences.
	BinaryCodec = mustNewCodec(Binary256, Binary256)

	// StringCodec maps ASCII strings to ASCII strings.
	StringCodec = mustNewCodec(ASCII128, ASCII128)

	// UTF16Codec maps ASCII strings to printable-BMP UTF-16 code units.
	UTF16Codec = mustNewCodec(ASCII128, UTF16Pack)

	// URICodec maps ASCII strings to URI-safe alphanumerics.
	URICodec = mustNewCodec(ASCII128, URIPack)
)

func (c *Codec) initDicts() {
	c.once.Do(func() {
		ed := newEncodeDictionary(c.in)
		c.baseEncodeMap = ed.codes
		c.baseEncodeNext = ed.next

		dd := newDecodeDictionary(c.in)
		c.baseDecode = dd.phrases
	})
}

func (c *Codec) cloneEncodeDict() *encodeDictionary {
	c.initDicts()
	codes := make(map[string]int, len(c.baseEncodeMap)*2)
	for k, v := range c.baseEncodeMap {
		codes[k] = v
	}
	return &encodeDictionary{codes: codes, next: c.baseEncodeNext}
}

func (c *Codec) cloneDecodeDict() *decodeDictionary {
	c.initDicts()
	// Each base entry is an immutable singleton slice: decodeLZW only
	// ever appends freshly built phrases, never mutates an existing
	// entry in place, so sharing the underlying []Symbol values across
	// clones is safe.
	phrases := make([][]Symbol, len(c.baseDecode), len(c.baseDecode)*2)
	copy(phrases, c.baseDecode)
	return &decodeDictionary{phrases: phrases}
}

// Encode compresses input, a sequence of symbols drawn from c's input
// alphabet, into a sequence of symbols drawn from c's pack alphabet. An
// empty input produces an empty output with no header symbols at all.
func (c *Codec) Encode(input []Symbol) ([]Symbol, error) {
	if len(input) == 0 {
		return nil, nil
	}

	dict := c.cloneEncodeDict()
	codes, bitDepth, err := encodeLZW(input, c.in, dict)
	if err != nil {
		return nil, err
	}
	return packBits(codes, bitDepth, c.pack)
}

// Decode inverts Encode: packed is unpacked into an LZW code stream,
// whose dictionary is rebuilt on the fly to recover the original input
// symbols. An empty packed stream produces an empty output.
func (c *Codec) Decode(packed []Symbol) ([]Symbol, error) {
	if len(packed) == 0 {
		return nil, nil
	}

	codes, err := unpackBits(packed, c.pack)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, nil
	}

	dict := c.cloneDecodeDict()
	return decodeLZW(codes, dict)
}

// Appender receives a codec's output one symbol at a time, front to
// back, append-only. If Append fails the codec surfaces the error
// immediately without retry.
type Appender interface {
	Append(Symbol) error
}

// SliceAppender is an Appender backed by an in-memory slice.
type SliceAppender struct {
	Symbols []Symbol
}

// Append implements Appender.
func (a *SliceAppender) Append(s Symbol) error {
	a.Symbols = append(a.Symbols, s)
	return nil
}

// EncodeSeq is the cursor-style counterpart to Encode: input is drained
// front-to-back from a Go range-over-func iterator (the idiomatic
// modern-Go analogue of a forward input iterator) and the result is
// appended, in order, to out.
func (c *Codec) EncodeSeq(input iter.Seq[Symbol], out Appender) error {
	buf := make([]Symbol, 0, c.codeBufferHint)
	for s := range input {
		buf = append(buf, s)
	}
	packed, err := c.Encode(buf)
	if err != nil {
		return err
	}
	for _, s := range packed {
		if err := out.Append(s); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSeq is the cursor-style counterpart to Decode.
func (c *Codec) DecodeSeq(packed iter.Seq[Symbol], out Appender) error {
	buf := make([]Symbol, 0, c.codeBufferHint)
	for s := range packed {
		buf = append(buf, s)
	}
	decoded, err := c.Decode(buf)
	if err != nil {
		return err
	}
	for _, s := range decoded {
		if err := out.Append(s); err != nil {
			return err
		}
	}
	return nil
}

func stringToSymbols(s string) []Symbol {
	runes := []rune(s)
	out := make([]Symbol, len(runes))
	for i, r := range runes {
		out[i] = Symbol(r)
	}
	return out
}

func symbolsToString(syms []Symbol) string {
	runes := make([]rune, len(syms))
	for i, s := range syms {
		runes[i] = rune(s)
	}
	return string(runes)
}

func bytesToSymbols(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for i, b := range data {
		out[i] = Symbol(b)
	}
	return out
}

func symbolsToBytes(syms []Symbol) ([]byte, error) {
	out := make([]byte, len(syms))
	for i, s := range syms {
		if s < 0 || s > 255 {
			return nil, fmt.Errorf("%w: symbol %d does not fit a byte", ErrOutOfRange, s)
		}
		out[i] = byte(s)
	}
	return out, nil
}

// EncodeString is a convenience wrapper for codecs whose input alphabet
// treats runes as symbols (e.g. StringCodec, UTF16Codec, URICodec).
func (c *Codec) EncodeString(s string) (string, error) {
	packed, err := c.Encode(stringToSymbols(s))
	if err != nil {
		return "", err
	}
	return symbolsToString(packed), nil
}

// DecodeString is the inverse of EncodeString.
func (c *Codec) DecodeString(s string) (string, error) {
	out, err := c.Decode(stringToSymbols(s))
	if err != nil {
		return "", err
	}
	return symbolsToString(out), nil
}

// EncodeBytes is a convenience wrapper for byte-oriented codecs (e.g.
// BinaryCodec).
func (c *Codec) EncodeBytes(data []byte) ([]byte, error) {
	packed, err := c.Encode(bytesToSymbols(data))
	if err != nil {
		return nil, err
	}
	return symbolsToBytes(packed)
}

// DecodeBytes is the inverse of EncodeBytes.
func (c *Codec) DecodeBytes(data []byte) ([]byte, error) {
	out, err := c.Decode(bytesToSymbols(data))
	if err != nil {
		return nil, err
	}
	return symbolsToBytes(out)
}
