package glzw

import "errors"

// Sentinel error kinds. Callers should test with errors.Is; every error
// this package detects itself wraps exactly one of these. Errors from a
// caller's Appender and from a transport codec's compressor are returned
// unchanged.
var (
	// ErrOutOfRange indicates an alphabet bijection was queried outside
	// its logical index range, or with a symbol outside every member
	// range.
	ErrOutOfRange = errors.New("glzw: out of range")

	// ErrCapacityExceeded indicates the encoder chose a bit depth that
	// cannot be represented: either wider than a machine word, or too
	// wide for the pack alphabet.
	ErrCapacityExceeded = errors.New("glzw: capacity exceeded")

	// ErrCodecInvalid indicates a Codec was constructed with alphabets
	// that can never work together, independent of any input.
	ErrCodecInvalid = errors.New("glzw: invalid codec")

	// ErrTruncated indicates a packed stream ended inside its two-symbol
	// header, or an archive ended before its fixed header or before its
	// declared payload and checksum.
	ErrTruncated = errors.New("glzw: truncated packed stream")

	// ErrCorrupt indicates a packed or archived stream is self-
	// inconsistent: a first code outside the initial dictionary, a code
	// gap larger than one, a payload length inconsistent with its
	// header, or an archive whose checksum or framing does not match.
	ErrCorrupt = errors.New("glzw: corrupt stream")
)
