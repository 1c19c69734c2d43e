package glzw

import "fmt"

// packCapacity returns C = log2_floor(L), the number of bits each pack
// symbol's payload carries.
func packCapacity(pack *Alphabet) int {
	return log2Floor(uint64(pack.Len()))
}

// packBits densely packs codes, each bitDepth bits wide, into symbols of
// the pack alphabet: two header symbols (bit depth, dead bits) followed
// by ceil(bitDepth*len(codes)/C) payload symbols, each carrying C bits
// of the little-endian concatenated code bitstream.
func packBits(codes []uint64, bitDepth int, pack *Alphabet) ([]Symbol, error) {
	c := packCapacity(pack)
	if bitDepth < 1 || bitDepth > wordBits {
		return nil, fmt.Errorf("%w: bit depth %d outside [1,%d]", ErrCapacityExceeded, bitDepth, wordBits)
	}
	if bitDepth >= pack.Len() {
		return nil, fmt.Errorf("%w: bit depth %d does not fit pack alphabet of size %d", ErrCapacityExceeded, bitDepth, pack.Len())
	}

	bitsNeeded := bitDepth * len(codes)
	payloadSymbols := 0
	if bitsNeeded > 0 {
		payloadSymbols = (bitsNeeded-1)/c + 1
	}
	deadBits := payloadSymbols*c - bitsNeeded

	out := make([]Symbol, 0, 2+payloadSymbols)

	hdr1, err := pack.SymbolAt(bitDepth)
	if err != nil {
		return nil, err
	}
	hdr2, err := pack.SymbolAt(deadBits)
	if err != nil {
		return nil, err
	}
	out = append(out, hdr1, hdr2)

	symbolDone := 0
	var symbolAcc uint64

	appendSymbol := func() error {
		s, err := pack.SymbolAt(int(symbolAcc))
		if err != nil {
			return err
		}
		out = append(out, s)
		symbolDone, symbolAcc = 0, 0
		return nil
	}

	for _, code := range codes {
		for codeDone := 0; codeDone < bitDepth; {
			symbolLeft := c - symbolDone
			codeLeft := bitDepth - codeDone
			bitsToWrite := min(symbolLeft, codeLeft)

			mask := code >> uint(codeDone)
			mask &= (uint64(1) << uint(bitsToWrite)) - 1
			mask <<= uint(symbolDone)

			symbolAcc |= mask

			codeDone += bitsToWrite
			symbolDone += bitsToWrite

			if symbolDone == c {
				if err := appendSymbol(); err != nil {
					return nil, err
				}
			}
		}
	}

	if symbolDone != 0 {
		if err := appendSymbol(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// unpackBits is the inverse of packBits: it reads the two header symbols
// and unpacks exactly (n*C - deadBits) / bitDepth codes from the
// remaining payload. Termination is driven purely by that count, never
// by an early-exit heuristic on the current symbol's remaining bits.
func unpackBits(packed []Symbol, pack *Alphabet) ([]uint64, error) {
	if len(packed) == 0 {
		return nil, nil
	}

	c := packCapacity(pack)

	bitDepth, err := pack.IndexOf(packed[0])
	if err != nil {
		return nil, err
	}
	if len(packed) < 2 {
		return nil, fmt.Errorf("%w: missing dead-bits header symbol", ErrTruncated)
	}
	deadBits, err := pack.IndexOf(packed[1])
	if err != nil {
		return nil, err
	}
	if bitDepth < 1 {
		return nil, fmt.Errorf("%w: bit depth %d is not positive", ErrCorrupt, bitDepth)
	}

	payload := packed[2:]
	n := len(payload)
	payloadBits := n * c
	if payloadBits < deadBits {
		return nil, fmt.Errorf("%w: dead bits %d exceed payload capacity %d", ErrCorrupt, deadBits, payloadBits)
	}
	usableBits := payloadBits - deadBits
	if usableBits%bitDepth != 0 {
		return nil, fmt.Errorf("%w: payload of %d usable bits is not a multiple of bit depth %d", ErrCorrupt, usableBits, bitDepth)
	}
	outLen := usableBits / bitDepth
	if n > 0 && outLen == 0 {
		return nil, fmt.Errorf("%w: non-empty payload decodes to zero codes", ErrCorrupt)
	}

	out := make([]uint64, 0, outLen)

	// symbolDone == c means the current chunk is exhausted (or none has
	// been loaded yet); the next bit request lazily advances to the
	// next payload symbol. Fetching only when bits are actually still
	// needed (rather than eagerly after filling a chunk) avoids an
	// off-by-one over-read: a code that ends exactly on a chunk
	// boundary never triggers a spurious fetch of the next one.
	symbolDone := c
	var chunk int
	symbolIdx := 0

	for len(out) < outLen {
		var codeAcc uint64
		codeDone := 0

		for codeDone < bitDepth {
			if symbolDone == c {
				if symbolIdx >= n {
					return nil, fmt.Errorf("%w: payload exhausted before expected code count", ErrCorrupt)
				}
				v, err := pack.IndexOf(payload[symbolIdx])
				if err != nil {
					return nil, err
				}
				chunk = v
				symbolIdx++
				symbolDone = 0
			}

			symbolLeft := c - symbolDone
			codeLeft := bitDepth - codeDone
			bitsToRead := min(symbolLeft, codeLeft)

			data := uint64(chunk) >> uint(symbolDone)
			data &= (uint64(1) << uint(bitsToRead)) - 1
			data <<= uint(codeDone)

			codeAcc |= data

			codeDone += bitsToRead
			symbolDone += bitsToRead
		}

		out = append(out, codeAcc)
	}

	return out, nil
}
