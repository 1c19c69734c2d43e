package glzw

import "fmt"

// encodeLZW builds the phrase dictionary for input (a single, non-empty
// message drawn from in) and returns its LZW code stream along with the
// bit depth needed to represent every emitted code. dict is consumed
// destructively: callers that cache an initial dictionary must pass a
// fresh clone.
func encodeLZW(input []Symbol, in *Alphabet, dict *encodeDictionary) (codes []uint64, bitDepth int, err error) {
	if _, err := in.IndexOf(input[0]); err != nil {
		return nil, 0, err
	}

	phrase := []Symbol{input[0]}
	codes = make([]uint64, 0, len(input)*3/2)
	maxCode := dict.next - 1

	// emit looks up phrase's code and records it. The lookup always
	// succeeds: phrase was confirmed present in dict on the previous
	// iteration (or is the initial singleton), before the failed
	// extension that triggered this emit. No defensive re-check needed.
	emit := func(p []Symbol) {
		code, _ := dict.lookup(p)
		codes = append(codes, uint64(code))
		if code > maxCode {
			maxCode = code
		}
	}

	for i := 1; i < len(input); i++ {
		c := input[i]
		if _, err := in.IndexOf(c); err != nil {
			return nil, 0, err
		}

		extended := make([]Symbol, len(phrase)+1)
		copy(extended, phrase)
		extended[len(phrase)] = c

		if _, ok := dict.lookup(extended); ok {
			phrase = extended
			continue
		}

		dict.insert(extended)
		emit(phrase)
		phrase = []Symbol{c}
	}
	emit(phrase)

	bitDepth = log2Ceil(uint64(maxCode + 1))
	if bitDepth > wordBits {
		return nil, 0, fmt.Errorf("%w: bit depth %d needed for %d codes exceeds machine word",
			ErrCapacityExceeded, bitDepth, maxCode+1)
	}

	return codes, bitDepth, nil
}

// decodeLZW rebuilds the input symbol sequence from a non-empty LZW code
// stream, growing dict on the fly exactly as encodeLZW's dictionary grew,
// including the first-repeat ("kwkwk") edge case where a code equals the
// next code about to be assigned.
func decodeLZW(codes []uint64, dict *decodeDictionary) ([]Symbol, error) {
	first := int(codes[0])
	if first < 0 || first >= dict.len() {
		return nil, fmt.Errorf("%w: first code %d outside initial dictionary of size %d",
			ErrCorrupt, first, dict.len())
	}

	out := append([]Symbol(nil), dict.at(first)...)
	old := first

	for i := 1; i < len(codes); i++ {
		code := int(codes[i])
		prevPhrase := append([]Symbol(nil), dict.at(old)...)

		switch {
		case code < dict.len():
			entry := dict.at(code)
			out = append(out, entry...)
			newEntry := append(prevPhrase, entry[0])
			dict.append(newEntry)

		case code == dict.len():
			newEntry := append(prevPhrase, prevPhrase[0])
			out = append(out, newEntry...)
			dict.append(newEntry)

		default:
			return nil, fmt.Errorf("%w: code %d exceeds dictionary size %d", ErrCorrupt, code, dict.len())
		}

		old = code
	}

	return out, nil
}
