package glzw

import "fmt"

// Alphabet is an ordered, piecewise union of disjoint symbol ranges. It
// exposes a bijection between logical indices [0, L) and the concrete
// symbols of its member ranges, where L is the total symbol count.
//
// Alphabet is a value-level descriptor: it is built once (typically as a
// package-level var, see Binary256 and friends) and shared by reference.
// It is immutable after construction and safe for concurrent use.
type Alphabet struct {
	ranges []SymbolRange
	bounds []int // bounds[i] = sum of len(ranges[0:i]); len(bounds) == len(ranges)+1
	length int
}

// NewAlphabet builds a piecewise alphabet from one or more symbol ranges.
// Ranges must be non-empty (Hi >= Lo) and pairwise disjoint; overlapping
// ranges would make index_of ambiguous, so they are rejected here rather
// than resolved by a first-match rule.
func NewAlphabet(ranges ...SymbolRange) (*Alphabet, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: alphabet must have at least one range", ErrCodecInvalid)
	}

	for i, r := range ranges {
		if err := r.validate(); err != nil {
			return nil, err
		}
		for j := 0; j < i; j++ {
			if r.overlaps(ranges[j]) {
				return nil, fmt.Errorf("%w: alphabet ranges [%d,%d] and [%d,%d] overlap",
					ErrCodecInvalid, ranges[j].Lo, ranges[j].Hi, r.Lo, r.Hi)
			}
		}
	}

	bounds := make([]int, len(ranges)+1)
	total := 0
	for i, r := range ranges {
		bounds[i] = total
		total += r.Len()
	}
	bounds[len(ranges)] = total

	a := &Alphabet{
		ranges: append([]SymbolRange(nil), ranges...),
		bounds: bounds,
		length: total,
	}
	return a, nil
}

// MustNewAlphabet is like NewAlphabet but panics on error. Intended for
// package-level alphabet literals whose validity is a build-time
// invariant, not a runtime concern.
func MustNewAlphabet(ranges ...SymbolRange) *Alphabet {
	a, err := NewAlphabet(ranges...)
	if err != nil {
		panic(err)
	}
	return a
}

// Len reports the alphabet's total symbol count L.
func (a *Alphabet) Len() int {
	return a.length
}

// SymbolAt maps a logical index in [0, L) to its concrete symbol.
func (a *Alphabet) SymbolAt(i int) (Symbol, error) {
	if i < 0 || i >= a.length {
		return 0, fmt.Errorf("%w: index %d outside [0,%d)", ErrOutOfRange, i, a.length)
	}
	// Linear scan: alphabets in this package are always small
	// (a handful of ranges), so this stays effectively O(1).
	for j, r := range a.ranges {
		if i < a.bounds[j+1] {
			return r.Lo + Symbol(i-a.bounds[j]), nil
		}
	}
	// unreachable: bounds[len(ranges)] == length, checked above.
	panic("glzw: alphabet bounds inconsistent")
}

// IndexOf maps a concrete symbol to its logical index in [0, L).
func (a *Alphabet) IndexOf(s Symbol) (int, error) {
	for j, r := range a.ranges {
		if r.Lo <= s && s <= r.Hi {
			return a.bounds[j] + int(s-r.Lo), nil
		}
	}
	return 0, fmt.Errorf("%w: symbol %d not in alphabet", ErrOutOfRange, s)
}

// Predefined alphabets.
var (
	// Binary256 covers every byte value [0,255].
	Binary256 = MustNewAlphabet(SymbolRange{Lo: 0, Hi: 255})

	// ASCII128 covers the 7-bit ASCII range [0,127].
	ASCII128 = MustNewAlphabet(SymbolRange{Lo: 0, Hi: 127})

	// UTF16Pack covers the printable Basic Multilingual Plane, excluding
	// the UTF-16 surrogate block.
	UTF16Pack = MustNewAlphabet(
		SymbolRange{Lo: 0x0020, Hi: 0xD7FF},
		SymbolRange{Lo: 0xE000, Hi: 0xFFFF},
	)

	// URIPack covers URI-safe unreserved alphanumerics ['0'-'9','A'-'Z','a'-'z'].
	URIPack = MustNewAlphabet(
		SymbolRange{Lo: '0', Hi: '9'},
		SymbolRange{Lo: 'A', Hi: 'Z'},
		SymbolRange{Lo: 'a', Hi: 'z'},
	)
)
