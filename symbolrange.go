package glzw

import "fmt"

// Symbol is the ordinal representation shared by every alphabet in this
// package: input symbols, pack symbols, and dictionary codes all fit in
// an int64. Concrete alphabets restrict the range of values that are
// actually valid, e.g. [0,255] for bytes or [0x0020,0xD7FF]∪[0xE000,0xFFFF]
// for the printable BMP.
type Symbol int64

// SymbolRange is a non-empty contiguous interval [Lo, Hi] over Symbol.
type SymbolRange struct {
	Lo Symbol
	Hi Symbol
}

// Len reports the number of symbols in the range.
func (r SymbolRange) Len() int {
	return int(r.Hi-r.Lo) + 1
}

func (r SymbolRange) validate() error {
	if r.Hi < r.Lo {
		return fmt.Errorf("%w: symbol range [%d,%d] has hi < lo", ErrCodecInvalid, r.Lo, r.Hi)
	}
	return nil
}

func (r SymbolRange) overlaps(o SymbolRange) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}
