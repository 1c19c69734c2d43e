package glzw

import "strings"

// phraseKey packs a Phrase into a comparable Go string so it can key a
// map without a custom hash function. Symbol is int64-backed; each
// symbol is written as 8 raw bytes, which keeps the encoding trivially
// injective (no delimiter ambiguity) regardless of the symbols involved.
func phraseKey(phrase []Symbol) string {
	var b strings.Builder
	b.Grow(len(phrase) * 8)
	for _, s := range phrase {
		v := uint64(s)
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		b.Write(buf[:])
	}
	return b.String()
}

// encodeDictionary maps phrases to their assigned LZW code. It starts
// pre-populated with every singleton phrase of the input alphabet
// (code i for the symbol at logical index i), then grows by one entry
// per emitted code during encoding.
type encodeDictionary struct {
	codes map[string]int
	next  int
}

func newEncodeDictionary(in *Alphabet) *encodeDictionary {
	d := &encodeDictionary{
		codes: make(map[string]int, in.Len()*2),
		next:  in.Len(),
	}
	for i := 0; i < in.Len(); i++ {
		s, _ := in.SymbolAt(i) // in-range by construction
		d.codes[phraseKey([]Symbol{s})] = i
	}
	return d
}

func (d *encodeDictionary) lookup(phrase []Symbol) (int, bool) {
	code, ok := d.codes[phraseKey(phrase)]
	return code, ok
}

// insert adds phrase with the next sequential code and returns it.
func (d *encodeDictionary) insert(phrase []Symbol) int {
	code := d.next
	d.codes[phraseKey(phrase)] = code
	d.next++
	return code
}

// decodeDictionary is the mirror of encodeDictionary: an append-only,
// index-addressed table of phrases. Entry i is the phrase decode assigns
// to code i.
type decodeDictionary struct {
	phrases [][]Symbol
}

func newDecodeDictionary(in *Alphabet) *decodeDictionary {
	d := &decodeDictionary{phrases: make([][]Symbol, in.Len(), in.Len()*2)}
	for i := 0; i < in.Len(); i++ {
		s, _ := in.SymbolAt(i) // in-range by construction
		d.phrases[i] = []Symbol{s}
	}
	return d
}

func (d *decodeDictionary) len() int {
	return len(d.phrases)
}

func (d *decodeDictionary) at(code int) []Symbol {
	return d.phrases[code]
}

func (d *decodeDictionary) append(phrase []Symbol) {
	d.phrases = append(d.phrases, phrase)
}
