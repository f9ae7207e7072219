package pattern

import (
	"github.com/coregx/ahocorasick"
)

// prefilter skips the scan ahead to the next place the literal prefix of a
// pattern occurs. No match can start anywhere else.
type prefilter struct {
	auto     *ahocorasick.Automaton
	haystack []byte
	literal  []byte
}

// minPrefilterLen is the shortest literal prefix worth an automaton.
const minPrefilterLen = 2

func literalPrefix(tokens []token) []byte {
	lit := []byte{}
	for _, tok := range tokens {
		if tok.quant != 0 || (tok.kind != atomChar && tok.kind != atomEscaped) {
			break
		}
		lit = append(lit, tok.ch)
	}
	return lit
}

func newPrefilter(tokens []token, src string) *prefilter {
	lit := literalPrefix(tokens)
	if len(lit) < minPrefilterLen {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(lit)
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &prefilter{
		auto:     auto,
		haystack: []byte(src),
		literal:  lit,
	}
}

// next returns the first offset at or after at where the prefix occurs.
func (pf *prefilter) next(at int) (int, bool) {
	if at+len(pf.literal) > len(pf.haystack) {
		return 0, false
	}
	m := pf.auto.Find(pf.haystack, at)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}
