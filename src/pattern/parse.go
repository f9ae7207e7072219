package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tanema/rematch/src/rerrors"
)

type (
	atomKind uint8
	// token is one atom of a pattern with the quantifier that trails it, if any.
	token struct {
		kind  atomKind
		ch    byte
		class *setClass
		quant byte
	}
	// setClass is a bracket expression. Members are kept as a 256 bit set and
	// negation is applied on lookup.
	setClass struct {
		isNot bool
		set   [4]uint64
		src   string
	}
)

const (
	atomChar atomKind = iota
	atomEscaped
	atomDot
	atomClass
	atomEnd
)

var (
	ErrUnterminatedClass  = errors.New("unterminated character class")
	ErrDanglingQuantifier = errors.New("quantifier does not follow an atom")
	ErrTrailingEscape     = errors.New("trailing escape")
)

func isQuantifier(ch byte) bool {
	return ch == '*' || ch == '+' || ch == '?'
}

// tokenize splits a pattern into atoms. When head is false a leading '^' is an
// ordinary literal. Malformed constructs degrade to literals unless strict
// is set, in which case they are rejected.
func tokenize(src string, head, strict bool) ([]token, bool, error) {
	tokens := []token{}
	anchored := false
	i := 0
	if head && len(src) > 0 && src[0] == '^' {
		anchored = true
		i++
	}
	for i < len(src) {
		ch := src[i]
		var tok token
		switch {
		case ch == '\\':
			if i+1 >= len(src) {
				if strict {
					return nil, anchored, syntaxErr(src, i, ErrTrailingEscape)
				}
				tok = token{kind: atomChar, ch: ch}
				i++
				break
			}
			tok = token{kind: atomEscaped, ch: src[i+1]}
			i += 2
		case ch == '.':
			tok = token{kind: atomDot, ch: ch}
			i++
		case ch == '[':
			cls, next, ok := parseClass(src, i)
			if !ok {
				if strict {
					return nil, anchored, syntaxErr(src, i, ErrUnterminatedClass)
				}
				tok = token{kind: atomChar, ch: ch}
				i++
				break
			}
			tok = token{kind: atomClass, ch: ch, class: cls}
			i = next
		case ch == '$' && i == len(src)-1:
			tok = token{kind: atomEnd, ch: ch}
			i++
		case isQuantifier(ch):
			if strict {
				return nil, anchored, syntaxErr(src, i, ErrDanglingQuantifier)
			}
			tok = token{kind: atomChar, ch: ch}
			i++
		default:
			tok = token{kind: atomChar, ch: ch}
			i++
		}
		if i < len(src) && isQuantifier(src[i]) {
			tok.quant = src[i]
			i++
		}
		tokens = append(tokens, tok)
	}
	return tokens, anchored, nil
}

func syntaxErr(src string, offset int, err error) error {
	return &rerrors.Error{
		Kind:    rerrors.PatternErr,
		Pattern: src,
		Offset:  offset,
		Err:     err,
	}
}

// parseClass reads the bracket expression that opens at src[start] and returns
// it along with the index just past its closing ']'. A ']' right after the
// opening bracket (or '^') is a member, not the terminator.
func parseClass(src string, start int) (*setClass, int, bool) {
	cls := &setClass{}
	i := start + 1
	if i < len(src) && src[i] == '^' {
		cls.isNot = true
		i++
	}
	first := true
	for i < len(src) {
		ch := src[i]
		if ch == ']' && !first {
			cls.src = src[start : i+1]
			return cls, i + 1, true
		}
		if i+2 < len(src) && src[i+1] == '-' && src[i+2] != ']' && src[i+2] >= ch {
			for c := int(ch); c <= int(src[i+2]); c++ {
				cls.add(byte(c))
			}
			i += 3
		} else {
			cls.add(ch)
			i++
		}
		first = false
	}
	return nil, len(src), false
}

func (cls *setClass) add(ch byte) { cls.set[ch>>6] |= 1 << (ch & 63) }

func (cls *setClass) matches(ch byte) bool {
	return (cls.set[ch>>6]&(1<<(ch&63)) != 0) != cls.isNot
}

func (cls *setClass) String() string { return cls.src }

func (tok token) matches(ch byte) bool {
	switch tok.kind {
	case atomDot:
		return true
	case atomClass:
		return tok.class.matches(ch)
	case atomEnd:
		return false
	default:
		return tok.ch == ch
	}
}

func (tok token) String() string {
	var atom string
	switch tok.kind {
	case atomEscaped:
		atom = `\` + string(tok.ch)
	case atomClass:
		atom = tok.class.String()
	default:
		atom = string(tok.ch)
	}
	if tok.quant != 0 {
		return atom + string(tok.quant)
	}
	return atom
}

func formatTokens(tokens []token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return fmt.Sprintf("[%v]", strings.Join(parts, " "))
}
