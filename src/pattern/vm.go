package pattern

import (
	"context"
	"errors"

	"github.com/tanema/rematch/src/conf"
)

// machine holds the state of one search: the subject and the budgets that
// bound how much work the recursion may do. It does not retain anything
// between searches.
type machine struct {
	ctx      context.Context
	src      string
	steps    int
	maxSteps int
	depth    int
	maxDepth int
	err      error
}

var (
	ErrStepBudget = errors.New("step budget exceeded")
	ErrDepthLimit = errors.New("recursion depth limit exceeded")
)

// step accounts for one atom test. It returns false once a budget is spent or
// the context is done, leaving the reason in m.err.
func (m *machine) step() bool {
	m.steps++
	if m.maxSteps > 0 && m.steps > m.maxSteps {
		m.err = ErrStepBudget
		return false
	}
	if m.ctx != nil && m.steps%conf.CANCELCHECKINTERVAL == 0 {
		if err := m.ctx.Err(); err != nil {
			m.err = err
			return false
		}
	}
	return true
}

// matchHere reports whether tokens match a prefix of the subject starting at
// sp and where that prefix ends. Unquantified atoms are consumed in a loop so
// only quantifiers add to the recursion depth.
func (m *machine) matchHere(tokens []token, sp int) (int, bool) {
	m.depth++
	defer func() { m.depth-- }()
	if m.maxDepth > 0 && m.depth > m.maxDepth {
		m.err = ErrDepthLimit
		return 0, false
	}

	for {
		if m.err != nil {
			return 0, false
		} else if len(tokens) == 0 {
			return sp, true
		}
		tok := tokens[0]
		switch tok.quant {
		case '?':
			return m.matchQuestion(tok, tokens[1:], sp)
		case '*':
			return m.matchStar(tok, tokens[1:], sp)
		case '+':
			return m.matchPlus(tok, tokens[1:], sp)
		}
		if tok.kind == atomEnd {
			return sp, sp == len(m.src)
		}
		if !m.matchOne(tok, sp) {
			return 0, false
		}
		tokens = tokens[1:]
		sp++
	}
}

func (m *machine) matchOne(tok token, sp int) bool {
	return sp < len(m.src) && m.step() && tok.matches(m.src[sp])
}

// matchStar consumes the longest run of tok and then gives characters back one
// at a time until the rest of the pattern matches, down to zero repetitions.
func (m *machine) matchStar(tok token, rest []token, sp int) (int, bool) {
	n := sp
	for m.matchOne(tok, n) {
		n++
	}
	for ; n >= sp; n-- {
		if end, ok := m.matchHere(rest, n); ok {
			return end, true
		} else if m.err != nil {
			return 0, false
		}
	}
	return 0, false
}

func (m *machine) matchPlus(tok token, rest []token, sp int) (int, bool) {
	if !m.matchOne(tok, sp) {
		return 0, false
	}
	return m.matchStar(tok, rest, sp+1)
}

// matchQuestion prefers skipping tok and only consumes it when the rest of the
// pattern cannot match without it.
func (m *machine) matchQuestion(tok token, rest []token, sp int) (int, bool) {
	if end, ok := m.matchHere(rest, sp); ok {
		return end, true
	} else if m.err != nil {
		return 0, false
	}
	if !m.matchOne(tok, sp) {
		return 0, false
	}
	return m.matchHere(rest, sp+1)
}
