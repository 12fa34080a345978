package gopoly

import (
	"strconv"
	"strings"
	"unicode"
)

// ============================================================
// Grammar
// ============================================================

type mode uint8

const (
	modeNumber   mode = 1 << iota // digit or '.'
	modeVariable                  // 'x' or 'X'
	modeOperator                  // '+' or '-'
	modeCaret                     // '^'
)

// modeSet is a bit set of modes.
type modeSet = mode

// follows maps a mode to the modes allowed to come next.
var follows = map[mode]modeSet{
	modeNumber:   modeNumber | modeOperator | modeVariable | modeCaret,
	modeVariable: modeOperator | modeCaret,
	modeOperator: modeNumber | modeOperator | modeVariable,
	modeCaret:    modeNumber | modeOperator | modeCaret,
}

// startModes may open the input. A leading '+' is accepted by the grammar but
// fails later as an empty number.
const startModes = modeNumber | modeVariable | modeOperator

func classify(c rune) (mode, bool) {
	switch {
	case c == '^':
		return modeCaret, true
	case c == 'x' || c == 'X':
		return modeVariable, true
	case c == '+' || c == '-':
		return modeOperator, true
	case c == '.' || (c >= '0' && c <= '9'):
		return modeNumber, true
	}
	return 0, false
}

// ============================================================
// Term accumulator
// ============================================================

type expState uint8

const (
	expNone     expState = iota // no variable yet
	expImplicit                 // variable seen, power one
	expPending                  // caret seen, exponent digits expected
)

type termBuilder struct {
	digits   strings.Builder
	coeff    float64
	hasCoeff bool
	exp      expState
}

func (b *termBuilder) reset() {
	b.digits.Reset()
	b.coeff, b.hasCoeff, b.exp = 0, false, expNone
}

// number parses and clears the digit buffer.
func (b *termBuilder) number() (float64, bool) {
	v, err := strconv.ParseFloat(b.digits.String(), 64)
	b.digits.Reset()
	return v, err == nil
}

func signed(v float64, negative bool) float64 {
	if negative {
		return -v
	}
	return v
}

// ============================================================
// Parse
// ============================================================

// Parse reads a polynomial in x, e.g. "3x^3 + 33.2 - 4x + -16.998x^33.3".
// Terms are returned in input order; call Simplify and Organize as needed.
func Parse(s string) (Polynomial, error) {
	if strings.TrimSpace(s) == "" {
		return Polynomial{}, &ParseError{Kind: EmptyInput, Input: s}
	}

	var (
		terms    []Term
		b        termBuilder
		expected = startModes
		negative bool // sign for the next number
	)

	// The trailing '+' flushes the last term through the operator path.
	input := []rune(s + "+")
	last := len(input) - 1

	for i, c := range input {
		if unicode.IsSpace(c) {
			continue
		}

		m, ok := classify(c)
		if !ok || expected&m == 0 {
			return Polynomial{}, unexpected(s, i, c)
		}
		expected = follows[m]

		switch m {
		case modeNumber:
			b.digits.WriteRune(c)

		case modeVariable:
			if b.hasCoeff {
				return Polynomial{}, unexpected(s, i, c)
			}
			if b.digits.Len() == 0 {
				b.digits.WriteByte('1')
			}
			v, ok := b.number()
			if !ok {
				return Polynomial{}, unexpected(s, i, c)
			}
			b.coeff, b.hasCoeff, b.exp = signed(v, negative), true, expImplicit
			negative = false

		case modeCaret:
			if !b.hasCoeff || b.exp != expImplicit {
				return Polynomial{}, unexpected(s, i, c)
			}
			b.exp = expPending

		case modeOperator:
			minus := c == '-'
			var t Term

			switch {
			case !b.hasCoeff:
				if b.digits.Len() == 0 && minus {
					negative = true
					continue
				}
				v, ok := b.number()
				if !ok {
					return Polynomial{}, unexpected(s, i, c)
				}
				t = Term{Coeff: signed(v, negative), Exp: 0}

			case b.exp == expPending:
				if b.digits.Len() == 0 {
					negative = minus
					continue
				}
				v, ok := b.number()
				if !ok {
					return Polynomial{}, unexpected(s, i, c)
				}
				t = Term{Coeff: b.coeff, Exp: signed(v, negative)}

			default:
				t = Term{Coeff: b.coeff, Exp: 1}
			}

			terms = append(terms, t)
			negative = minus
			b.reset()
		}
	}

	// "3x^" and "x^-" leave a term open after the synthetic '+'.
	if b.hasCoeff {
		return Polynomial{}, unexpected(s, last, input[last])
	}

	return Polynomial{terms: terms}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Polynomial {
	p, err := Parse(s)
	if err != nil {
		panic("gopoly: " + err.Error())
	}
	return p
}
