package gopoly

import (
	"errors"
	"strings"
	"unicode"
)

// ============================================================
// Products of factors
// ============================================================

// ParseProduct reads a product of parenthesized factors such as
// "(3x^3 + x^2 + 26x - 5)(x^2 + 4x)(x^16 - 12x^9 + -2)" and multiplies them
// together. Text without parentheses is parsed as a single factor. The result
// is simplified and organized. Error indices point into s.
func ParseProduct(s string) (Polynomial, error) {
	if strings.TrimSpace(s) == "" {
		return Polynomial{}, &ParseError{Kind: EmptyInput, Input: s}
	}
	if !strings.ContainsAny(s, "()") {
		p, err := Parse(s)
		if err != nil {
			return Polynomial{}, err
		}
		return p.Normalize(), nil
	}

	var (
		build = One()
		open  bool
		start int // rune index of the open parenthesis
		from  int // byte offset just past it
	)

	runeIdx := 0
	for byteIdx, c := range s {
		switch {
		case c == '(' && open:
			return Polynomial{}, illegalParen(s, runeIdx, true)
		case c == ')' && !open:
			return Polynomial{}, illegalParen(s, runeIdx, false)
		case c == '(':
			open, start, from = true, runeIdx, byteIdx+1
		case c == ')':
			open = false
			factor, err := Parse(s[from:byteIdx])
			if err != nil {
				return Polynomial{}, rebase(err, s, start+1)
			}
			build = Multiply(build, factor)
		case !open && !unicode.IsSpace(c):
			return Polynomial{}, unexpected(s, runeIdx, c)
		}
		runeIdx++
	}

	if open {
		return Polynomial{}, illegalParen(s, start, true)
	}
	return build, nil
}

// rebase shifts a factor's parse error so it points into the whole input.
func rebase(err error, s string, offset int) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	out := *pe
	out.Input = s
	// The factor's end, including its synthetic '+', is the closing
	// parenthesis in s. An empty factor keeps EmptyInput and points there too.
	n := len([]rune(pe.Input))
	if out.Kind == EmptyInput {
		out.Index = n
	} else if out.Index >= n {
		out.Char = ')'
	}
	out.Index += offset
	return &out
}
