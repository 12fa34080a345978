package gopoly

import (
	"strconv"
	"strings"
)

// ============================================================
// Rendering
// ============================================================

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// String renders p in its current term order. Zero terms are skipped and the
// rest are joined with " + ", so negative coefficients read "x^2 + -3x".
// The output parses back with Parse. An empty polynomial renders as "".
func (p Polynomial) String() string {
	parts := make([]string, 0, len(p.terms))
	for _, t := range p.terms {
		if t.Coeff == 0 {
			continue
		}
		parts = append(parts, renderTerm(t.Coeff, t.Exp, formatFloat(t.Exp)))
	}
	return strings.Join(parts, " + ")
}

func renderTerm(coeff, exp float64, expText string) string {
	var head string
	switch coeff {
	case 1:
		if exp == 0 {
			return "1"
		}
	case -1:
		if exp == 0 {
			return "-1"
		}
		head = "-"
	default:
		head = formatFloat(coeff)
		if exp == 0 {
			return head
		}
	}
	if exp == 1 {
		return head + "x"
	}
	return head + "x^" + expText
}

// Pretty renders p with subtraction for negative terms after the first:
// "x^2 - 3x + 1".
func (p Polynomial) Pretty() string { return p.joinSigned(formatFloat) }

// LaTeX renders p like Pretty with braced exponents: "3x^{2} - x + 1".
func (p Polynomial) LaTeX() string {
	s := p.joinSigned(func(e float64) string { return "{" + formatFloat(e) + "}" })
	if s == "" {
		return "0"
	}
	return s
}

func (p Polynomial) joinSigned(expText func(float64) string) string {
	var sb strings.Builder
	for _, t := range p.terms {
		if t.Coeff == 0 {
			continue
		}
		c := t.Coeff
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(renderTerm(c, t.Exp, expText(t.Exp)))
	}
	return sb.String()
}
