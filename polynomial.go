// Package gopoly parses, normalizes, multiplies and renders single-variable
// polynomials with real coefficients and real exponents.
//
// Design goals:
//   - Text in, text out: "3x^3 + 33.2 - 4x + -16.998x^33.3"
//   - Value semantics: every operation returns a new Polynomial
//   - Positioned parse errors suitable for caret diagnostics
//   - JSON and MCP-ready tool surface for services and agents
package gopoly

import "math"

// ============================================================
// Term
// ============================================================

// Term is Coeff·x^Exp.
type Term struct {
	Coeff float64 `json:"coeff"`
	Exp   float64 `json:"exp"`
}

// T is shorthand for Term{Coeff: c, Exp: e}.
func T(c, e float64) Term { return Term{Coeff: c, Exp: e} }

// snapScale keeps nine decimal digits of the fractional residual.
const snapScale = 1e9

// snap removes float addition artifacts such as 0.30000000000000004 while
// keeping genuinely fractional values. Overflowed products stay infinite.
func snap(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	r := math.Round(v)
	return r + math.Round((v-r)*snapScale)/snapScale
}

func snapTerm(t Term) Term { return Term{Coeff: snap(t.Coeff), Exp: snap(t.Exp)} }

// ============================================================
// Polynomial
// ============================================================

// Polynomial is an ordered sequence of terms. Duplicate exponents and zero
// coefficients are allowed; Simplify and Organize produce the stronger forms.
type Polynomial struct{ terms []Term }

// New copies terms into a new Polynomial.
func New(terms ...Term) Polynomial {
	return Polynomial{terms: append([]Term(nil), terms...)}
}

// One is the multiplicative identity.
func One() Polynomial { return New(T(1, 0)) }

func (p Polynomial) Terms() []Term { return append([]Term(nil), p.terms...) }
func (p Polynomial) Len() int      { return len(p.terms) }

// Equal reports whether p and q hold the same terms in the same order.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i] != q.terms[i] {
			return false
		}
	}
	return true
}

// Add concatenates the term sequences of p and q. The result is not
// simplified.
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := make([]Term, 0, len(p.terms)+len(q.terms))
	out = append(out, p.terms...)
	out = append(out, q.terms...)
	return Polynomial{terms: out}
}

// Simplify merges terms with exactly equal exponents and drops zero
// coefficients. Output order follows first appearance of each exponent.
func (p Polynomial) Simplify() Polynomial {
	build := make([]Term, 0, len(p.terms))

outer:
	for _, t := range p.terms {
		if t.Coeff == 0 {
			continue
		}
		for i, b := range build {
			if b.Exp == t.Exp {
				build[i] = Term{Coeff: snap(b.Coeff + t.Coeff), Exp: t.Exp}
				continue outer
			}
		}
		build = append(build, t)
	}

	out := build[:0]
	for _, t := range build {
		if t.Coeff != 0 {
			out = append(out, t)
		}
	}
	return Polynomial{terms: out}
}

// Organize orders terms by exponent, descending. Equal exponents keep their
// input order.
func (p Polynomial) Organize() Polynomial {
	build := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		at, found := 0, false
		for i, b := range build {
			if b.Exp < t.Exp {
				at, found = i, true
				break
			}
		}
		if !found {
			build = append(build, t)
			continue
		}
		build = append(build, Term{})
		copy(build[at+1:], build[at:])
		build[at] = t
	}
	return Polynomial{terms: build}
}

// Normalize is Simplify followed by Organize.
func (p Polynomial) Normalize() Polynomial { return p.Simplify().Organize() }

// Mul returns p·q. See Multiply.
func (p Polynomial) Mul(q Polynomial) Polynomial { return Multiply(p, q) }

// Multiply convolves a and b: every pair of terms contributes the product of
// coefficients at the sum of exponents. The result is simplified and
// organized.
func Multiply(a, b Polynomial) Polynomial {
	build := make([]Term, 0, len(a.terms)*len(b.terms))
	for _, t1 := range a.terms {
		for _, t2 := range b.terms {
			build = append(build, snapTerm(Term{Coeff: t1.Coeff * t2.Coeff, Exp: t1.Exp + t2.Exp}))
		}
	}
	return Polynomial{terms: build}.Simplify().Organize()
}

// Degree returns the largest exponent among nonzero terms. ok is false when
// there are none.
func (p Polynomial) Degree() (deg float64, ok bool) {
	for _, t := range p.terms {
		if t.Coeff == 0 {
			continue
		}
		if !ok || t.Exp > deg {
			deg, ok = t.Exp, true
		}
	}
	return deg, ok
}

// Eval evaluates p at x. Fractional exponents of negative x yield NaN.
func (p Polynomial) Eval(x float64) float64 {
	sum := 0.0
	for _, t := range p.terms {
		if t.Coeff == 0 {
			continue
		}
		sum += t.Coeff * math.Pow(x, t.Exp)
	}
	return sum
}
