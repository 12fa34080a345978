package gopoly

import (
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// JSON Serialization
// ============================================================

func (p Polynomial) toJSON() map[string]interface{} {
	terms := make([]interface{}, len(p.terms))
	for i, t := range p.terms {
		terms[i] = map[string]interface{}{"coeff": t.Coeff, "exp": t.Exp}
	}
	return map[string]interface{}{"type": "poly", "terms": terms, "string": p.String()}
}

func ToJSON(p Polynomial) (string, error) {
	b, err := json.Marshal(p.toJSON())
	return string(b), err
}

// FromJSON rebuilds a polynomial from the object produced by ToJSON, as
// decoded by encoding/json into a map. The "string" field is ignored.
func FromJSON(data map[string]interface{}) (Polynomial, error) {
	if data == nil {
		return Polynomial{}, fmt.Errorf("polynomial must be an object")
	}
	typ, ok := data["type"].(string)
	if !ok || typ != "poly" {
		return Polynomial{}, fmt.Errorf("field 'type' must be \"poly\"")
	}
	raw, ok := data["terms"].([]interface{})
	if !ok {
		return Polynomial{}, fmt.Errorf("poly: \"terms\" must be an array")
	}

	number := func(i int, m map[string]interface{}, field string) (float64, error) {
		v, ok := m[field]
		if !ok {
			return 0, fmt.Errorf("poly: terms[%d]: missing %q", i, field)
		}
		f, ok := v.(float64)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("poly: terms[%d]: %q must be a finite number", i, field)
		}
		return f, nil
	}

	terms := make([]Term, len(raw))
	for i, it := range raw {
		m, ok := it.(map[string]interface{})
		if !ok {
			return Polynomial{}, fmt.Errorf("poly: terms[%d] must be an object", i)
		}
		c, err := number(i, m, "coeff")
		if err != nil {
			return Polynomial{}, err
		}
		e, err := number(i, m, "exp")
		if err != nil {
			return Polynomial{}, err
		}
		terms[i] = Term{Coeff: c, Exp: e}
	}
	return Polynomial{terms: terms}, nil
}
