package gopoly

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result     interface{} `json:"result,omitempty"`
	LaTeX      string      `json:"latex,omitempty"`
	String     string      `json:"string,omitempty"`
	Error      string      `json:"error,omitempty"`
	Diagnostic string      `json:"diagnostic,omitempty"`
}

func errorResponse(err error) ToolResponse {
	resp := ToolResponse{Error: err.Error()}
	var pe *ParseError
	if errors.As(err, &pe) {
		resp.Diagnostic = pe.Diagnostic()
	}
	return resp
}

// HandleToolCall runs one tool against its params. Polynomial params may be
// given as text ("x^2 + 4x") or as the object produced by ToJSON.
func HandleToolCall(req ToolRequest) ToolResponse {
	getPoly := func(key string) (Polynomial, error) {
		v, ok := req.Params[key]
		if !ok {
			return Polynomial{}, fmt.Errorf("missing param: %s", key)
		}
		switch val := v.(type) {
		case string:
			p, err := Parse(val)
			if err != nil {
				return Polynomial{}, fmt.Errorf("param %s: %w", key, err)
			}
			return p, nil
		case map[string]interface{}:
			p, err := FromJSON(val)
			if err != nil {
				return Polynomial{}, fmt.Errorf("param %s: %w", key, err)
			}
			return p, nil
		}
		return Polynomial{}, fmt.Errorf("param %s must be a string or polynomial object", key)
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return f, nil
	}
	respond := func(p Polynomial) ToolResponse {
		return ToolResponse{Result: p.toJSON(), LaTeX: p.LaTeX(), String: p.String()}
	}

	switch req.Tool {
	case "parse":
		p, err := getPoly("poly")
		if err != nil {
			return errorResponse(err)
		}
		return respond(p)

	case "product":
		s, err := getString("text")
		if err != nil {
			return errorResponse(err)
		}
		p, err := ParseProduct(s)
		if err != nil {
			return errorResponse(err)
		}
		return respond(p.Normalize())

	case "simplify":
		p, err := getPoly("poly")
		if err != nil {
			return errorResponse(err)
		}
		return respond(p.Simplify())

	case "organize":
		p, err := getPoly("poly")
		if err != nil {
			return errorResponse(err)
		}
		return respond(p.Organize())

	case "normalize":
		p, err := getPoly("poly")
		if err != nil {
			return errorResponse(err)
		}
		return respond(p.Normalize())

	case "multiply":
		a, err := getPoly("a")
		if err != nil {
			return errorResponse(err)
		}
		b, err := getPoly("b")
		if err != nil {
			return errorResponse(err)
		}
		return respond(Multiply(a, b))

	case "render":
		p, err := getPoly("poly")
		if err != nil {
			return errorResponse(err)
		}
		return ToolResponse{Result: p.Pretty(), LaTeX: p.LaTeX(), String: p.String()}

	case "eval":
		p, err := getPoly("poly")
		if err != nil {
			return errorResponse(err)
		}
		x, err := getNumber("x")
		if err != nil {
			return errorResponse(err)
		}
		v := p.Eval(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ToolResponse{Error: fmt.Sprintf("value at x=%s is not a finite real number", formatFloat(x))}
		}
		return ToolResponse{Result: v, String: formatFloat(v)}

	case "degree":
		p, err := getPoly("poly")
		if err != nil {
			return errorResponse(err)
		}
		d, ok := p.Degree()
		if !ok {
			return ToolResponse{Error: "polynomial has no nonzero terms"}
		}
		return ToolResponse{Result: d, String: formatFloat(d)}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	poly := map[string]string{"poly": "string|object"}
	tools := []map[string]interface{}{
		ts("parse", "Parse a polynomial in x into terms, in input order", []string{"poly"}, poly),
		ts("product", "Parse and multiply parenthesized factors: (x+1)(x-1)", []string{"text"}, map[string]string{"text": "string"}),
		ts("simplify", "Merge terms with equal exponents and drop zero terms", []string{"poly"}, poly),
		ts("organize", "Order terms by exponent, descending (stable)", []string{"poly"}, poly),
		ts("normalize", "Simplify then organize", []string{"poly"}, poly),
		ts("multiply", "Multiply two polynomials a*b", []string{"a", "b"}, map[string]string{"a": "string|object", "b": "string|object"}),
		ts("render", "Render canonical, human-friendly and LaTeX text", []string{"poly"}, poly),
		ts("eval", "Evaluate at x. Requires x (number)", []string{"poly", "x"}, map[string]string{"poly": "string|object", "x": "number"}),
		ts("degree", "Largest exponent among nonzero terms", []string{"poly"}, poly),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
