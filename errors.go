package gopoly

import (
	"fmt"
	"strings"
)

// ============================================================
// Parse errors
// ============================================================

// ErrorKind identifies which parse failure occurred.
type ErrorKind int

const (
	EmptyInput ErrorKind = iota
	UnexpectedCharacter
	IllegalParenthesis
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case UnexpectedCharacter:
		return "unexpected character"
	case IllegalParenthesis:
		return "illegal parenthesis"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned by Parse and ParseProduct.
//
// Index is a zero-based rune index. For Parse it counts into the input with
// the synthetic trailing '+' appended, so an error on the final term may point
// one past the last real character. Char is set for UnexpectedCharacter, Open
// for IllegalParenthesis. Input holds the text that was parsed and is used by
// Diagnostic.
type ParseError struct {
	Kind  ErrorKind
	Index int
	Char  rune
	Open  bool
	Input string
}

// Sentinels for errors.Is. They match any *ParseError of the same Kind.
var (
	ErrEmptyInput          = &ParseError{Kind: EmptyInput}
	ErrUnexpectedCharacter = &ParseError{Kind: UnexpectedCharacter}
	ErrIllegalParenthesis  = &ParseError{Kind: IllegalParenthesis}
)

func (e *ParseError) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "no polynomial found in string"
	case UnexpectedCharacter:
		return fmt.Sprintf("failure to parse, encountered character %q at index %d", e.Char, e.Index)
	case IllegalParenthesis:
		side := "close"
		if e.Open {
			side = "open"
		}
		return fmt.Sprintf("illegal %s parenthesis at index %d", side, e.Index)
	}
	return e.Kind.String()
}

func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Diagnostic renders the message, the input and a caret under the offending
// character. Blank input gets the message alone.
//
//	failure to parse, encountered character '$' at index 5
//	3x^3 $ 2
//	     ^
func (e *ParseError) Diagnostic() string {
	if strings.TrimSpace(e.Input) == "" {
		return e.Error()
	}
	return e.Error() + "\n" + e.Input + "\n" + strings.Repeat(" ", e.Index) + "^"
}

func unexpected(input string, i int, c rune) *ParseError {
	return &ParseError{Kind: UnexpectedCharacter, Index: i, Char: c, Input: input}
}

func illegalParen(input string, i int, open bool) *ParseError {
	return &ParseError{Kind: IllegalParenthesis, Index: i, Open: open, Input: input}
}
