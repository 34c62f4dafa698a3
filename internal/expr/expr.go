// Package expr compiles textual f(x) expressions into callable functions.
//
// The vocabulary is a fixed whitelist: arithmetic operators (+ - * / ^ with
// ** as an alias), parentheses, the variable x, the functions sin, cos, tan,
// exp, log, sqrt, abs, the two-argument pow, and the constants pi and e.
// Anything else is a compile-time *ParseError; the compiled form is a pure
// tree walk with no dynamic code execution path. Runtime failures (domain
// errors, division by zero, non-finite results) surface as *EvalError.
package expr

import (
	"fmt"
	"strings"
)

// Expression is a compiled real function of one variable. It is stateless
// and safe for concurrent use.
type Expression struct {
	src  string
	root node
}

// ParseError reports a malformed or disallowed expression, detected at
// compile time before any iteration begins.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d in %q: %s", e.Pos, e.Input, e.Msg)
}

// EvalError reports that the expression is undefined at a required point.
type EvalError struct {
	X   float64
	Msg string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluation failed at x=%g: %s", e.X, e.Msg)
}

// Compile parses text into an Expression, failing fast with *ParseError on
// any syntax error or identifier outside the whitelist.
func Compile(text string) (*Expression, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &ParseError{Input: text, Pos: 0, Msg: "empty expression"}
	}

	toks, err := tokenize(trimmed)
	if err != nil {
		return nil, err
	}

	p := &parser{input: trimmed, toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, &ParseError{Input: trimmed, Pos: t.pos, Msg: fmt.Sprintf("unexpected trailing input %q", t.text)}
	}

	return &Expression{src: trimmed, root: root}, nil
}

// Eval computes the expression at x. The returned error, when non-nil, is
// always a *EvalError; callers must treat it as a possible per-call failure.
func (e *Expression) Eval(x float64) (float64, error) {
	return e.root.eval(x)
}

// Source returns the original expression text.
func (e *Expression) Source() string { return e.src }

func (e *Expression) String() string { return e.root.String() }
