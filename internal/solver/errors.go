package solver

import "fmt"

// denomEpsilon bounds how small a denominator the open methods accept
// before declaring divergence instead of producing a useless huge step.
const denomEpsilon = 1e-14

// InvalidParameterError reports a missing or out-of-range input, detected
// before the first iteration.
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Name, e.Reason)
}

// InvalidBracketError reports endpoints whose function values do not have
// strictly opposite signs, so no root is guaranteed between them.
type InvalidBracketError struct {
	A, B   float64
	FA, FB float64
}

func (e *InvalidBracketError) Error() string {
	return fmt.Sprintf("invalid bracket [%g, %g]: f(a)=%g and f(b)=%g must have strictly opposite signs", e.A, e.B, e.FA, e.FB)
}

// DivergenceError reports a zero or near-zero denominator or derivative
// inside an open method's step.
type DivergenceError struct {
	Method Method
	X      float64
	Reason string
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("%s diverged at x=%g: %s", e.Method, e.X, e.Reason)
}

// IterationError wraps a failure raised inside the iteration loop together
// with the trace accumulated before it. The record at which the failure
// occurred is never appended.
type IterationError struct {
	Err   error
	Trace Trace
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("iteration %d failed: %v", len(e.Trace), e.Err)
}

func (e *IterationError) Unwrap() error { return e.Err }
