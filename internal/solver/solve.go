package solver

import "github.com/zof-project/zof/internal/expr"

// Request carries the raw solve inputs as collected from a prompt or a
// form. Optional numerics are pointers so that "not supplied" is
// distinguishable from zero; Tolerance and MaxIterations fall back to the
// defaults when nil, everything else is required per method.
type Request struct {
	Expression    string   `json:"expression"`
	Method        Method   `json:"method"`
	A             *float64 `json:"a,omitempty"`
	B             *float64 `json:"b,omitempty"`
	X0            *float64 `json:"x0,omitempty"`
	X1            *float64 `json:"x1,omitempty"`
	Delta         *float64 `json:"delta,omitempty"`
	G             string   `json:"g,omitempty"`
	Tolerance     *float64 `json:"tolerance,omitempty"`
	MaxIterations *int     `json:"max_iterations,omitempty"`
}

// Solve is the single entry point for collaborators: it compiles the
// expression text, builds the method's parameter variant, and runs the
// driver. Failures are *expr.ParseError, *InvalidParameterError,
// *InvalidBracketError, *expr.EvalError, *DivergenceError, or
// *IterationError wrapping one of the last two.
func Solve(req Request) (*Result, error) {
	f, err := expr.Compile(req.Expression)
	if err != nil {
		return nil, err
	}

	params, err := req.params()
	if err != nil {
		return nil, err
	}

	return Find(f.Eval, params, req.settings())
}

func (r Request) settings() Settings {
	s := DefaultSettings()
	if r.Tolerance != nil {
		s.Tolerance = *r.Tolerance
	}
	if r.MaxIterations != nil {
		s.MaxIterations = *r.MaxIterations
	}
	return s
}

func (r Request) params() (MethodParams, error) {
	need := func(name string, v *float64) (float64, error) {
		if v == nil {
			return 0, &InvalidParameterError{Name: name, Reason: "required for method " + string(r.Method)}
		}
		return *v, nil
	}

	switch r.Method {
	case Bisection:
		a, err := need("a", r.A)
		if err != nil {
			return nil, err
		}
		b, err := need("b", r.B)
		if err != nil {
			return nil, err
		}
		return BisectionParams{A: a, B: b}, nil

	case RegulaFalsi:
		a, err := need("a", r.A)
		if err != nil {
			return nil, err
		}
		b, err := need("b", r.B)
		if err != nil {
			return nil, err
		}
		return RegulaFalsiParams{A: a, B: b}, nil

	case Secant:
		x0, err := need("x0", r.X0)
		if err != nil {
			return nil, err
		}
		x1, err := need("x1", r.X1)
		if err != nil {
			return nil, err
		}
		return SecantParams{X0: x0, X1: x1}, nil

	case NewtonRaphson:
		x0, err := need("x0", r.X0)
		if err != nil {
			return nil, err
		}
		return NewtonParams{X0: x0}, nil

	case FixedPoint:
		x0, err := need("x0", r.X0)
		if err != nil {
			return nil, err
		}
		if r.G == "" {
			return nil, &InvalidParameterError{Name: "g", Reason: "required for method " + string(FixedPoint)}
		}
		g, err := expr.Compile(r.G)
		if err != nil {
			return nil, err
		}
		return FixedPointParams{X0: x0, G: g.Eval}, nil

	case ModifiedSecant:
		x0, err := need("x0", r.X0)
		if err != nil {
			return nil, err
		}
		delta := DefaultDelta
		if r.Delta != nil {
			delta = *r.Delta
		}
		return ModifiedSecantParams{X0: x0, Delta: delta}, nil
	}

	return nil, &InvalidParameterError{Name: "method", Reason: "unknown method " + string(r.Method)}
}
