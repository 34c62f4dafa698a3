package solver

import "math"

// newtonEngine follows the tangent line at the current estimate. The
// derivative comes from the caller when supplied, otherwise from central
// finite difference.
type newtonEngine struct {
	f     Func
	dfdx  Func
	x, fx float64
}

func (p NewtonParams) newEngine(f Func) (engine, error) {
	dfdx := p.Derivative
	if dfdx == nil {
		dfdx = func(x float64) (float64, error) {
			return Derivative(f, x, DefaultStep)
		}
	}
	return &newtonEngine{f: f, dfdx: dfdx, x: p.X0}, nil
}

func (e *newtonEngine) start() (IterationRecord, error) {
	fx, err := e.f(e.x)
	if err != nil {
		return IterationRecord{}, err
	}
	e.fx = fx
	return IterationRecord{Index: 0, X: e.x, FX: e.fx}, nil
}

func (e *newtonEngine) step(index int) (IterationRecord, error) {
	d, err := e.dfdx(e.x)
	if err != nil {
		return IterationRecord{}, err
	}
	if math.Abs(d) < denomEpsilon {
		return IterationRecord{}, &DivergenceError{
			Method: NewtonRaphson,
			X:      e.x,
			Reason: "derivative too close to zero",
		}
	}

	xNew := e.x - e.fx/d
	fNew, err := e.f(xNew)
	if err != nil {
		return IterationRecord{}, err
	}

	approx := relativeError(xNew, e.x)
	e.x, e.fx = xNew, fNew
	return IterationRecord{Index: index, X: xNew, FX: fNew, ApproxError: &approx}, nil
}
