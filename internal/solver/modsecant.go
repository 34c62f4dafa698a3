package solver

import "math"

// modifiedSecantEngine estimates the slope from a single point perturbed
// by a fixed fraction of itself, x + δ·x.
type modifiedSecantEngine struct {
	f     Func
	delta float64
	x, fx float64
}

func (p ModifiedSecantParams) newEngine(f Func) (engine, error) {
	if p.Delta == 0 {
		return nil, &InvalidParameterError{Name: "delta", Reason: "perturbation fraction must be non-zero"}
	}
	return &modifiedSecantEngine{f: f, delta: p.Delta, x: p.X0}, nil
}

func (e *modifiedSecantEngine) start() (IterationRecord, error) {
	fx, err := e.f(e.x)
	if err != nil {
		return IterationRecord{}, err
	}
	e.fx = fx
	return IterationRecord{Index: 0, X: e.x, FX: e.fx}, nil
}

func (e *modifiedSecantEngine) step(index int) (IterationRecord, error) {
	perturbed, err := e.f(e.x + e.delta*e.x)
	if err != nil {
		return IterationRecord{}, err
	}

	denom := perturbed - e.fx
	if math.Abs(denom) < denomEpsilon {
		return IterationRecord{}, &DivergenceError{
			Method: ModifiedSecant,
			X:      e.x,
			Reason: "perturbed and current residuals are equal, slope is zero",
		}
	}

	xNew := e.x - e.delta*e.x*e.fx/denom
	fNew, err := e.f(xNew)
	if err != nil {
		return IterationRecord{}, err
	}

	approx := relativeError(xNew, e.x)
	e.x, e.fx = xNew, fNew
	return IterationRecord{Index: index, X: xNew, FX: fNew, ApproxError: &approx}, nil
}
