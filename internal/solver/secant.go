package solver

import "math"

// secantEngine approximates the derivative with the slope through the two
// most recent iterates.
type secantEngine struct {
	f      Func
	x0, x1 float64
	f0, f1 float64
}

func (p SecantParams) newEngine(f Func) (engine, error) {
	return &secantEngine{f: f, x0: p.X0, x1: p.X1}, nil
}

func (e *secantEngine) start() (IterationRecord, error) {
	f0, err := e.f(e.x0)
	if err != nil {
		return IterationRecord{}, err
	}
	f1, err := e.f(e.x1)
	if err != nil {
		return IterationRecord{}, err
	}
	e.f0, e.f1 = f0, f1
	return IterationRecord{Index: 0, X: e.x1, FX: e.f1}, nil
}

func (e *secantEngine) step(index int) (IterationRecord, error) {
	denom := e.f1 - e.f0
	if math.Abs(denom) < denomEpsilon {
		return IterationRecord{}, &DivergenceError{
			Method: Secant,
			X:      e.x1,
			Reason: "f(x1) and f(x0) are equal, secant slope is zero",
		}
	}

	x2 := e.x1 - e.f1*(e.x1-e.x0)/denom
	f2, err := e.f(x2)
	if err != nil {
		return IterationRecord{}, err
	}

	approx := relativeError(x2, e.x1)
	e.x0, e.f0 = e.x1, e.f1
	e.x1, e.f1 = x2, f2
	return IterationRecord{Index: index, X: x2, FX: f2, ApproxError: &approx}, nil
}
