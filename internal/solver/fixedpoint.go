package solver

// fixedPointEngine iterates x = g(x). There is no sign or derivative
// requirement and no divergence detection beyond the iteration cap: a
// non-contracting g simply exhausts the cap and comes back with
// Converged=false and the full, possibly growing, trace.
type fixedPointEngine struct {
	f, g  Func
	x, fx float64
}

func (p FixedPointParams) newEngine(f Func) (engine, error) {
	if p.G == nil {
		return nil, &InvalidParameterError{Name: "g", Reason: "fixed-point iteration requires the rearranged x = g(x) form"}
	}
	return &fixedPointEngine{f: f, g: p.G, x: p.X0}, nil
}

func (e *fixedPointEngine) start() (IterationRecord, error) {
	fx, err := e.f(e.x)
	if err != nil {
		return IterationRecord{}, err
	}
	e.fx = fx
	return IterationRecord{Index: 0, X: e.x, FX: e.fx}, nil
}

func (e *fixedPointEngine) step(index int) (IterationRecord, error) {
	xNew, err := e.g(e.x)
	if err != nil {
		return IterationRecord{}, err
	}
	fNew, err := e.f(xNew)
	if err != nil {
		return IterationRecord{}, err
	}

	approx := relativeError(xNew, e.x)
	e.x, e.fx = xNew, fNew
	return IterationRecord{Index: index, X: xNew, FX: fNew, ApproxError: &approx}, nil
}
