package solver

// bisectionEngine halves the bracket each step, keeping the endpoint whose
// sign differs from the midpoint's.
type bisectionEngine struct {
	f      Func
	a, b   float64
	fa, fb float64
	m, fm  float64 // current midpoint estimate
}

func (p BisectionParams) newEngine(f Func) (engine, error) {
	fa, fb, err := checkBracket(f, p.A, p.B)
	if err != nil {
		return nil, err
	}
	return &bisectionEngine{f: f, a: p.A, b: p.B, fa: fa, fb: fb}, nil
}

func (e *bisectionEngine) start() (IterationRecord, error) {
	e.m = (e.a + e.b) / 2
	fm, err := e.f(e.m)
	if err != nil {
		return IterationRecord{}, err
	}
	e.fm = fm
	return IterationRecord{Index: 0, X: e.m, FX: e.fm}, nil
}

func (e *bisectionEngine) step(index int) (IterationRecord, error) {
	// Replace the endpoint that shares the midpoint's sign. The product
	// test re-establishes the opposite-sign invariant every step.
	if e.fa*e.fm < 0 {
		e.b, e.fb = e.m, e.fm
	} else {
		e.a, e.fa = e.m, e.fm
	}

	e.m = (e.a + e.b) / 2
	fm, err := e.f(e.m)
	if err != nil {
		return IterationRecord{}, err
	}
	e.fm = fm

	halfWidth := (e.b - e.a) / 2
	if halfWidth < 0 {
		halfWidth = -halfWidth
	}
	return IterationRecord{Index: index, X: e.m, FX: e.fm, ApproxError: &halfWidth}, nil
}
