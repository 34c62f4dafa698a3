package solver

import "math"

// regulaFalsiEngine replaces an endpoint with the weighted secant point
// each step. One endpoint may stagnate on convex functions; that is the
// classical behavior and is not remedied here (no Illinois modification).
type regulaFalsiEngine struct {
	f      Func
	a, b   float64
	fa, fb float64
	c, fc  float64 // current weighted point estimate
}

func (p RegulaFalsiParams) newEngine(f Func) (engine, error) {
	fa, fb, err := checkBracket(f, p.A, p.B)
	if err != nil {
		return nil, err
	}
	return &regulaFalsiEngine{f: f, a: p.A, b: p.B, fa: fa, fb: fb}, nil
}

func (e *regulaFalsiEngine) weightedPoint() (float64, error) {
	c := (e.a*e.fb - e.b*e.fa) / (e.fb - e.fa)
	fc, err := e.f(c)
	if err != nil {
		return 0, err
	}
	e.c, e.fc = c, fc
	return c, nil
}

func (e *regulaFalsiEngine) start() (IterationRecord, error) {
	if _, err := e.weightedPoint(); err != nil {
		return IterationRecord{}, err
	}
	return IterationRecord{Index: 0, X: e.c, FX: e.fc}, nil
}

func (e *regulaFalsiEngine) step(index int) (IterationRecord, error) {
	if e.fa*e.fc < 0 {
		e.b, e.fb = e.c, e.fc
	} else {
		e.a, e.fa = e.c, e.fc
	}

	if _, err := e.weightedPoint(); err != nil {
		return IterationRecord{}, err
	}

	halfWidth := math.Abs(e.b-e.a) / 2
	return IterationRecord{Index: index, X: e.c, FX: e.fc, ApproxError: &halfWidth}, nil
}
