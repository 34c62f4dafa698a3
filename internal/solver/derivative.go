package solver

import "gonum.org/v1/gonum/diff/fd"

// DefaultStep is the finite-difference step used when no derivative is
// supplied to Newton-Raphson.
const DefaultStep = 1e-6

// Derivative approximates f'(x) with the central-difference formula
// (f(x+h) − f(x−h)) / (2h). An evaluation failure at either point is
// returned unchanged.
func Derivative(f Func, x, h float64) (float64, error) {
	if h <= 0 {
		h = DefaultStep
	}

	// fd wants a total function; capture the first evaluation failure
	// and discard the finite-difference result if one occurred.
	var evalErr error
	wrapped := func(t float64) float64 {
		v, err := f(t)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return v
	}

	d := fd.Derivative(wrapped, x, &fd.Settings{Formula: fd.Central, Step: h})
	if evalErr != nil {
		return 0, evalErr
	}
	return d, nil
}
