package solver

import "math"

// relErrFloor is the magnitude below which the relative error measure
// falls back to the absolute difference, guarding the division.
const relErrFloor = 1e-12

// relativeError is the approximate error measure for the open methods:
// |xNew − xOld| / |xNew|, falling back to the absolute difference when
// the new estimate is too close to zero to divide by.
func relativeError(xNew, xOld float64) float64 {
	diff := math.Abs(xNew - xOld)
	if math.Abs(xNew) < relErrFloor {
		return diff
	}
	return diff / math.Abs(xNew)
}

// shouldStop evaluates the three termination conditions in fixed priority
// order: approximate error below tolerance, residual below tolerance,
// iteration cap reached.
func shouldStop(rec IterationRecord, index int, s Settings) (bool, StopReason) {
	if rec.ApproxError != nil && math.Abs(*rec.ApproxError) < s.Tolerance {
		return true, StopToleranceError
	}
	if math.Abs(rec.FX) < s.Tolerance {
		return true, StopToleranceResidual
	}
	if index >= s.MaxIterations {
		return true, StopMaxIterations
	}
	return false, ""
}
