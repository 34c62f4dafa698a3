package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a finished trace: how many iterations ran and how the
// residual behaved across them.
type Summary struct {
	Iterations    int      `json:"iterations"`
	Root          float64  `json:"root"`
	FinalResidual float64  `json:"final_residual"`
	FinalError    *float64 `json:"final_error"`
	MinResidual   float64  `json:"min_residual"`
	MaxResidual   float64  `json:"max_residual"`
	MeanResidual  float64  `json:"mean_residual"`
}

// Summarize computes residual statistics over the result's trace. The
// trace always holds at least the starting record.
func Summarize(res *Result) Summary {
	residuals := make([]float64, len(res.Trace))
	for i, rec := range res.Trace {
		residuals[i] = math.Abs(rec.FX)
	}

	last := res.Trace[len(res.Trace)-1]
	return Summary{
		Iterations:    len(res.Trace) - 1,
		Root:          res.Root,
		FinalResidual: last.FX,
		FinalError:    last.ApproxError,
		MinResidual:   floats.Min(residuals),
		MaxResidual:   floats.Max(residuals),
		MeanResidual:  stat.Mean(residuals, nil),
	}
}
