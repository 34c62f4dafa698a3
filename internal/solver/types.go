// Package solver finds a real root of f(x) = 0 using one of six classical
// iterative methods, returning the root together with the full iteration
// trace for inspection.
//
// All methods share one driver loop and one termination contract; each
// method contributes only its step-update rule and precondition checks.
// Every call owns its own state, so concurrent solves need no coordination.
package solver

// Func is a real function of one variable. It is partial: evaluation may
// fail at some inputs (domain errors, division by zero, overflow).
type Func func(x float64) (float64, error)

// Method identifies one of the six root-finding methods.
type Method string

const (
	Bisection      Method = "bisection"
	RegulaFalsi    Method = "regula_falsi"
	Secant         Method = "secant"
	NewtonRaphson  Method = "newton_raphson"
	FixedPoint     Method = "fixed_point"
	ModifiedSecant Method = "modified_secant"
)

// StopReason explains why the iteration loop terminated.
type StopReason string

const (
	StopToleranceError    StopReason = "tolerance_on_error"
	StopToleranceResidual StopReason = "tolerance_on_residual"
	StopMaxIterations     StopReason = "max_iterations"
)

// IterationRecord captures one iteration: the estimate, the residual f(x),
// and the approximate error. ApproxError is nil on the first record, where
// no previous iterate exists to compare against. Records are immutable once
// appended and their order is significant.
type IterationRecord struct {
	Index       int      `json:"index"`
	X           float64  `json:"x"`
	FX          float64  `json:"fx"`
	ApproxError *float64 `json:"approx_error"`
}

// Trace is the append-only sequence of iteration records, one per completed
// iteration. Record 0 is always the starting estimate, so a finished trace
// holds at most MaxIterations+1 records.
type Trace []IterationRecord

// Result is the outcome of a solve. Reaching the iteration cap is not an
// error: the best available estimate and the full trace are still returned,
// with Converged=false and StopMaxIterations.
type Result struct {
	Converged  bool       `json:"converged"`
	Root       float64    `json:"root"`
	Trace      Trace      `json:"trace"`
	StopReason StopReason `json:"stop_reason"`
}

// Settings holds the shared termination parameters. Both fields must be
// positive; use DefaultSettings for the standard values.
type Settings struct {
	Tolerance     float64
	MaxIterations int
}

const (
	// DefaultTolerance is used when the caller does not supply one.
	DefaultTolerance = 1e-6
	// DefaultMaxIterations is used when the caller does not supply one.
	DefaultMaxIterations = 100
	// DefaultDelta is the standard perturbation fraction for ModifiedSecant.
	DefaultDelta = 0.01
)

// DefaultSettings returns the standard termination parameters.
func DefaultSettings() Settings {
	return Settings{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}
