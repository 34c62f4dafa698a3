package solver

// MethodInfo describes one method for discovery surfaces (the /methods
// endpoint and the CLI help).
type MethodInfo struct {
	Method      Method   `json:"method"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Parameters  []string `json:"parameters"`
	Bracketing  bool     `json:"bracketing"`
}

// Methods lists the six supported methods and their required parameters.
func Methods() []MethodInfo {
	return []MethodInfo{
		{
			Method:      Bisection,
			Name:        "Bisection",
			Description: "Halves a sign-changing bracket each step; linear convergence, guaranteed",
			Parameters:  []string{"a", "b"},
			Bracketing:  true,
		},
		{
			Method:      RegulaFalsi,
			Name:        "Regula Falsi",
			Description: "Replaces an endpoint with the weighted secant point; keeps the bracket",
			Parameters:  []string{"a", "b"},
			Bracketing:  true,
		},
		{
			Method:      Secant,
			Name:        "Secant",
			Description: "Slope through the two most recent iterates; superlinear convergence",
			Parameters:  []string{"x0", "x1"},
		},
		{
			Method:      NewtonRaphson,
			Name:        "Newton-Raphson",
			Description: "Tangent-line steps with a finite-difference derivative; quadratic convergence",
			Parameters:  []string{"x0"},
		},
		{
			Method:      FixedPoint,
			Name:        "Fixed-Point Iteration",
			Description: "Iterates x = g(x); convergence depends on g being contracting",
			Parameters:  []string{"x0", "g"},
		},
		{
			Method:      ModifiedSecant,
			Name:        "Modified Secant",
			Description: "Single-point secant with a fractional perturbation delta",
			Parameters:  []string{"x0", "delta"},
		},
	}
}
