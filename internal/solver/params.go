package solver

// MethodParams is the per-method variant of solve inputs. Each variant
// carries only what its method needs; the shared tolerance and iteration
// cap live in Settings.
type MethodParams interface {
	// Method reports which engine the variant selects.
	Method() Method
	// newEngine validates the method's preconditions against f and returns
	// a fresh engine holding the method's own mutable state.
	newEngine(f Func) (engine, error)
}

// engine is the polymorphic step capability dispatched once per iteration
// by the driver. Engines hold only their own state (current bracket or
// current point pair); there are no shared mutable globals.
type engine interface {
	// start produces record 0, the starting estimate.
	start() (IterationRecord, error)
	// step advances one iteration and produces the record for it.
	step(index int) (IterationRecord, error)
}

// BisectionParams brackets a root between A and B.
type BisectionParams struct {
	A, B float64
}

// RegulaFalsiParams brackets a root between A and B.
type RegulaFalsiParams struct {
	A, B float64
}

// SecantParams holds the two initial guesses.
type SecantParams struct {
	X0, X1 float64
}

// NewtonParams holds the initial guess. Derivative is optional; when nil
// the derivative is obtained by central finite difference.
type NewtonParams struct {
	X0         float64
	Derivative Func
}

// FixedPointParams holds the initial guess and the rearranged x = g(x)
// form. The method offers no convergence guarantee; the caller bears
// responsibility for supplying a contracting g.
type FixedPointParams struct {
	X0 float64
	G  Func
}

// ModifiedSecantParams holds the initial guess and the perturbation
// fraction delta.
type ModifiedSecantParams struct {
	X0    float64
	Delta float64
}

func (BisectionParams) Method() Method      { return Bisection }
func (RegulaFalsiParams) Method() Method    { return RegulaFalsi }
func (SecantParams) Method() Method         { return Secant }
func (NewtonParams) Method() Method         { return NewtonRaphson }
func (FixedPointParams) Method() Method     { return FixedPoint }
func (ModifiedSecantParams) Method() Method { return ModifiedSecant }

// checkBracket validates the sign precondition shared by the bracketing
// methods and returns the endpoint residuals.
func checkBracket(f Func, a, b float64) (fa, fb float64, err error) {
	fa, err = f(a)
	if err != nil {
		return 0, 0, err
	}
	fb, err = f(b)
	if err != nil {
		return 0, 0, err
	}
	if fa == 0 || fb == 0 || (fa > 0) == (fb > 0) {
		return 0, 0, &InvalidBracketError{A: a, B: b, FA: fa, FB: fb}
	}
	return fa, fb, nil
}
