package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zof-project/zof/internal/expr"
)

func fn(t *testing.T, src string) Func {
	t.Helper()
	e, err := expr.Compile(src)
	require.NoError(t, err)
	return e.Eval
}

func ptr[T any](v T) *T { return &v }

func TestFind(t *testing.T) {
	t.Run("Bisection converges on cubic", func(t *testing.T) {
		res, err := Find(fn(t, "x^3 - x - 2"), BisectionParams{A: 1, B: 2}, DefaultSettings())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, 1.521379707, res.Root, 1e-5)
		assert.NotEqual(t, StopMaxIterations, res.StopReason)
	})

	t.Run("Newton converges quadratically", func(t *testing.T) {
		res, err := Find(fn(t, "exp(x) - 3*x"), NewtonParams{X0: 1.5}, DefaultSettings())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, 1.512134551, res.Root, 1e-6)
		assert.LessOrEqual(t, len(res.Trace), 11, "should take at most 10 iterations")
	})

	t.Run("Newton accepts a supplied derivative", func(t *testing.T) {
		deriv := func(x float64) (float64, error) { return math.Exp(x) - 3, nil }
		res, err := Find(fn(t, "exp(x) - 3*x"), NewtonParams{X0: 1.5, Derivative: deriv}, DefaultSettings())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, 1.512134551, res.Root, 1e-6)
	})

	t.Run("Regula falsi converges on cubic", func(t *testing.T) {
		res, err := Find(fn(t, "x^3 - x - 2"), RegulaFalsiParams{A: 1, B: 2}, DefaultSettings())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, 1.521379707, res.Root, 1e-5)
	})

	t.Run("Secant converges on sqrt2", func(t *testing.T) {
		res, err := Find(fn(t, "x^2 - 2"), SecantParams{X0: 1, X1: 2}, DefaultSettings())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, math.Sqrt2, res.Root, 1e-5)
	})

	t.Run("Modified secant converges on sqrt2", func(t *testing.T) {
		res, err := Find(fn(t, "x^2 - 2"), ModifiedSecantParams{X0: 1, Delta: 0.01}, DefaultSettings())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, math.Sqrt2, res.Root, 1e-5)
	})

	t.Run("Fixed point with contracting g", func(t *testing.T) {
		// f(x) = x^2 - x - 2 rearranged as x = sqrt(x + 2); root at 2
		res, err := Find(fn(t, "x^2 - x - 2"), FixedPointParams{X0: 1.5, G: fn(t, "sqrt(x + 2)")}, DefaultSettings())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, 2.0, res.Root, 1e-5)
	})

	t.Run("Invalid bracket fails before iterating", func(t *testing.T) {
		_, err := Find(fn(t, "x^2 - 2"), BisectionParams{A: 0.1, B: 0.1}, DefaultSettings())
		var berr *InvalidBracketError
		require.ErrorAs(t, err, &berr)
		assert.Equal(t, 0.1, berr.A)

		_, err = Find(fn(t, "x^2 - 2"), RegulaFalsiParams{A: 3, B: 4}, DefaultSettings())
		assert.ErrorAs(t, err, &berr)
	})

	t.Run("Endpoint exactly at root is not a valid bracket", func(t *testing.T) {
		_, err := Find(fn(t, "x"), BisectionParams{A: 0, B: 2}, DefaultSettings())
		var berr *InvalidBracketError
		assert.ErrorAs(t, err, &berr)
	})

	t.Run("Secant on a constant function diverges", func(t *testing.T) {
		constant := func(x float64) (float64, error) { return 5.0, nil }
		_, err := Find(constant, SecantParams{X0: 0, X1: 1}, DefaultSettings())
		var derr *DivergenceError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, Secant, derr.Method)
	})

	t.Run("Newton with flat derivative diverges", func(t *testing.T) {
		constant := func(x float64) (float64, error) { return 5.0, nil }
		_, err := Find(constant, NewtonParams{X0: 1}, DefaultSettings())
		var derr *DivergenceError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, NewtonRaphson, derr.Method)
	})

	t.Run("Invalid settings", func(t *testing.T) {
		var perr *InvalidParameterError

		_, err := Find(fn(t, "x"), SecantParams{X0: 1, X1: 2}, Settings{Tolerance: 0, MaxIterations: 10})
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "tolerance", perr.Name)

		_, err = Find(fn(t, "x"), SecantParams{X0: 1, X1: 2}, Settings{Tolerance: 1e-6, MaxIterations: -1})
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "max_iterations", perr.Name)

		_, err = Find(nil, SecantParams{X0: 1, X1: 2}, DefaultSettings())
		assert.ErrorAs(t, err, &perr)

		_, err = Find(fn(t, "x"), ModifiedSecantParams{X0: 1, Delta: 0}, DefaultSettings())
		assert.ErrorAs(t, err, &perr)

		_, err = Find(fn(t, "x"), FixedPointParams{X0: 1}, DefaultSettings())
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("Exhaustion is reported not fatal", func(t *testing.T) {
		// g(x) = x + 1 never contracts
		grow := func(x float64) (float64, error) { return x + 1, nil }
		res, err := Find(fn(t, "x^2 + 1"), FixedPointParams{X0: 0, G: grow}, Settings{Tolerance: 1e-6, MaxIterations: 1})
		require.NoError(t, err)
		assert.False(t, res.Converged)
		assert.Equal(t, StopMaxIterations, res.StopReason)
		require.Len(t, res.Trace, 2, "starting estimate plus one step")
		assert.Equal(t, 0, res.Trace[0].Index)
		assert.Nil(t, res.Trace[0].ApproxError, "first record has no approximate error")
		assert.NotNil(t, res.Trace[1].ApproxError)
	})

	t.Run("Trace length is bounded for every method", func(t *testing.T) {
		const maxIter = 7
		s := Settings{Tolerance: 1e-30, MaxIterations: maxIter}
		f := fn(t, "x^3 - x - 2")
		for name, params := range map[string]MethodParams{
			"bisection":       BisectionParams{A: 1, B: 2},
			"regula_falsi":    RegulaFalsiParams{A: 1, B: 2},
			"secant":          SecantParams{X0: 1, X1: 2},
			"newton":          NewtonParams{X0: 1.5},
			"fixed_point":     FixedPointParams{X0: 1.5, G: fn(t, "(x + 2)^(1/3)")},
			"modified_secant": ModifiedSecantParams{X0: 1.5, Delta: 0.01},
		} {
			res, err := Find(f, params, s)
			require.NoError(t, err, name)
			assert.LessOrEqual(t, len(res.Trace), maxIter+1, name)
		}
	})

	t.Run("Starting estimate at the root converges immediately", func(t *testing.T) {
		res, err := Find(fn(t, "x"), BisectionParams{A: -1, B: 1}, DefaultSettings())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.Equal(t, StopToleranceResidual, res.StopReason)
		assert.Len(t, res.Trace, 1)
		assert.Equal(t, 0.0, res.Root)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first, err := Find(fn(t, "x^3 - x - 2"), BisectionParams{A: 1, B: 2}, DefaultSettings())
		require.NoError(t, err)
		second, err := Find(fn(t, "x^3 - x - 2"), BisectionParams{A: 1, B: 2}, DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Evaluation failure mid-loop carries the partial trace", func(t *testing.T) {
		// secant from x0=9, x1=4 on sqrt(x)-1 steps to x2=-1 where sqrt fails
		_, err := Find(fn(t, "sqrt(x) - 1"), SecantParams{X0: 9, X1: 4}, DefaultSettings())
		var ierr *IterationError
		require.ErrorAs(t, err, &ierr)
		assert.Len(t, ierr.Trace, 1, "only the starting record was completed")
		var eerr *expr.EvalError
		assert.ErrorAs(t, err, &eerr, "the evaluation error is surfaced unchanged")
	})
}

func TestBracketInvariant(t *testing.T) {
	f := fn(t, "x^3 - x - 2")

	t.Run("Bisection", func(t *testing.T) {
		eng, err := BisectionParams{A: 1, B: 2}.newEngine(f)
		require.NoError(t, err)
		e := eng.(*bisectionEngine)
		_, err = e.start()
		require.NoError(t, err)
		for i := 1; i <= 20; i++ {
			prevWidth := e.b - e.a
			rec, err := e.step(i)
			require.NoError(t, err)
			if rec.FX == 0 {
				break // landed exactly on the root; the driver would have stopped
			}
			assert.Negative(t, e.fa*e.fb, "signs must stay opposite at step %d", i)
			assert.Less(t, e.b-e.a, prevWidth, "bracket must narrow at step %d", i)
		}
	})

	t.Run("RegulaFalsi", func(t *testing.T) {
		eng, err := RegulaFalsiParams{A: 1, B: 2}.newEngine(f)
		require.NoError(t, err)
		e := eng.(*regulaFalsiEngine)
		_, err = e.start()
		require.NoError(t, err)
		for i := 1; i <= 20; i++ {
			rec, err := e.step(i)
			require.NoError(t, err)
			if rec.FX == 0 {
				break
			}
			assert.Negative(t, e.fa*e.fb, "signs must stay opposite at step %d", i)
		}
	})
}

func TestRelativeError(t *testing.T) {
	assert.InDelta(t, 0.5, relativeError(2, 1), 1e-12)
	assert.InDelta(t, 1.0, relativeError(0, 1), 1e-12, "falls back to absolute difference near zero")
}

func TestDerivative(t *testing.T) {
	t.Run("Central difference", func(t *testing.T) {
		square := func(x float64) (float64, error) { return x * x, nil }
		d, err := Derivative(square, 3, DefaultStep)
		require.NoError(t, err)
		assert.InDelta(t, 6.0, d, 1e-5)
	})

	t.Run("Propagates evaluation failure", func(t *testing.T) {
		logf := fn(t, "log(x)")
		_, err := Derivative(logf, 5e-7, 1e-6)
		var eerr *expr.EvalError
		assert.ErrorAs(t, err, &eerr, "x-h is negative, log must fail")
	})
}

func TestSummarize(t *testing.T) {
	res, err := Find(fn(t, "x^3 - x - 2"), BisectionParams{A: 1, B: 2}, DefaultSettings())
	require.NoError(t, err)

	sum := Summarize(res)
	assert.Equal(t, len(res.Trace)-1, sum.Iterations)
	assert.Equal(t, res.Root, sum.Root)
	assert.LessOrEqual(t, sum.MinResidual, math.Abs(sum.FinalResidual))
	assert.GreaterOrEqual(t, sum.MaxResidual, sum.MinResidual)
	assert.NotNil(t, sum.FinalError)
}

func TestSolve(t *testing.T) {
	t.Run("End to end with defaults", func(t *testing.T) {
		res, err := Solve(Request{
			Expression: "x^3 - x - 2",
			Method:     Bisection,
			A:          ptr(1.0),
			B:          ptr(2.0),
		})
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InDelta(t, 1.521379707, res.Root, 1e-5)
	})

	t.Run("Parse failure happens before any iteration", func(t *testing.T) {
		_, err := Solve(Request{Expression: "frob(x)", Method: Bisection, A: ptr(1.0), B: ptr(2.0)})
		var perr *expr.ParseError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("Missing required parameter", func(t *testing.T) {
		_, err := Solve(Request{Expression: "x", Method: Secant, X0: ptr(1.0)})
		var perr *InvalidParameterError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "x1", perr.Name)
	})

	t.Run("Unknown method", func(t *testing.T) {
		_, err := Solve(Request{Expression: "x", Method: "halley"})
		var perr *InvalidParameterError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "method", perr.Name)
	})

	t.Run("Fixed point compiles g", func(t *testing.T) {
		res, err := Solve(Request{
			Expression: "x^2 - x - 2",
			Method:     FixedPoint,
			X0:         ptr(1.5),
			G:          "sqrt(x + 2)",
		})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, res.Root, 1e-5)

		_, err = Solve(Request{Expression: "x", Method: FixedPoint, X0: ptr(1.0), G: "nope(x)"})
		var gerr *expr.ParseError
		assert.ErrorAs(t, err, &gerr)
	})

	t.Run("Explicit zero tolerance is rejected", func(t *testing.T) {
		_, err := Solve(Request{
			Expression: "x",
			Method:     Secant,
			X0:         ptr(1.0),
			X1:         ptr(2.0),
			Tolerance:  ptr(0.0),
		})
		var perr *InvalidParameterError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("Modified secant default delta", func(t *testing.T) {
		res, err := Solve(Request{Expression: "x^2 - 2", Method: ModifiedSecant, X0: ptr(1.0)})
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt2, res.Root, 1e-5)
	})
}
