package expr

import (
	"math"
	"strconv"
)

// Evaluation of a compiled tree. Any domain error, division by zero, or
// non-finite intermediate surfaces as *EvalError; no NaN or Inf ever
// escapes to a caller.

func (v *varNode) eval(x float64) (float64, error) {
	return x, nil
}

func (c *constNode) eval(_ float64) (float64, error) {
	return c.val, nil
}

func (u *unaryNode) eval(x float64) (float64, error) {
	child, err := u.child.eval(x)
	if err != nil {
		return 0, err
	}

	switch u.op {
	case opNeg:
		return -child, nil
	case opSin:
		return finite(math.Sin(child), x, "sin")
	case opCos:
		return finite(math.Cos(child), x, "cos")
	case opTan:
		return finite(math.Tan(child), x, "tan")
	case opExp:
		return finite(math.Exp(child), x, "exp")
	case opLog:
		if child <= 0 {
			return 0, &EvalError{X: x, Msg: "log of non-positive value " + trimFloat(child)}
		}
		return math.Log(child), nil
	case opSqrt:
		if child < 0 {
			return 0, &EvalError{X: x, Msg: "sqrt of negative value " + trimFloat(child)}
		}
		return math.Sqrt(child), nil
	case opAbs:
		return math.Abs(child), nil
	}
	return 0, &EvalError{X: x, Msg: "unknown unary operation"}
}

func (b *binaryNode) eval(x float64) (float64, error) {
	left, err := b.left.eval(x)
	if err != nil {
		return 0, err
	}
	right, err := b.right.eval(x)
	if err != nil {
		return 0, err
	}

	switch b.op {
	case opAdd:
		return finite(left+right, x, "+")
	case opSub:
		return finite(left-right, x, "-")
	case opMul:
		return finite(left*right, x, "*")
	case opDiv:
		if right == 0 {
			return 0, &EvalError{X: x, Msg: "division by zero"}
		}
		return finite(left/right, x, "/")
	case opPow:
		return finite(math.Pow(left, right), x, "pow")
	}
	return 0, &EvalError{X: x, Msg: "unknown binary operation"}
}

// finite rejects NaN and Inf results so partial functions fail loudly.
func finite(v, x float64, op string) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &EvalError{X: x, Msg: op + " produced a non-finite value"}
	}
	return v, nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
