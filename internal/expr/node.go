package expr

// node is the interface for all expression tree nodes.
type node interface {
	eval(x float64) (float64, error)
	String() string
}

// unaryOp identifies a unary operation or single-argument function.
type unaryOp int

const (
	opNeg unaryOp = iota
	opSin
	opCos
	opTan
	opExp
	opLog
	opSqrt
	opAbs
)

// binaryOp identifies a binary operation.
type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
	opPow
)

// varNode represents the variable x.
type varNode struct{}

// constNode represents a numeric literal or named constant.
type constNode struct {
	val float64
}

// unaryNode applies a unary operation to a child expression.
type unaryNode struct {
	op    unaryOp
	child node
}

// binaryNode applies a binary operation to two child expressions.
type binaryNode struct {
	op          binaryOp
	left, right node
}

var unaryNames = map[unaryOp]string{
	opNeg:  "-",
	opSin:  "sin",
	opCos:  "cos",
	opTan:  "tan",
	opExp:  "exp",
	opLog:  "log",
	opSqrt: "sqrt",
	opAbs:  "abs",
}

var binaryNames = map[binaryOp]string{
	opAdd: "+",
	opSub: "-",
	opMul: "*",
	opDiv: "/",
	opPow: "^",
}

func (v *varNode) String() string   { return "x" }
func (c *constNode) String() string { return trimFloat(c.val) }

func (u *unaryNode) String() string {
	if u.op == opNeg {
		return "(-" + u.child.String() + ")"
	}
	return unaryNames[u.op] + "(" + u.child.String() + ")"
}

func (b *binaryNode) String() string {
	return "(" + b.left.String() + " " + binaryNames[b.op] + " " + b.right.String() + ")"
}
