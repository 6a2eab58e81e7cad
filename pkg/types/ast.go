package types

import "strconv"

// Operator identifies one of the arithmetic operators understood by the
// expression grammar.
type Operator uint8

const (
	OpAdd Operator = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpPow                 // ^
)

// String returns the source symbol of the operator.
func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "(unknown)"
	}
}

// Precedence returns the binding power of the operator.
// Higher values bind more tightly.
func (op Operator) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		return 0
	}
}

// RightAssociative reports whether repeated application of the operator
// groups to the right. Power is the one right-associative operator;
// A ^ B ^ C parses as A ^ (B ^ C).
func (op Operator) RightAssociative() bool {
	return op == OpPow
}

// OperatorFromString returns the operator for a source symbol.
// The second result is false when the string is not an operator.
func OperatorFromString(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	case "^":
		return OpPow, true
	default:
		return 0, false
	}
}

// Node is a node in the Abstract Syntax Tree of a parsed expression.
//
// The variant set is closed: Number, Identifier, BinaryOp, UnaryOp and
// Assignment are the only implementations, enforced by the unexported
// marker method. Every traversal is an exhaustive type switch; reaching
// the default branch is an internal-consistency violation, not a
// runtime case.
//
// Nodes are immutable after construction and each node exclusively owns
// its children. Sharing subtrees or building cycles is a programming
// error.
type Node interface {
	// node is unexported to ensure implementations of Node
	// can only originate in this package.
	node()
}

// Number is a numeric literal.
//
// Text preserves the literal exactly as written in the source, so
// integers beyond float64's 53-bit precision render without loss.
// IsInt records whether the literal had no decimal point. Both affect
// only how the literal appears in converted notation strings;
// evaluation always computes in float64.
type Number struct {
	Value float64
	Text  string
	IsInt bool
}

func (*Number) node() {}

// Literal returns the token text of the number as it appears in
// converted notations: the source text when known, otherwise a
// rendering of Value. Integer rendering is range-guarded; a value
// outside int64 falls back to float formatting rather than overflowing
// the conversion.
func (n *Number) Literal() string {
	if n.Text != "" {
		return n.Text
	}
	if n.IsInt && n.Value >= -(1<<63) && n.Value < 1<<63 {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Identifier is a variable reference.
type Identifier struct {
	Name string
}

func (*Identifier) node() {}

// BinaryOp applies an operator to two sub-expressions.
type BinaryOp struct {
	Left  Node
	Op    Operator
	Right Node
}

func (*BinaryOp) node() {}

// UnaryOp applies an operator to a single operand.
//
// The grammar has no production that builds one (there is no unary
// minus), but the variant is part of the closed set and every traversal
// rejects it explicitly rather than mis-traversing it.
type UnaryOp struct {
	Op      Operator
	Operand Node
}

func (*UnaryOp) node() {}

// Assignment binds the value of an expression to an identifier.
// Only a bare identifier is a valid target.
type Assignment struct {
	Target *Identifier
	Value  Node
}

func (*Assignment) node() {}

// Triple is one record of three-address code in triple form. A later
// triple refers to the implicit result of an earlier one through the
// textual back-reference "(i)", where i is the 1-based index of the
// earlier triple.
type Triple struct {
	Op   string
	Arg1 string
	Arg2 string
}

// Quadruple is one record of three-address code in quadruple form.
// Result holds a temporary name (T1, T2, ...) minted in traversal order
// and unique within a single conversion call.
type Quadruple struct {
	Op     string
	Arg1   string
	Arg2   string
	Result string
}
