package convert

import (
	"fmt"
	"strconv"

	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

// tacEmitter accumulates three-address-code records for a single
// conversion call. The temporary counter lives here, never in package
// state, so concurrent conversions cannot interfere and every call
// starts numbering at T1.
type tacEmitter struct {
	triples []types.Triple
	quads   []types.Quadruple
	temp    int
}

// Triples linearizes an AST into three-address code in triple form by
// post-order traversal. Each binary operation appends one record and is
// referred to by later records through the 1-based textual
// back-reference "(i)".
//
// Assignment nodes are rejected: three-address-code generation was
// never integrated with the assignment grammar, and the gap is kept
// explicit instead of inventing an encoding.
func Triples(n types.Node) ([]types.Triple, error) {
	e := &tacEmitter{}
	if _, err := e.emitTriples(n); err != nil {
		return nil, err
	}
	return e.triples, nil
}

// Quadruples linearizes an AST into three-address code in quadruple
// form by post-order traversal. Each binary operation mints a fresh
// temporary name (T1, T2, ...) in traversal order and stores its result
// there; the parent consumes the temporary by name.
//
// Assignment nodes are rejected for the same reason as in Triples.
func Quadruples(n types.Node) ([]types.Quadruple, error) {
	e := &tacEmitter{}
	if _, err := e.emitQuadruples(n); err != nil {
		return nil, err
	}
	return e.quads, nil
}

// emitTriples returns the textual reference for n: the literal text of
// a leaf, or the back-reference of the triple produced for a binary
// operation.
func (e *tacEmitter) emitTriples(n types.Node) (string, error) {
	switch node := n.(type) {
	case *types.Number:
		return node.Literal(), nil
	case *types.Identifier:
		return node.Name, nil
	case *types.BinaryOp:
		left, err := e.emitTriples(node.Left)
		if err != nil {
			return "", err
		}
		right, err := e.emitTriples(node.Right)
		if err != nil {
			return "", err
		}
		e.triples = append(e.triples, types.Triple{
			Op:   node.Op.String(),
			Arg1: left,
			Arg2: right,
		})
		return fmt.Sprintf("(%d)", len(e.triples)), nil
	case *types.Assignment:
		return "", unsupportedNode("triples", "assignment")
	case *types.UnaryOp:
		return "", unsupportedNode("triples", "unary operator")
	default:
		return "", internalNode(n)
	}
}

// emitQuadruples returns the value reference for n: the literal text of
// a leaf, or the temporary name assigned to a binary operation.
func (e *tacEmitter) emitQuadruples(n types.Node) (string, error) {
	switch node := n.(type) {
	case *types.Number:
		return node.Literal(), nil
	case *types.Identifier:
		return node.Name, nil
	case *types.BinaryOp:
		left, err := e.emitQuadruples(node.Left)
		if err != nil {
			return "", err
		}
		right, err := e.emitQuadruples(node.Right)
		if err != nil {
			return "", err
		}
		e.temp++
		result := "T" + strconv.Itoa(e.temp)
		e.quads = append(e.quads, types.Quadruple{
			Op:     node.Op.String(),
			Arg1:   left,
			Arg2:   right,
			Result: result,
		})
		return result, nil
	case *types.Assignment:
		return "", unsupportedNode("quadruples", "assignment")
	case *types.UnaryOp:
		return "", unsupportedNode("quadruples", "unary operator")
	default:
		return "", internalNode(n)
	}
}
