// Package evaluator executes postfix token streams and parsed ASTs
// against variable bindings.
//
// Both entry points are pure: the variable map is read-only for the
// duration of a call, no package state is touched, and concurrent
// evaluations on independent inputs need no coordination.
package evaluator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ArekkusuDev/polish-notation/pkg/parser"
	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

// EvaluatePostfix executes a space-separated postfix expression as a
// stack machine and returns the numeric result.
//
// Per token, in order: an operator pops two values (b from the top,
// then a) and pushes a <op> b; a key of variables pushes its value; a
// signed or unsigned decimal literal pushes itself; a well-formed
// identifier absent from variables is an undefined-variable error; and
// anything else is an invalid token. After the last token exactly one
// value must remain on the stack.
func EvaluatePostfix(postfix string, variables map[string]float64) (float64, error) {
	stack := make([]float64, 0, 8)

	for _, token := range strings.Fields(postfix) {
		if op, ok := types.OperatorFromString(token); ok {
			if len(stack) < 2 {
				return 0, types.NewError(types.ErrInsufficientOperands,
					fmt.Sprintf("Operator %q requires two operands", token), -1).WithToken(token)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := apply(op, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
			continue
		}

		if v, ok := variables[token]; ok {
			stack = append(stack, v)
			continue
		}

		if parser.IsDecimal(token) {
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				// IsDecimal admits only strings ParseFloat accepts.
				return 0, types.NewError(types.ErrInternal,
					fmt.Sprintf("Invalid number literal: %s", token), -1).WithCause(err)
			}
			stack = append(stack, v)
			continue
		}

		if parser.IsIdentifier(token) {
			return 0, types.NewError(types.ErrUndefinedVariable,
				fmt.Sprintf("Variable %q has no value", token), -1).
				WithToken(token).WithNames([]string{token})
		}

		return 0, types.NewError(types.ErrInvalidToken,
			fmt.Sprintf("Invalid token: %q", token), -1).WithToken(token)
	}

	if len(stack) != 1 {
		return 0, types.NewError(types.ErrMalformedExpression,
			fmt.Sprintf("Malformed postfix expression: %d values left on the stack", len(stack)), -1)
	}

	return stack[0], nil
}

// EvalAST evaluates a parsed AST directly against variable bindings,
// with the same numeric semantics as the postfix stack machine.
//
// An Assignment node evaluates to the value of its right-hand side;
// binding the result to the target name is the embedding application's
// concern, not the core's.
func EvalAST(n types.Node, variables map[string]float64) (float64, error) {
	switch node := n.(type) {
	case *types.Number:
		return node.Value, nil

	case *types.Identifier:
		v, ok := variables[node.Name]
		if !ok {
			return 0, types.NewError(types.ErrUndefinedVariable,
				fmt.Sprintf("Variable %q has no value", node.Name), -1).
				WithToken(node.Name).WithNames([]string{node.Name})
		}
		return v, nil

	case *types.BinaryOp:
		a, err := EvalAST(node.Left, variables)
		if err != nil {
			return 0, err
		}
		b, err := EvalAST(node.Right, variables)
		if err != nil {
			return 0, err
		}
		return apply(node.Op, a, b)

	case *types.Assignment:
		return EvalAST(node.Value, variables)

	case *types.UnaryOp:
		return 0, types.NewError(types.ErrUnsupportedNode,
			"Cannot evaluate unary operator node", -1)

	default:
		return 0, types.NewError(types.ErrInternal,
			fmt.Sprintf("Unknown AST node type %T", n), -1)
	}
}

// apply computes a <op> b in float64.
func apply(op types.Operator, a, b float64) (float64, error) {
	switch op {
	case types.OpAdd:
		return a + b, nil
	case types.OpSub:
		return a - b, nil
	case types.OpMul:
		return a * b, nil
	case types.OpDiv:
		if b == 0 {
			return 0, types.NewError(types.ErrDivisionByZero, "Division by zero", -1)
		}
		return a / b, nil
	case types.OpPow:
		return math.Pow(a, b), nil
	default:
		return 0, types.NewError(types.ErrInternal,
			fmt.Sprintf("Unknown operator %d", op), -1)
	}
}
