// Package convert implements the notation converters of the pipeline:
// infix to postfix over the raw token stream (shunting yard), AST to
// prefix and postfix, AST to three-address code (triples and
// quadruples), and variable extraction.
package convert

import (
	"fmt"
	"strings"

	"github.com/ArekkusuDev/polish-notation/pkg/parser"
	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

// isOperand reports whether a token text is a valid operand for the
// shunting-yard converter: a signed or unsigned decimal number, or an
// identifier. The predicate is self-contained so the converter can
// classify any token stream it is handed, not only lexer output.
func isOperand(text string) bool {
	return parser.IsDecimal(text) || parser.IsIdentifier(text)
}

// Postfix converts an infix token stream to a space-joined postfix
// string using the shunting-yard algorithm.
//
// Operands append directly to the output. An incoming operator pops the
// stack while the top holds an operator of greater or equal precedence,
// except that ^ never pops another ^: power is right-associative, so
// A ^ B ^ C yields "A B C ^ ^". Parentheses group but are never
// emitted.
func Postfix(tokens []parser.Token) (string, error) {
	output := make([]string, 0, len(tokens))
	var operators []string

	for _, tok := range tokens {
		text := tok.Value
		op, isOp := types.OperatorFromString(text)

		switch {
		case isOperand(text):
			output = append(output, text)

		case isOp:
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top == "(" {
					break
				}
				topOp, _ := types.OperatorFromString(top)
				if topOp.Precedence() < op.Precedence() {
					break
				}
				if op == types.OpPow && topOp == types.OpPow {
					break
				}
				output = append(output, top)
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, text)

		case text == "(":
			operators = append(operators, text)

		case text == ")":
			for len(operators) > 0 && operators[len(operators)-1] != "(" {
				output = append(output, operators[len(operators)-1])
				operators = operators[:len(operators)-1]
			}
			if len(operators) == 0 {
				return "", types.NewError(types.ErrUnbalancedParen,
					"Closing parenthesis without matching opening parenthesis", tok.Position)
			}
			// Discard the matching "(".
			operators = operators[:len(operators)-1]

		default:
			return "", types.NewError(types.ErrInvalidToken,
				fmt.Sprintf("Invalid token: %s", text), tok.Position).WithToken(text)
		}
	}

	for len(operators) > 0 {
		top := operators[len(operators)-1]
		if top == "(" {
			return "", types.NewError(types.ErrUnbalancedParen,
				"Opening parenthesis without matching closing parenthesis", -1)
		}
		output = append(output, top)
		operators = operators[:len(operators)-1]
	}

	return strings.Join(output, " "), nil
}

// PostfixFromAST converts an AST to a space-joined postfix string by
// post-order traversal. Unlike Postfix it operates on a parsed tree,
// which makes it usable for the right-hand side of an assignment.
func PostfixFromAST(n types.Node) (string, error) {
	parts := make([]string, 0, 16)
	if err := postfixWalk(n, &parts); err != nil {
		return "", err
	}
	return strings.Join(parts, " "), nil
}

func postfixWalk(n types.Node, parts *[]string) error {
	switch node := n.(type) {
	case *types.Number:
		*parts = append(*parts, node.Literal())
	case *types.Identifier:
		*parts = append(*parts, node.Name)
	case *types.BinaryOp:
		if err := postfixWalk(node.Left, parts); err != nil {
			return err
		}
		if err := postfixWalk(node.Right, parts); err != nil {
			return err
		}
		*parts = append(*parts, node.Op.String())
	case *types.Assignment:
		return unsupportedNode("postfix", "assignment")
	case *types.UnaryOp:
		return unsupportedNode("postfix", "unary operator")
	default:
		return internalNode(n)
	}
	return nil
}

// unsupportedNode reports an AST variant that a converter deliberately
// does not encode.
func unsupportedNode(target, variant string) error {
	return types.NewError(types.ErrUnsupportedNode,
		fmt.Sprintf("Cannot convert %s node to %s notation", variant, target), -1)
}

// internalNode reports an AST variant outside the closed set. The set
// is sealed in pkg/types, so this is unreachable short of a coding
// error in this module.
func internalNode(n types.Node) error {
	return types.NewError(types.ErrInternal,
		fmt.Sprintf("Unknown AST node type %T", n), -1)
}
