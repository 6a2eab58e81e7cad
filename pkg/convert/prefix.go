package convert

import (
	"strings"

	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

// Prefix converts an AST to a space-joined prefix (Polish) string by
// pre-order traversal: operator first, then left and right operands.
//
// Assignment and unary nodes have no prefix encoding here and are
// rejected with a typed error rather than silently mis-traversed.
func Prefix(n types.Node) (string, error) {
	parts := make([]string, 0, 16)
	if err := prefixWalk(n, &parts); err != nil {
		return "", err
	}
	return strings.Join(parts, " "), nil
}

func prefixWalk(n types.Node, parts *[]string) error {
	switch node := n.(type) {
	case *types.Number:
		*parts = append(*parts, node.Literal())
	case *types.Identifier:
		*parts = append(*parts, node.Name)
	case *types.BinaryOp:
		*parts = append(*parts, node.Op.String())
		if err := prefixWalk(node.Left, parts); err != nil {
			return err
		}
		if err := prefixWalk(node.Right, parts); err != nil {
			return err
		}
	case *types.Assignment:
		return unsupportedNode("prefix", "assignment")
	case *types.UnaryOp:
		return unsupportedNode("prefix", "unary operator")
	default:
		return internalNode(n)
	}
	return nil
}
