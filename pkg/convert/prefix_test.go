package convert_test

import (
	"testing"

	"github.com/ArekkusuDev/polish-notation/pkg/convert"
	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"basic addition", "A + B", "+ A B"},
		{"precedence", "A + B * C", "+ A * B C"},
		{"power chain", "A ^ B ^ C", "^ A ^ B C"},
		{"parentheses", "(A + B) * C", "* + A B C"},
		{"complex expression", "A + B * (C ^ D - E) ^ (F + G * H) - I", "- + A * B ^ - ^ C D E + F * G H I"},
		{"number literals keep their text", "2 + 3.5 * x", "+ 2 * 3.5 x"},
		{"integer beyond int64 keeps its digits", "99999999999999999999999 + 1", "+ 99999999999999999999999 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert.Prefix(parseAST(t, tt.input))
			if err != nil {
				t.Fatalf("Prefix(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Prefix(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrefixRedundantParens(t *testing.T) {
	pairs := [][2]string{
		{"A + B * C", "A + (B * C)"},
		{"A ^ B ^ C", "A ^ (B ^ C)"},
		{"A - B - C", "(A - B) - C"},
	}

	for _, pair := range pairs {
		plain, err := convert.Prefix(parseAST(t, pair[0]))
		if err != nil {
			t.Fatal(err)
		}
		wrapped, err := convert.Prefix(parseAST(t, pair[1]))
		if err != nil {
			t.Fatal(err)
		}
		if plain != wrapped {
			t.Errorf("redundant parens changed output: %q vs %q", plain, wrapped)
		}
	}
}

func TestPrefixRejectsAssignment(t *testing.T) {
	_, err := convert.Prefix(parseAST(t, "X = A + B"))
	if err == nil {
		t.Fatal("expected error for assignment root, got none")
	}
	if code := types.CodeOf(err); code != types.ErrUnsupportedNode {
		t.Errorf("expected code %s, got %s", types.ErrUnsupportedNode, code)
	}
}

func TestPrefixRejectsUnaryOp(t *testing.T) {
	n := &types.UnaryOp{Op: types.OpSub, Operand: &types.Identifier{Name: "A"}}
	_, err := convert.Prefix(n)
	if err == nil {
		t.Fatal("expected error for unary node, got none")
	}
	if code := types.CodeOf(err); code != types.ErrUnsupportedNode {
		t.Errorf("expected code %s, got %s", types.ErrUnsupportedNode, code)
	}
}
