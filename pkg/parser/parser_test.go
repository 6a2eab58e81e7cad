package parser_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ArekkusuDev/polish-notation/pkg/parser"
	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

// Helper functions

func parseExpr(t *testing.T, input string) types.Node {
	t.Helper()
	expr, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", input, err)
	}
	return expr.AST()
}

func expectParseError(t *testing.T, input string, code types.ErrorCode) {
	t.Helper()
	_, err := parser.Parse(input)
	if err == nil {
		t.Fatalf("Expected error parsing %q but got none", input)
	}
	if got := types.CodeOf(err); got != code {
		t.Fatalf("Parsing %q: expected code %s, got %s (%v)", input, code, got, err)
	}
}

func ident(name string) *types.Identifier {
	return &types.Identifier{Name: name}
}

func binop(left types.Node, op types.Operator, right types.Node) *types.BinaryOp {
	return &types.BinaryOp{Left: left, Op: op, Right: right}
}

// Shape tests

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Node
	}{
		{"integer", "42", &types.Number{Value: 42, Text: "42", IsInt: true}},
		{"float", "3.14", &types.Number{Value: 3.14, Text: "3.14", IsInt: false}},
		{"identifier", "velocity", ident("velocity")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseExpr(t, tt.input)
			if !reflect.DeepEqual(node, tt.expected) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, node, tt.expected)
			}
		})
	}
}

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Node
	}{
		{
			name:     "multiplication binds tighter than addition",
			input:    "A + B * C",
			expected: binop(ident("A"), types.OpAdd, binop(ident("B"), types.OpMul, ident("C"))),
		},
		{
			name:     "subtraction is left-associative",
			input:    "A - B - C",
			expected: binop(binop(ident("A"), types.OpSub, ident("B")), types.OpSub, ident("C")),
		},
		{
			name:     "division is left-associative",
			input:    "A / B / C",
			expected: binop(binop(ident("A"), types.OpDiv, ident("B")), types.OpDiv, ident("C")),
		},
		{
			name:     "power is right-associative",
			input:    "A ^ B ^ C",
			expected: binop(ident("A"), types.OpPow, binop(ident("B"), types.OpPow, ident("C"))),
		},
		{
			name:     "parentheses override precedence",
			input:    "(A + B) * C",
			expected: binop(binop(ident("A"), types.OpAdd, ident("B")), types.OpMul, ident("C")),
		},
		{
			name:     "power binds tighter than multiplication",
			input:    "A * B ^ C",
			expected: binop(ident("A"), types.OpMul, binop(ident("B"), types.OpPow, ident("C"))),
		},
		{
			name:     "redundant parentheses change nothing",
			input:    "((A)) + (B * C)",
			expected: binop(ident("A"), types.OpAdd, binop(ident("B"), types.OpMul, ident("C"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseExpr(t, tt.input)
			if !reflect.DeepEqual(node, tt.expected) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, node, tt.expected)
			}
		})
	}
}

func TestParseAssignment(t *testing.T) {
	node := parseExpr(t, "X = A + B")
	expected := &types.Assignment{
		Target: ident("X"),
		Value:  binop(ident("A"), types.OpAdd, ident("B")),
	}
	if !reflect.DeepEqual(node, expected) {
		t.Errorf("Parse(\"X = A + B\") = %#v, want %#v", node, expected)
	}
}

func TestParseAssignmentChainsRight(t *testing.T) {
	node := parseExpr(t, "X = Y = 1")
	expected := &types.Assignment{
		Target: ident("X"),
		Value: &types.Assignment{
			Target: ident("Y"),
			Value:  &types.Number{Value: 1, Text: "1", IsInt: true},
		},
	}
	if !reflect.DeepEqual(node, expected) {
		t.Errorf("Parse(\"X = Y = 1\") = %#v, want %#v", node, expected)
	}
}

// Error tests

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  types.ErrorCode
	}{
		{"empty input", "", types.ErrEmptyInput},
		{"whitespace only", "   ", types.ErrEmptyInput},
		{"operand expected at end", "A +", types.ErrUnexpectedEnd},
		{"lone operator", "*", types.ErrUnexpectedToken},
		{"operator in primary position", "A + * B", types.ErrUnexpectedToken},
		{"missing closing paren", "(A + B", types.ErrMissingClosingParen},
		{"nested missing closing paren", "((A + B) * C", types.ErrMissingClosingParen},
		{"orphan closing paren", ")", types.ErrUnexpectedToken},
		{"trailing tokens", "A B", types.ErrTrailingTokens},
		{"trailing closing paren", "A + B)", types.ErrTrailingTokens},
		{"assignment to number", "1 = 2", types.ErrInvalidAssignTarget},
		{"assignment inside parens", "(X = 1) + 2", types.ErrMissingClosingParen},
		{"assignment to expression", "A + B = C", types.ErrInvalidAssignTarget},
		{"lex error propagates", "A + B & C", types.ErrLex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectParseError(t, tt.input, tt.code)
		})
	}
}

func TestParseConsumesEverything(t *testing.T) {
	// A successful parse guarantees no dangling tokens; the error must
	// name the leftovers.
	_, err := parser.Parse("A + B C D")
	if err == nil {
		t.Fatal("expected trailing-tokens error, got none")
	}
	var perr *types.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *types.Error, got %T", err)
	}
	if perr.Code != types.ErrTrailingTokens {
		t.Fatalf("expected code %s, got %s", types.ErrTrailingTokens, perr.Code)
	}
	if perr.Token != "C" {
		t.Errorf("expected first leftover token C, got %q", perr.Token)
	}
}

func TestParseMaxDepth(t *testing.T) {
	_, err := parser.Compile("((((1))))", parser.WithMaxDepth(3))
	if err == nil {
		t.Fatal("expected depth error, got none")
	}
	if code := types.CodeOf(err); code != types.ErrDepthExceeded {
		t.Fatalf("expected code %s, got %s", types.ErrDepthExceeded, code)
	}

	if _, err := parser.Compile("((((1))))", parser.WithMaxDepth(10)); err != nil {
		t.Fatalf("expected parse to succeed within depth limit: %v", err)
	}
}
