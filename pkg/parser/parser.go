// Package parser implements the lexer and recursive descent parser for
// infix arithmetic expressions.
//
// The grammar covers numbers, identifiers, the five binary operators
// + - * / ^, parentheses and right-associative assignment. Precedence
// and associativity are encoded in the descent ladder: assignment binds
// loosest, then additive, multiplicative and power, with power the one
// right-associative arithmetic operator.
package parser

import (
	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

// Parse parses an infix expression and returns the Expression holding
// its AST.
//
// The function tokenizes the input, builds an AST, and verifies that
// the whole token stream was consumed. If parsing fails, it returns a
// structured error with position information.
//
// Example:
//
//	expr, err := parser.Parse("A + B * C")
//	if err != nil {
//	    return err
//	}
//	ast := expr.AST()
func Parse(expression string) (*types.Expression, error) {
	p := NewParser(expression)
	return p.Parse()
}

// Compile is an alias for Parse that accepts options, provided for API
// consistency.
func Compile(expression string, opts ...CompileOption) (*types.Expression, error) {
	p := NewParser(expression, opts...)
	return p.Parse()
}

// CompileOption configures parsing behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits recursion depth to prevent stack overflow.
	MaxDepth int
}

// WithMaxDepth sets the maximum parsing depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
