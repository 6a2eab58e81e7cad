// Package types defines the core type system for the polish-notation
// pipeline.
//
// This package contains type definitions for:
//   - Expression: Parsed expressions
//   - Node: Abstract Syntax Tree variants (closed set)
//   - Operator: Arithmetic operators with precedence and associativity
//   - Triple, Quadruple: Three-address-code records
//   - Error types: Structured errors with codes
package types

// Expression represents a parsed infix expression.
//
// An Expression can be converted and evaluated multiple times. It is
// safe for concurrent use by multiple goroutines; neither the AST nor
// the source string is ever mutated after parsing.
type Expression struct {
	ast    Node
	source string
}

// NewExpression creates a new Expression from an AST root.
func NewExpression(ast Node, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the root node of the expression's Abstract Syntax Tree.
func (e *Expression) AST() Node {
	return e.ast
}

// Source returns the original source text of the expression.
func (e *Expression) Source() string {
	return e.source
}

// String returns a string representation of the expression.
func (e *Expression) String() string {
	return e.source
}
