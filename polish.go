// Package polish converts infix arithmetic expressions to prefix and
// postfix (Polish) notations, produces three-address-code
// representations (triples and quadruples), and evaluates expressions
// against variable bindings.
//
// # Quick Start
//
//	// One-shot evaluation
//	result, err := polish.EvaluateExpression("A + B * C",
//	    map[string]float64{"A": 1, "B": 2, "C": 3})
//
//	// Notation conversion
//	postfix, err := polish.ConvertToPostfix("(A + B) * C")   // "A B + C *"
//	prefix, err := polish.ConvertToPrefix("(A + B) * C")     // "* + A B C"
//
//	// Three-address code
//	expr, err := polish.Compile("A + B * C")
//	quads, err := polish.ASTToQuadruples(expr.AST())
//
// # Pipeline
//
// Raw string -> lexer -> tokens -> parser -> AST. Postfix conversion
// runs the shunting-yard algorithm over the token stream directly;
// prefix and three-address code traverse the AST; evaluation executes a
// postfix token stream as a stack machine.
//
// # Concurrency
//
// Every operation is a pure function of its inputs. The only shared
// state is the variable-extraction memo, an LRU cache safe for
// concurrent use.
package polish

import (
	"fmt"

	"github.com/ArekkusuDev/polish-notation/pkg/cache"
	"github.com/ArekkusuDev/polish-notation/pkg/convert"
	"github.com/ArekkusuDev/polish-notation/pkg/evaluator"
	"github.com/ArekkusuDev/polish-notation/pkg/parser"
	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

// Version returns the current version of the library.
func Version() string {
	return "v0.1.0-dev"
}

// varCache memoizes ExtractVariables by the exact input string.
// Extraction is pure, so the memo is observationally transparent.
var varCache = cache.New(256)

// Tokenize converts an infix expression into its ordered token
// sequence.
func Tokenize(expression string) ([]parser.Token, error) {
	return parser.Tokenize(expression)
}

// Parse parses an infix expression and returns the root AST node.
func Parse(expression string) (types.Node, error) {
	expr, err := parser.Parse(expression)
	if err != nil {
		return nil, err
	}
	return expr.AST(), nil
}

// Compile parses an infix expression for repeated conversion and
// evaluation. The compiled Expression is safe for concurrent use.
func Compile(expression string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(expression, opts...)
}

// MustCompile is like Compile but panics if the expression cannot be
// parsed. It simplifies safe initialization of global variables.
func MustCompile(expression string) *types.Expression {
	expr, err := Compile(expression)
	if err != nil {
		panic(fmt.Sprintf("polish: Compile(%q): %v", expression, err))
	}
	return expr
}

// ConvertToPostfix converts an infix expression to postfix notation by
// running the shunting-yard algorithm over its token stream.
func ConvertToPostfix(expression string) (string, error) {
	tokens, err := parser.Tokenize(expression)
	if err != nil {
		return "", err
	}
	return convert.Postfix(tokens)
}

// ConvertToPrefix converts an infix expression to prefix notation by
// parsing it and traversing the AST in pre-order.
func ConvertToPrefix(expression string) (string, error) {
	expr, err := parser.Parse(expression)
	if err != nil {
		return "", err
	}
	return convert.Prefix(expr.AST())
}

// ASTToTriples linearizes a parsed AST into three-address code in
// triple form.
func ASTToTriples(n types.Node) ([]types.Triple, error) {
	return convert.Triples(n)
}

// ASTToQuadruples linearizes a parsed AST into three-address code in
// quadruple form.
func ASTToQuadruples(n types.Node) ([]types.Quadruple, error) {
	return convert.Quadruples(n)
}

// ExtractVariables returns the unique identifier names of an infix
// expression, lexicographically sorted. Results are memoized by the
// exact input string.
func ExtractVariables(expression string) ([]string, error) {
	return varCache.GetOrExtract(expression, func() ([]string, error) {
		return convert.Variables(expression)
	})
}

// EvaluatePostfix executes a space-separated postfix expression against
// variable bindings and returns the numeric result.
func EvaluatePostfix(postfix string, variables map[string]float64) (float64, error) {
	return evaluator.EvaluatePostfix(postfix, variables)
}

// EvaluateExpression converts an infix expression to postfix and
// evaluates it against variable bindings.
//
// Before converting, it checks that every identifier of the expression
// has a binding and reports all missing names in a single error. For an
// assignment expression the right-hand side is evaluated; storing the
// result under the target name is the caller's concern. Note that the
// target identifier still counts as a required variable, matching the
// identifier-collection contract of ExtractVariables.
func EvaluateExpression(expression string, variables map[string]float64) (float64, error) {
	required, err := ExtractVariables(expression)
	if err != nil {
		return 0, err
	}

	var missing []string
	for _, name := range required {
		if _, ok := variables[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return 0, types.NewMissingVariablesError(missing)
	}

	expr, err := parser.Parse(expression)
	if err != nil {
		return 0, err
	}

	// Unwrap assignment chains down to the innermost value; binding
	// results to the target names is the caller's concern.
	root := expr.AST()
	for {
		assign, ok := root.(*types.Assignment)
		if !ok {
			break
		}
		root = assign.Value
	}

	var postfix string
	if root != expr.AST() {
		postfix, err = convert.PostfixFromAST(root)
	} else {
		postfix, err = ConvertToPostfix(expression)
	}
	if err != nil {
		return 0, err
	}

	return evaluator.EvaluatePostfix(postfix, variables)
}
