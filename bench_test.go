// Benchmarks for the expression pipeline.
//
// Run all benchmarks:
//
//	go test -bench=. -benchmem .
package polish_test

import (
	"testing"

	polish "github.com/ArekkusuDev/polish-notation"
	"github.com/ArekkusuDev/polish-notation/pkg/convert"
	"github.com/ArekkusuDev/polish-notation/pkg/parser"
)

var (
	benchExpr     = "A + B * (C ^ D - E) ^ (F + G * H) - I"
	benchPostfix  = "A B C D ^ E - F G H * + ^ * + I -"
	benchBindings = map[string]float64{
		"A": 1, "B": 2, "C": 3, "D": 2, "E": 5,
		"F": 1, "G": 2, "H": 3, "I": 4,
	}

	benchResult float64
	benchString string
)

func BenchmarkTokenize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := parser.Tokenize(benchExpr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(benchExpr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertToPostfix(b *testing.B) {
	var s string
	for i := 0; i < b.N; i++ {
		var err error
		s, err = polish.ConvertToPostfix(benchExpr)
		if err != nil {
			b.Fatal(err)
		}
	}
	benchString = s
}

func BenchmarkConvertToPrefix(b *testing.B) {
	var s string
	for i := 0; i < b.N; i++ {
		var err error
		s, err = polish.ConvertToPrefix(benchExpr)
		if err != nil {
			b.Fatal(err)
		}
	}
	benchString = s
}

func BenchmarkQuadruples(b *testing.B) {
	expr := polish.MustCompile(benchExpr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convert.Quadruples(expr.AST()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluatePostfix(b *testing.B) {
	var r float64
	for i := 0; i < b.N; i++ {
		var err error
		r, err = polish.EvaluatePostfix(benchPostfix, benchBindings)
		if err != nil {
			b.Fatal(err)
		}
	}
	benchResult = r
}

func BenchmarkEvaluateExpression(b *testing.B) {
	var r float64
	for i := 0; i < b.N; i++ {
		var err error
		r, err = polish.EvaluateExpression(benchExpr, benchBindings)
		if err != nil {
			b.Fatal(err)
		}
	}
	benchResult = r
}

func BenchmarkExtractVariablesMemoized(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := polish.ExtractVariables(benchExpr); err != nil {
			b.Fatal(err)
		}
	}
}
