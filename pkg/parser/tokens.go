package parser

import "github.com/ArekkusuDev/polish-notation/pkg/types"

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenNumber     // 123, 3.14
	TokenIdentifier // variable name

	// Arithmetic operators
	TokenPlus  // +
	TokenMinus // -
	TokenMult  // *
	TokenDiv   // /
	TokenPow   // ^

	// Assignment
	TokenAssign // =

	// Grouping symbols
	TokenParenOpen  // (
	TokenParenClose // )
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenNumber:
		return "(number)"
	case TokenIdentifier:
		return "(identifier)"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMult:
		return "*"
	case TokenDiv:
		return "/"
	case TokenPow:
		return "^"
	case TokenAssign:
		return "="
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	default:
		return "(unknown)"
	}
}

// Token represents a lexical token in an infix expression.
type Token struct {
	Type     TokenType // Type of the token
	Value    string    // Literal value of the token
	Position int       // Starting byte offset in the input string
}

// Operator returns the arithmetic operator corresponding to the token
// type. The second result is false for non-operator tokens.
func (t Token) Operator() (types.Operator, bool) {
	switch t.Type {
	case TokenPlus:
		return types.OpAdd, true
	case TokenMinus:
		return types.OpSub, true
	case TokenMult:
		return types.OpMul, true
	case TokenDiv:
		return types.OpDiv, true
	case TokenPow:
		return types.OpPow, true
	default:
		return 0, false
	}
}

// symbols1 maps single-character symbols to token types.
var symbols1 = [...]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMult,
	'/': TokenDiv,
	'^': TokenPow,
	'=': TokenAssign,
	'(': TokenParenOpen,
	')': TokenParenClose,
}

const symbol1Count = rune(len(symbols1))

// lookupSymbol1 returns the token type for a single-character symbol.
// Returns 0 if the rune is not a valid symbol.
func lookupSymbol1(r rune) TokenType {
	if r < 0 || r >= symbol1Count {
		return 0
	}
	return symbols1[r]
}

// IsIdentifier reports whether s matches the identifier grammar:
// a letter or underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if isNameStart(r) {
			continue
		}
		if i > 0 && isDigit(r) {
			continue
		}
		return false
	}
	return true
}

// IsDecimal reports whether s is a signed or unsigned decimal literal:
// an optional single leading sign, one or more digits, and an optional
// single fraction with at least one digit.
func IsDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	intDigits, fracDigits, dots := 0, 0, 0
	for _, r := range s {
		switch {
		case isDigit(r) && dots == 0:
			intDigits++
		case isDigit(r):
			fracDigits++
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return intDigits > 0 && (dots == 0 || fracDigits > 0)
}
