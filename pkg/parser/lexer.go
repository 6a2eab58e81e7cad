package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

const eof = -1

// Lexer converts an infix expression into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go" technique.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	width   int    // Width of last rune read
	err     error  // First error encountered
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls.
//
// Patterns are tried in a fixed priority order: number, identifier,
// single-character symbol. Whitespace is skipped and never emitted.
// Any rune matching none of the patterns produces a TokenError carrying
// the maximal run of unrecognized runes and its byte offset.
func (l *Lexer) Next() Token {
	l.acceptAll(isWhitespace)
	l.ignore()

	ch := l.nextRune()
	if ch == eof {
		return l.eof()
	}

	// Number literals
	if isDigit(ch) {
		l.backup()
		return l.scanNumber()
	}

	// Identifiers
	if isNameStart(ch) {
		l.backup()
		return l.scanIdentifier()
	}

	// Single-character symbols: operators, assignment, parentheses
	if tt := lookupSymbol1(ch); tt > 0 {
		return l.newToken(tt)
	}

	// Unrecognized input
	l.backup()
	return l.scanInvalid()
}

// Error returns the first error encountered during lexing, if any.
func (l *Lexer) Error() error {
	return l.err
}

// scanNumber reads a number literal from the current position.
// Format: one or more digits, optionally a single decimal point with
// trailing digits. A dot with no following digit is left unconsumed.
func (l *Lexer) scanNumber() Token {
	l.acceptAll(isDigit)

	// No digits after the decimal point: the dot is not part of the
	// number and will be reported as unrecognized input on the next
	// call. Rewind to the dot itself, not by the width of whatever
	// rune followed it.
	dot := l.current
	if l.acceptRune('.') && !l.acceptAll(isDigit) {
		l.current = dot
		l.width = 0
	}

	return l.newToken(TokenNumber)
}

// scanIdentifier reads an identifier from the current position.
// Format: a letter or underscore followed by letters, digits or underscores.
func (l *Lexer) scanIdentifier() Token {
	l.accept(isNameStart)
	l.acceptAll(isNameRune)
	return l.newToken(TokenIdentifier)
}

// scanInvalid consumes the maximal run of runes that match no token
// pattern and reports it as a lex error. The same path handles both
// mid-string garbage and unconsumed trailing characters.
func (l *Lexer) scanInvalid() Token {
	for {
		ch := l.nextRune()
		if ch == eof {
			break
		}
		if isWhitespace(ch) || isDigit(ch) || isNameStart(ch) || lookupSymbol1(ch) > 0 {
			l.backup()
			break
		}
	}
	t := l.newToken(TokenError)
	l.err = &types.Error{
		Code:     types.ErrLex,
		Message:  fmt.Sprintf("Unrecognized character(s) %q", t.Value),
		Position: t.Position,
		Token:    t.Value,
	}
	return t
}

// Tokenize scans the entire expression eagerly and returns the ordered
// token sequence. Re-tokenizing the same input always yields the same
// sequence; the lexer has no side effects beyond its own cursor.
func Tokenize(expression string) ([]Token, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, types.NewError(types.ErrEmptyInput, "Expression cannot be empty", -1)
	}

	l := NewLexer(expression)
	var tokens []Token
	for {
		t := l.Next()
		switch t.Type {
		case TokenEOF:
			return tokens, nil
		case TokenError:
			return nil, l.Error()
		default:
			tokens = append(tokens, t)
		}
	}
}

// Helper methods

func (l *Lexer) eof() Token {
	return Token{
		Type:     TokenEOF,
		Position: l.current,
	}
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.err != nil || l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
}

func (l *Lexer) ignore() {
	l.start = l.current
}

func (l *Lexer) acceptRune(r rune) bool {
	return l.accept(func(c rune) bool {
		return c == r
	})
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

// Character classification functions

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameRune(r rune) bool {
	return isNameStart(r) || isDigit(r)
}
