package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ArekkusuDev/polish-notation/pkg/types"
)

// Parser implements a recursive descent parser over an eagerly lexed
// token sequence. The precedence ladder, lowest to highest:
//
//	assignment (=, right-associative, identifier targets only)
//	additive (+ -, left-associative)
//	multiplicative (* /, left-associative)
//	power (^, right-associative)
//	primary (number | identifier | parenthesized expression)
type Parser struct {
	input  string
	tokens []Token
	pos    int
	depth  int
	opts   CompileOptions
}

// NewParser creates a new parser for the given input string.
func NewParser(input string, opts ...CompileOption) *Parser {
	options := CompileOptions{
		MaxDepth: 100,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Parser{
		input: input,
		opts:  options,
	}
}

// Parse parses the entire expression and returns the Expression holding
// the root AST node. A successful parse guarantees every token was
// consumed; leftovers produce a trailing-tokens error.
func (p *Parser) Parse() (*types.Expression, error) {
	tokens, err := Tokenize(p.input)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.pos = 0

	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if rest := p.tokens[p.pos:]; len(rest) > 0 {
		values := make([]string, len(rest))
		for i, t := range rest {
			values[i] = t.Value
		}
		return nil, types.NewError(types.ErrTrailingTokens,
			fmt.Sprintf("Unexpected tokens after expression: %s", strings.Join(values, " ")),
			rest[0].Position).WithToken(rest[0].Value)
	}

	return types.NewExpression(node, p.input), nil
}

// parseExpression parses a full expression at the lowest precedence
// level. Assignment is a top-level production only; parenthesized
// sub-expressions start at the additive level, so an Assignment node
// can appear only at the root or as the value of another assignment.
func (p *Parser) parseExpression() (types.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.parseAssignment()
}

// parseSubExpression parses the body of a parenthesized group.
func (p *Parser) parseSubExpression() (types.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.parseAdditive()
}

// enter guards recursion depth on every nested expression.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return types.NewError(types.ErrDepthExceeded,
			fmt.Sprintf("Expression exceeds maximum nesting depth of %d", p.opts.MaxDepth),
			p.currentPosition())
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// parseAssignment parses IDENT = expr chains. Assignment is
// right-associative: A = B = C binds as A = (B = C). The left operand
// must have reduced to a bare identifier.
func (p *Parser) parseAssignment() (types.Node, error) {
	node, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	t, ok := p.current()
	if !ok || t.Type != TokenAssign {
		return node, nil
	}

	target, isIdent := node.(*types.Identifier)
	if !isIdent {
		return nil, types.NewError(types.ErrInvalidAssignTarget,
			"Assignment target must be a bare identifier", t.Position).WithToken(t.Value)
	}

	p.advance()
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	return &types.Assignment{Target: target, Value: value}, nil
}

// parseAdditive parses + and - with left associativity.
func (p *Parser) parseAdditive() (types.Node, error) {
	node, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		t, ok := p.current()
		if !ok || (t.Type != TokenPlus && t.Type != TokenMinus) {
			return node, nil
		}
		op, _ := t.Operator()
		p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		node = &types.BinaryOp{Left: node, Op: op, Right: right}
	}
}

// parseMultiplicative parses * and / with left associativity.
func (p *Parser) parseMultiplicative() (types.Node, error) {
	node, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for {
		t, ok := p.current()
		if !ok || (t.Type != TokenMult && t.Type != TokenDiv) {
			return node, nil
		}
		op, _ := t.Operator()
		p.advance()

		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		node = &types.BinaryOp{Left: node, Op: op, Right: right}
	}
}

// parsePower parses ^ with right associativity: A ^ B ^ C binds as
// A ^ (B ^ C).
func (p *Parser) parsePower() (types.Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	t, ok := p.current()
	if !ok || t.Type != TokenPow {
		return node, nil
	}
	op, _ := t.Operator()
	p.advance()

	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &types.BinaryOp{Left: node, Op: op, Right: right}, nil
}

// parsePrimary parses a number literal, an identifier, or a
// parenthesized sub-expression.
func (p *Parser) parsePrimary() (types.Node, error) {
	t, ok := p.current()
	if !ok {
		return nil, types.NewError(types.ErrUnexpectedEnd,
			"Unexpected end of input", p.currentPosition())
	}

	switch t.Type {
	case TokenParenOpen:
		p.advance()
		node, err := p.parseSubExpression()
		if err != nil {
			return nil, err
		}
		closing, ok := p.current()
		if !ok || closing.Type != TokenParenClose {
			return nil, types.NewError(types.ErrMissingClosingParen,
				"Missing closing parenthesis", t.Position)
		}
		p.advance()
		return node, nil

	case TokenNumber:
		p.advance()
		return parseNumber(t)

	case TokenIdentifier:
		p.advance()
		return &types.Identifier{Name: t.Value}, nil

	default:
		return nil, types.NewError(types.ErrUnexpectedToken,
			fmt.Sprintf("Unexpected token: %s", t.Value), t.Position).WithToken(t.Value)
	}
}

// parseNumber builds a Number node, keeping the integer/float
// distinction of the source literal for display purposes.
func parseNumber(t Token) (types.Node, error) {
	if !strings.Contains(t.Value, ".") {
		v, err := strconv.ParseInt(t.Value, 10, 64)
		if err == nil {
			return &types.Number{Value: float64(v), Text: t.Value, IsInt: true}, nil
		}
		// Falls through for literals beyond int64 range; Text keeps
		// the exact digits for display.
	}
	v, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		// The lexer only emits digit runs, so this is unreachable.
		return nil, types.NewError(types.ErrInternal,
			fmt.Sprintf("Invalid number literal: %s", t.Value), t.Position).WithCause(err)
	}
	return &types.Number{Value: v, Text: t.Value, IsInt: !strings.Contains(t.Value, ".")}, nil
}

// current returns the token at the parser's position, if any.
func (p *Parser) current() (Token, bool) {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos], true
	}
	return Token{}, false
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.pos++
}

// currentPosition returns the byte offset of the current token, or the
// input length when the tokens are exhausted.
func (p *Parser) currentPosition() int {
	if t, ok := p.current(); ok {
		return t.Position
	}
	return len(p.input)
}
