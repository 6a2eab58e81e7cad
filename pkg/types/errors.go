package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a failure class of the expression pipeline.
type ErrorCode string

const (
	// S0xxx: Lexer/Syntax errors
	ErrEmptyInput          ErrorCode = "S0001"
	ErrLex                 ErrorCode = "S0101"
	ErrUnexpectedToken     ErrorCode = "S0201"
	ErrUnexpectedEnd       ErrorCode = "S0202"
	ErrMissingClosingParen ErrorCode = "S0203"
	ErrTrailingTokens      ErrorCode = "S0204"
	ErrInvalidAssignTarget ErrorCode = "S0205"
	ErrDepthExceeded       ErrorCode = "S0206"

	// C0xxx: Conversion errors
	ErrUnbalancedParen ErrorCode = "C0301"
	ErrInvalidToken    ErrorCode = "C0302"
	ErrUnsupportedNode ErrorCode = "C0303"

	// D0xxx: Evaluation errors
	ErrInsufficientOperands ErrorCode = "D0401"
	ErrDivisionByZero       ErrorCode = "D0402"
	ErrUndefinedVariable    ErrorCode = "D0403"
	ErrMalformedExpression  ErrorCode = "D0404"
	ErrMissingVariables     ErrorCode = "D0405"

	// X0xxx: Internal-consistency violations (should be unreachable)
	ErrInternal ErrorCode = "X0001"
)

// Error represents a structured expression-pipeline error.
//
// The core raises an Error at the point of detection and propagates it
// unmodified; it never retries and never returns partial results.
// Formatting for display belongs to the embedding application, which
// can inspect Code and the payload fields directly.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int      // 0-based byte offset into the source, -1 when not applicable
	Token    string   // offending token or substring, when relevant
	Names    []string // identifier names, for missing/undefined variable errors
	Err      error
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds token information to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithNames adds identifier names to the error.
func (e *Error) WithNames(names []string) *Error {
	e.Names = names
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// CodeOf returns the error code carried by err, or the empty code when
// err is not a pipeline error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// NewMissingVariablesError reports every variable absent from a binding
// set in a single error.
func NewMissingVariablesError(names []string) *Error {
	e := NewError(ErrMissingVariables,
		fmt.Sprintf("Missing values for variables: %s", strings.Join(names, ", ")), -1)
	e.Names = names
	return e
}
