package arith

import (
	"errors"
	"math/big"
	"strconv"
)

// LexError indicates a numeric literal that does not parse as a number. It
// implements InputError.
type LexError struct {
	// Text is the literal as it was accumulated by the tokenizer.
	Text string
	// Kind is the type of token the tokenizer was scanning. Currently this is
	// always "number".
	Kind string
	// Col is the position of the first rune of the literal.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// BracketError is an error indicating a close bracket with no open bracket or
// an open bracket with no close bracket. It implements InputError.
type BracketError struct {
	// Col is the position of the offending bracket.
	Col int
	// Left is the opening bracket, or empty if there was none.
	Left string
	// Right is the closing bracket, or empty if there was none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression: an empty
// line, empty brackets, or an operator missing an operand. It implements
// InputError.
type EmptyExpressionError struct {
	// Col is the position of the operator or open bracket next to the empty
	// subexpression, or 0 if the whole input is empty.
	Col int
	// Op is the operator missing an operand. It is empty when the missing
	// expression is the whole input or the content of brackets.
	Op string
	// Right is whether the missing operand is on the right of Op.
	Right bool
}

func (err *EmptyExpressionError) Error() string {
	switch {
	case err.Op != "" && err.Right:
		return errpos(err.Col, "no expression after "+strconv.Quote(err.Op))
	case err.Op != "":
		return errpos(err.Col, "no expression before "+strconv.Quote(err.Op))
	case err.Col > 0:
		return errpos(err.Col, "empty brackets")
	default:
		return "no expression"
	}
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// OperandError is an error indicating two operands with no operator between
// them, e.g. "2(3)". It implements InputError.
type OperandError struct {
	// Col is the position of the second operand.
	Col int
	// Text is the second operand.
	Text string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operator before "+strconv.Quote(err.Text))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// DomainError is an error returned when arbitrary-precision evaluation reaches
// an operation whose result is not a number, e.g. 0/0 or a power of a negative
// base. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain operand.
	X *big.Float
	// Op is the operator that was applied.
	Op string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Op != "" {
		r += " of " + err.Op
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return big.ErrNaN{}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. It is 0 if the
	// error concerns the input as a whole.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*OperandError)(nil)
)

// IsFormatError reports whether err is caused by text that cannot be
// tokenized: a malformed number or unbalanced brackets.
func IsFormatError(err error) bool {
	var (
		lex *LexError
		br  *BracketError
	)
	return errors.As(err, &lex) || errors.As(err, &br)
}

// IsStructuralError reports whether err is caused by a token sequence that
// does not form an expression.
func IsStructuralError(err error) bool {
	var (
		empty *EmptyExpressionError
		oper  *OperandError
	)
	return errors.As(err, &empty) || errors.As(err, &oper)
}
