package lazycalc

import "strconv"

// SyntaxError is an error indicating a malformed postfix expression: an
// operator token appeared with fewer than two operands available, or the
// scan ended with anything other than exactly one value on the stack. It
// implements InputError.
type SyntaxError struct {
	// Col is the position of the error. For an expression that ends with
	// too many or too few values, it is one past the last token.
	Col int
	// Token is the operator that found too few operands. It is zero when
	// the error is a bad final stack depth.
	Token byte
	// Depth is the number of operands that were available.
	Depth int
}

func (err *SyntaxError) Error() string {
	if err.Token != 0 {
		return errpos(err.Col, "operator "+quoteToken(err.Token)+" needs 2 operands, have "+strconv.Itoa(err.Depth))
	}
	switch err.Depth {
	case 0:
		return errpos(err.Col, "empty expression")
	default:
		return errpos(err.Col, strconv.Itoa(err.Depth)+" values left on stack")
	}
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a token with no registry binding.
// It implements InputError.
type OperatorError struct {
	// Col is the position of the token.
	Col int
	// Token is the unbound token.
	Token byte
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+quoteToken(err.Token))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// RedefinedError is an error indicating an attempt to bind a token that is
// already bound. Registration errors carry no input position, so
// RedefinedError does not implement InputError.
type RedefinedError struct {
	// Token is the token that was already bound.
	Token byte
	// Binding is what the token is currently bound as.
	Binding Binding
}

func (err *RedefinedError) Error() string {
	return "token " + quoteToken(err.Token) + " already defined as " + err.Binding.String()
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// quoteToken renders a token for error messages.
func quoteToken(tok byte) string {
	return strconv.QuoteRune(rune(tok))
}

// InputError is an error with position information. Every error resulting
// from scanning invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of bytes up to
	// and including the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*OperatorError)(nil)
)
