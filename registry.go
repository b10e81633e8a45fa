package lazycalc

// NumTokens is the size of the token domain. Tokens are single-byte
// character codes in [0, NumTokens).
const NumTokens = 128

// LiteralFunc produces the value of a literal token. It runs once per Force
// of every thunk that contains the literal; it may compute its result
// dynamically or perform side effects.
type LiteralFunc func() int

// OperatorFunc combines two operand thunks into a result. a is the operand
// pushed earlier, b the one pushed later. The operator alone decides
// whether, when, and how many times each operand is forced; the evaluator
// never forces operands on its behalf.
type OperatorFunc func(a, b Thunk) int

// Binding reports how a token is bound in a Registry.
type Binding int

const (
	Unbound Binding = iota
	Literal
	Operator
)

func (b Binding) String() string {
	switch b {
	case Unbound:
		return "unbound"
	case Literal:
		return "literal"
	case Operator:
		return "operator"
	}
	return "invalid"
}

// Registry maps tokens to literals and operators. A token may be bound at
// most once over the lifetime of the Registry, as either a literal or an
// operator but never both; a failed registration leaves the existing binding
// untouched. A Registry is not safe for concurrent registration; complete
// all registration before evaluating.
type Registry struct {
	literals  [NumTokens]LiteralFunc
	operators [NumTokens]OperatorFunc
}

// NewRegistry creates a Registry with no tokens bound.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterLiteral binds tok to a literal producer. It returns a
// *RedefinedError if tok is already bound, whether as a literal or as an
// operator. Registering a token outside the token domain or a nil producer
// is a programmer error and panics.
func (r *Registry) RegisterLiteral(tok byte, fn LiteralFunc) error {
	if tok >= NumTokens {
		panic("lazycalc: token out of range: " + quoteToken(tok))
	}
	if fn == nil {
		panic("lazycalc: nil literal for token " + quoteToken(tok))
	}
	if b := r.Lookup(tok); b != Unbound {
		return &RedefinedError{Token: tok, Binding: b}
	}
	r.literals[tok] = fn
	return nil
}

// RegisterOperator binds tok to an operator. It returns a *RedefinedError if
// tok is already bound, whether as a literal or as an operator. Registering
// a token outside the token domain or a nil operator is a programmer error
// and panics.
func (r *Registry) RegisterOperator(tok byte, fn OperatorFunc) error {
	if tok >= NumTokens {
		panic("lazycalc: token out of range: " + quoteToken(tok))
	}
	if fn == nil {
		panic("lazycalc: nil operator for token " + quoteToken(tok))
	}
	if b := r.Lookup(tok); b != Unbound {
		return &RedefinedError{Token: tok, Binding: b}
	}
	r.operators[tok] = fn
	return nil
}

// Lookup reports the binding of tok. Tokens outside the token domain are
// Unbound. Lookup never modifies the Registry.
func (r *Registry) Lookup(tok byte) Binding {
	if tok >= NumTokens {
		return Unbound
	}
	switch {
	case r.literals[tok] != nil:
		return Literal
	case r.operators[tok] != nil:
		return Operator
	}
	return Unbound
}
