package lazycalc

// Calc evaluates postfix expressions against a registry. The scratch stack
// used during a scan is reused between calls, so it is not safe to use a
// Calc concurrently.
type Calc struct {
	reg   *Registry
	stack []Thunk
}

// Option is an option used when creating a Calc.
type Option interface {
	calcOption()
}

type (
	regopt  struct{ reg *Registry }
	bareopt struct{}
)

func (regopt) calcOption()  {}
func (bareopt) calcOption() {}

// WithRegistry sets the registry the Calc evaluates against. The Calc does
// not copy the registry; additional tokens registered later are visible to
// subsequent evaluations.
func WithRegistry(reg *Registry) Option {
	return regopt{reg}
}

// NoBuiltins starts the Calc from an empty registry instead of
// DefaultRegistry.
func NoBuiltins() Option {
	return bareopt{}
}

// New creates a Calc. Without options it evaluates against DefaultRegistry.
func New(opts ...Option) *Calc {
	c := &Calc{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case regopt:
			c.reg = opt.reg
		case bareopt:
			c.reg = NewRegistry()
		default:
			panic("lazycalc: unknown option type")
		}
	}
	if c.reg == nil {
		c.reg = DefaultRegistry()
	}
	return c
}

// Registry returns the registry the Calc evaluates against, e.g. to register
// additional literals and operators.
func (c *Calc) Registry() *Registry {
	return c.reg
}

// Evaluate scans src left to right and builds the deferred computation it
// describes, without running any of it. Each literal token pushes a thunk;
// each operator token pops the two most recent thunks (the top of the stack
// becoming the operator's second operand) and pushes a thunk that will apply
// the operator when forced. On success the single remaining thunk is
// returned unforced.
//
// Evaluate fails with *OperatorError on an unbound token and with
// *SyntaxError when an operator has fewer than two operands or when the scan
// does not end with exactly one value. After an error the Calc remains
// usable for further evaluations.
func (c *Calc) Evaluate(src string) (Thunk, error) {
	c.stack = c.stack[:0]
	for i := 0; i < len(src); i++ {
		tok := src[i]
		switch c.reg.Lookup(tok) {
		case Literal:
			c.push(Defer(c.reg.literals[tok]))
		case Operator:
			if len(c.stack) < 2 {
				return Thunk{}, &SyntaxError{Col: i + 1, Token: tok, Depth: len(c.stack)}
			}
			fn := c.reg.operators[tok]
			b := c.pop()
			a := c.pop()
			c.push(Defer(func() int { return fn(a, b) }))
		default:
			return Thunk{}, &OperatorError{Col: i + 1, Token: tok}
		}
	}
	if len(c.stack) != 1 {
		return Thunk{}, &SyntaxError{Col: len(src) + 1, Depth: len(c.stack)}
	}
	return c.pop(), nil
}

// Calculate evaluates src and forces the result. Forcing runs every
// combinator the expression built, in whatever order the combinators choose,
// so any fault they raise (e.g. integer division by zero) propagates to the
// caller as a panic.
func (c *Calc) Calculate(src string) (int, error) {
	t, err := c.Evaluate(src)
	if err != nil {
		return 0, err
	}
	return t.Force(), nil
}

// push adds a thunk to the top of the stack.
func (c *Calc) push(t Thunk) {
	c.stack = append(c.stack, t)
}

// pop removes the top of the stack and returns it.
func (c *Calc) pop() Thunk {
	t := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return t
}

// Calculate is a shortcut to evaluate a single expression against
// DefaultRegistry.
func Calculate(src string) (int, error) {
	return New().Calculate(src)
}
