package lazycalc

// DefaultRegistry returns a registry with the decimal digits '0' through '9'
// bound as literals and the four arithmetic operators bound:
//
//	+ - *	force both operands left to right and combine them
//	/	truncated integer division; a zero divisor is not guarded
//		against, so forcing such an expression panics with the
//		runtime's division error
//
// Each call returns a fresh registry, so extending one never affects
// another.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for d := byte('0'); d <= '9'; d++ {
		n := int(d - '0')
		r.RegisterLiteral(d, func() int { return n })
	}
	r.RegisterOperator('+', func(a, b Thunk) int { return a.Force() + b.Force() })
	r.RegisterOperator('-', func(a, b Thunk) int { return a.Force() - b.Force() })
	r.RegisterOperator('*', func(a, b Thunk) int { return a.Force() * b.Force() })
	r.RegisterOperator('/', func(a, b Thunk) int { return a.Force() / b.Force() })
	return r
}

// Const returns a literal producing a fixed value.
func Const(n int) LiteralFunc {
	return func() int { return n }
}

// Digits appends b to a as a decimal digit, so binding it to '!' makes "42!"
// force to 42.
func Digits(a, b Thunk) int {
	return a.Force()*10 + b.Force()
}

// Seq forces a, discards its result, then forces and returns b. The side
// effects of both operands run, in that order.
func Seq(a, b Thunk) int {
	a.Force()
	return b.Force()
}

// If forces a; if it is nonzero, If forces and returns b, and otherwise
// returns 0 with b never forced, suppressing b's side effects entirely.
func If(a, b Thunk) int {
	if a.Force() != 0 {
		return b.Force()
	}
	return 0
}

// Times forces a, then forces b that many times and returns 0. b's side
// effects run once per repetition; a nonpositive count runs b never.
func Times(a, b Thunk) int {
	n := a.Force()
	for i := 0; i < n; i++ {
		b.Force()
	}
	return 0
}
