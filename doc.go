// Package lazycalc implements a lazy postfix (reverse Polish) calculator.
//
// Expressions are sequences of single-byte tokens. Each token is bound in a
// Registry either to a literal, which produces an integer, or to an operator,
// which combines two deferred operands. Evaluating an expression builds a
// tree of thunks without running any of them; forcing the resulting Thunk is
// what runs the arithmetic. Because operators receive their operands as
// thunks, user-registered operators decide whether, when, and how many times
// each operand runs, which makes short-circuiting, sequencing, and repetition
// expressible without any support from the evaluator itself.
//
package lazycalc
