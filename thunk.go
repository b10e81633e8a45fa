package lazycalc

// Thunk is a deferred integer computation. A Thunk is a handle: assigning or
// passing one copies the handle, not the computation, so every copy forces
// the same underlying logic and observes the same side effects. The zero
// Thunk is not usable; construct one with Defer.
type Thunk struct {
	f func() int
}

// Defer wraps a computation in a Thunk without running it. Nothing runs
// until Force is called on the result (or on a copy of it).
func Defer(f func() int) Thunk {
	if f == nil {
		panic("lazycalc: Defer with nil computation")
	}
	return Thunk{f: f}
}

// Force runs the computation now and returns its result. Results are never
// cached: each call re-runs the computation, including any side effects it
// performs, and a Thunk that is never forced never runs at all. Force does
// not modify the Thunk; it remains forcible. Panics raised by the wrapped
// computation propagate to the caller.
func (t Thunk) Force() int {
	return t.f()
}
