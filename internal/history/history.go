// Package history provides persistence for evaluated calculations.
package history

// Entry is one recorded calculation.
type Entry struct {
	Expr   string
	Result int
	Ts     string
}

// Store is the interface for calculation persistence.
type Store interface {
	// Record stores one calculation and its result.
	Record(expr string, result int) error
	// Recent returns up to limit calculations, newest first.
	Recent(limit int) ([]Entry, error)
	// Close releases resources.
	Close() error
}
