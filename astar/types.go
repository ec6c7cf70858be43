package astar

import (
	"errors"

	"github.com/charmbracelet/log"
)

// ErrBadMaxExpansions is the panic value of WithMaxExpansions for a
// negative budget.
var ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")

// Options configures Navigate.
type Options struct {
	// MaxExpansions, if > 0, gives up after that many nodes have been
	// expanded. 0 means no limit.
	MaxExpansions int
	// Logger receives debug records. Nil disables logging.
	Logger *log.Logger
}

// Option is a functional option for Navigate.
type Option func(*Options)

// DefaultOptions returns Options with no expansion limit and no logger.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxExpansions bounds the number of expanded nodes. A search that
// runs out of budget reports the goal unreachable.
// Panics if n is negative.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithLogger sends debug records about the search to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
