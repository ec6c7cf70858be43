package reach

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors for Walk.
var (
	// ErrNilMap is returned when a nil map is passed.
	ErrNilMap = errors.New("reach: map is nil")

	// ErrStartOutOfBounds is returned when the start point is not on the map.
	ErrStartOutOfBounds = errors.New("reach: start point out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures a walk via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// walk starts.
type Option func(*WalkOptions)

// WalkOptions holds the hooks and limits of a walk.
type WalkOptions struct {
	// OnEnqueue is called each time a point is queued, duplicates included.
	OnEnqueue func(p geom.Point)

	// OnDequeue is called each time a point leaves the queue, before the
	// visited check.
	OnDequeue func(p geom.Point)

	// MaxSteps, if > 0, ends the walk after that many dequeues.
	MaxSteps int

	// Logger receives debug records. Nil disables logging.
	Logger *log.Logger

	err error
}

// DefaultOptions returns WalkOptions with no-op hooks and no step limit.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		OnEnqueue: func(geom.Point) {},
		OnDequeue: func(geom.Point) {},
	}
}

// WithOnEnqueue registers a callback run on every enqueue.
func WithOnEnqueue(fn func(p geom.Point)) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run on every dequeue.
func WithOnDequeue(fn func(p geom.Point)) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxSteps bounds the number of dequeues.
//
//	n > 0:  stop after n dequeues
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *WalkOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger sends debug records about the walk to l.
func WithLogger(l *log.Logger) Option {
	return func(o *WalkOptions) {
		o.Logger = l
	}
}

// Result summarises a finished walk.
type Result struct {
	// Visited counts the tiles handed to the visitor.
	Visited int
	// Stopped is true when the visitor ended the walk.
	Stopped bool
	// Truncated is true when MaxSteps ended the walk with points still queued.
	Truncated bool
}
