package addrset

import (
	"log/slog"

	"github.com/hupe1980/addrset/internal/bitmap"
)

// Storage selects the bit-vector representation used for every segment.
type Storage int

const (
	// StorageDense allocates one bit per slot up front. Lookups touch a
	// single word. This is the default.
	StorageDense Storage = iota

	// StorageSparse stores only set bits in a Roaring bitmap. Prefer it for
	// very large heaps where a traversal visits a small fraction of objects.
	StorageSparse
)

// String implements fmt.Stringer.
func (s Storage) String() string {
	return s.kind().String()
}

func (s Storage) kind() bitmap.Kind {
	if s == StorageSparse {
		return bitmap.KindSparse
	}
	return bitmap.KindDense
}

type options struct {
	logger   *Logger
	storage  Storage
	validate bool
}

// Option configures New.
type Option func(*options)

// WithLogger configures structured logging for construction.
// Pass nil to disable logging. Lookups never log.
//
// Example with JSON logging:
//
//	logger := addrset.NewJSONLogger(slog.LevelDebug)
//	set, _ := addrset.New(heap, addrset.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithStorage selects the per-segment bit-vector representation.
func WithStorage(s Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithValidation makes New reject layouts whose segments are unsorted or
// overlapping.
//
// By default the layout is trusted: the heap provider guarantees ordering, and
// a broken layout only yields wrong membership answers.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:  NoopLogger(),
		storage: StorageDense,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
