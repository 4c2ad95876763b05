package bitvec

import "log/slog"

type config struct {
	alloc  Allocator
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		alloc:  HeapAllocator{},
		logger: slog.Default(),
	}
}

// Option is a configuration option for a Bitmap.
type Option func(*config)

// WithAllocator sets the provider of the bitmap's backing word array.
func WithAllocator(alloc Allocator) Option {
	return func(c *config) {
		c.alloc = alloc
	}
}

// WithLogger sets the structured logger used on the fatal exhaustion path.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
