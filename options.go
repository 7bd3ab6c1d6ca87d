// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package reactor

// reactorOptions holds configuration options for Reactor creation.
type reactorOptions struct {
	logger       Logger
	pollCapacity int
	postCapacity int
}

// --- Options ---

// Option configures a Reactor instance.
type Option interface {
	apply(*reactorOptions)
}

type optionFunc func(*reactorOptions)

func (f optionFunc) apply(opts *reactorOptions) { f(opts) }

// WithLogger sets the Logger the reactor reports enqueue/dequeue/fire/
// cleanup and stop-drain/poll-error events to. The default discards
// everything.
func WithLogger(logger Logger) Option {
	return optionFunc(func(opts *reactorOptions) {
		opts.logger = logger
	})
}

// WithPollCapacity preallocates the poll vector's backing array.
func WithPollCapacity(n int) Option {
	return optionFunc(func(opts *reactorOptions) {
		opts.pollCapacity = n
	})
}

// WithPostCapacity preallocates the synchronous-post ring's backing
// array.
func WithPostCapacity(n int) Option {
	return optionFunc(func(opts *reactorOptions) {
		opts.postCapacity = n
	})
}

// resolveOptions applies Option instances to reactorOptions.
func resolveOptions(opts []Option) *reactorOptions {
	cfg := &reactorOptions{
		logger:       NewNoOpLogger(),
		pollCapacity: 16,
		postCapacity: 8,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	return cfg
}
