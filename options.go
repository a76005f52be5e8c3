// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package autoreset

import (
	"github.com/joeycumines/logiface"
)

// eventOptions holds configuration options for Event creation.
type eventOptions struct {
	logger    *logiface.Logger[logiface.Event]
	signalled bool
}

// Option configures an Event instance.
type Option interface {
	applyEvent(*eventOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applyEventFunc func(*eventOptions) error
}

func (o *optionImpl) applyEvent(opts *eventOptions) error {
	return o.applyEventFunc(opts)
}

// WithLogger attaches a structured logger to the Event. Construction,
// construction failures, Close, and fatal kernel errors are logged.
// A nil logger (the default) disables logging.
//
// Typed loggers may be converted using [logiface.Logger.Logger].
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *eventOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithSignalled sets the initial state of the Event. When enabled, the first
// wait returns immediately. The default is unsignalled.
func WithSignalled(signalled bool) Option {
	return &optionImpl{func(opts *eventOptions) error {
		opts.signalled = signalled
		return nil
	}}
}

// resolveEventOptions applies Option instances to eventOptions.
func resolveEventOptions(opts []Option) (*eventOptions, error) {
	cfg := &eventOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyEvent(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
