package molecule

import "nucleo-core/alphabet"

// Observer receives construction diagnostics. It must not influence the
// outcome; constructors behave identically with or without one.
type Observer interface {
	Created(kind alphabet.Kind, name string, length int)
	Rejected(kind alphabet.Kind, name string, err error)
}

// Option configures a constructor call.
type Option func(*options)

type options struct {
	observer Observer
}

// WithObserver routes construction diagnostics to o.
func WithObserver(o Observer) Option {
	return func(opts *options) { opts.observer = o }
}

func collect(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
