// Copyright (c) HashiCorp, Inc.

package recsparser

import "golang.org/x/exp/constraints"

// options configure a Parser's internal buffer sizing. They exist so
// callers with unusually large records or very wide records can avoid a
// round of buffer growth, not because the defaults are typically wrong.
type options struct {
	lineBufSize int
	linesBuf    int
}

// atLeast clamps v up to min, guarding against an Option supplying a
// non-positive buffer dimension.
func atLeast[T constraints.Ordered](v, min T) T {
	if v < min {
		return min
	}
	return v
}

// defaultLineBufSize is the starting capacity reserved for each line
// buffer, matching the ambient record line length seen in practice.
const defaultLineBufSize = 65535

// defaultLinesBuf is the starting number of line buffers preallocated
// per record.
const defaultLinesBuf = 1024

func getDefaultOptions() options {
	return options{lineBufSize: defaultLineBufSize, linesBuf: defaultLinesBuf}
}

// Option configures a Parser at construction time.
type Option func(*options) error

func getOpts(opt ...Option) (options, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if err := o(&opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// WithLineBufferSize overrides the capacity reserved per line buffer.
func WithLineBufferSize(n int) Option {
	return func(o *options) error {
		o.lineBufSize = atLeast(n, 1)
		return nil
	}
}

// WithLineBufferCount overrides how many line buffers are preallocated
// per record before the parser starts growing the pool.
func WithLineBufferCount(n int) Option {
	return func(o *options) error {
		o.linesBuf = atLeast(n, 1)
		return nil
	}
}
