package go_prefix_tree

import "go.uber.org/zap"

type OptionFn func(*Tree)

type options struct {
	// logger receives the debug traces of insertions and the dump failures.
	// Falls back to the global zap logger.
	logger *zap.Logger
}

func defaultOptions() options {
	return options{
		logger: zap.L(),
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(t *Tree) {
		if logger != nil {
			t.opts.logger = logger
		}
	}
}
