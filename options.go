package forth

// Option customizes an Interpreter created by New.
type Option interface{ apply(f *Interpreter) }

// Options combines any number of options into one; nil options are skipped.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(f *Interpreter) {
	for _, opt := range opts {
		opt.apply(f)
	}
}

// WithLogf enables trace logging through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStack pushes initial values onto the stack, last value on top.
func WithStack(values ...int) Option { return withStack(values) }

type withLogfn func(mess string, args ...interface{})
type withStack []int

func (logfn withLogfn) apply(f *Interpreter) { f.logfn = logfn }
func (values withStack) apply(f *Interpreter) { f.stack = append(f.stack, values...) }
