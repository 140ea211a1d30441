package calc

// DefaultMaxFractionDigits is the number of digits after the decimal point
// that Evaluate produces when no option says otherwise.
const DefaultMaxFractionDigits = 8

// Option is an option for Evaluate.
type Option interface {
	evalOption(evalctx) evalctx
}

// evalctx holds the settings for one call to Evaluate.
type evalctx struct {
	digits int
}

type digitsopt int

func (o digitsopt) evalOption(c evalctx) evalctx {
	c.digits = int(o)
	if c.digits < 0 {
		c.digits = 0
	}
	return c
}

// MaxFractionDigits sets the number of digits after the decimal point in the
// result, which is rounded half up to that many digits. Negative values are
// treated as 0.
func MaxFractionDigits(n int) Option {
	return digitsopt(n)
}

func applyOpts(opts []Option) evalctx {
	c := evalctx{digits: DefaultMaxFractionDigits}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.evalOption(c)
	}
	return c
}
