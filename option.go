package glp

type Option func(*Problem) error

func WithLogger(logger Logger) Option {
	return func(p *Problem) error {
		p.logger = logger

		return nil
	}
}

// WithVerbose makes the solvers emit full progress output through the
// configured logger.
func WithVerbose(verbose bool) Option {
	return func(p *Problem) error {
		p.verbose = verbose

		return nil
	}
}

// WithPresolve toggles the LP/MIP presolver. It defaults to enabled.
func WithPresolve(presolve bool) Option {
	return func(p *Problem) error {
		p.presolve = presolve

		return nil
	}
}
