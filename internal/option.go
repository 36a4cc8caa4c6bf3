package internal

import "io"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	command string
	dryRun  bool
	strict  bool
	output  io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithCommand selects the job to run (one of the Command* constants).
func WithCommand(name string) Option {
	return func(a *application) {
		a.command = name
	}
}

// WithDryRun reports changes without writing files.
func WithDryRun(dryRun bool) Option {
	return func(a *application) {
		a.dryRun = dryRun
	}
}

// WithStrict makes the check command fail when any document is invalid.
func WithStrict(strict bool) Option {
	return func(a *application) {
		a.strict = strict
	}
}

// WithOutput redirects log output, stdout by default.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.output = w
	}
}
