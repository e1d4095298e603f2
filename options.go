package lawdocx

import (
	"io"

	"github.com/lawdesk/lawdocx/extract"
	"github.com/lawdesk/lawdocx/patterns"
)

// config holds the resolved option set for one facade call.
type config struct {
	only     []string
	exclude  []string
	severity string
	set      patterns.Set
	stdin    io.Reader
}

// Option configures a facade call.
type Option func(*config)

// WithOnly restricts the audit to the named tools, registry order preserved.
func WithOnly(tools ...string) Option {
	return func(c *config) { c.only = append(c.only, tools...) }
}

// WithExclude removes the named tools from the audit.
func WithExclude(tools ...string) Option {
	return func(c *config) { c.exclude = append(c.exclude, tools...) }
}

// WithSeverity filters findings below the given minimum severity out of the
// returned envelopes.
func WithSeverity(minimum string) Option {
	return func(c *config) { c.severity = minimum }
}

// WithPatterns overrides the built-in detection patterns. Empty lists in the
// set keep the defaults for that tool.
func WithPatterns(set patterns.Set) Option {
	return func(c *config) { c.set = set }
}

// WithStdin substitutes the reader backing "-" inputs. The default is
// os.Stdin; tests pass buffers.
func WithStdin(r io.Reader) Option {
	return func(c *config) { c.stdin = r }
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// extractOptions compiles the config's pattern overrides into tool options.
// Tools without overrides keep their nil slot, which selects the defaults.
func (c config) extractOptions() (extract.Options, error) {
	var opts extract.Options
	var err error
	if len(c.set.Boilerplate) > 0 {
		if opts.BoilerplatePatterns, err = patterns.Compile(c.set.Boilerplate); err != nil {
			return opts, err
		}
	}
	if len(c.set.Todos) > 0 {
		if opts.TodoPatterns, err = patterns.Compile(c.set.Todos); err != nil {
			return opts, err
		}
	}
	if len(c.set.Brackets) > 0 {
		if opts.BracketPatterns, err = patterns.CompileDotAll(c.set.Brackets); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
