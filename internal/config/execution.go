package config

// ExecutionConfig configures how solvers run.
type ExecutionConfig struct {
	// Upper bound on goroutines per solver and on days solved at once by `all`
	Workers int `yaml:"workers" json:"workers,omitempty"`

	// Per-run timeout, e.g. "1m"
	Timeout string `yaml:"timeout" json:"timeout,omitempty"`
}
