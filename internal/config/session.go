package config

// SessionConfig configures access to the puzzle site.
type SessionConfig struct {
	// Value of the site's "session" cookie. Prefer AOC_SESSION over storing it here.
	Token     string `yaml:"token" json:"token,omitempty"`
	BaseURL   string `yaml:"base_url" json:"base_url,omitempty"`
	UserAgent string `yaml:"user_agent" json:"user_agent,omitempty"`
	Timeout   string `yaml:"timeout" json:"timeout,omitempty"` // e.g., "30s"
}

// DefaultSessionConfig returns the public site settings without a token.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		BaseURL:   "https://adventofcode.com",
		UserAgent: "advent-cli/1.0",
		Timeout:   "30s",
	}
}

// HasToken reports whether a session token is configured.
func (c SessionConfig) HasToken() bool {
	return c.Token != ""
}
