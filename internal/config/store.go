package config

// StoreConfig configures the answer history database.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled,omitempty"`
	Path    string `yaml:"path" json:"path,omitempty"`
}
