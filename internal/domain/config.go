package domain

// ConfigFileName is the optional settings file at the project root.
const ConfigFileName = "copy-assets.toml"

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Manifest string       `toml:"manifest,omitempty"` // Manifest file path, relative to the project root
	Log      LogConfig    `toml:"log"`
	Output   OutputConfig `toml:"output"`
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn or error
}

// OutputConfig holds settings from the [output] section.
type OutputConfig struct {
	Color *bool `toml:"color,omitempty"` // nil means enabled
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// ColorEnabled reports whether status lines may be colored.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
