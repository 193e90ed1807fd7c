// Package config loads agent-browser's optional user preferences file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the complete agent-browser configuration. The file is
// read-only: the installer never writes it and keeps no other state between
// runs besides the files it leaves under the install root.
type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`
	Install InstallConfig `toml:"install"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// AutoConfirm skips confirmation prompts when true (like -y flag).
	AutoConfirm bool `toml:"auto_confirm"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// InstallConfig contains installer settings.
type InstallConfig struct {
	// Root overrides the default install root (~/.browseros).
	Root string `toml:"root"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AutoConfirm: false,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ShouldUseColor reports whether colored output is enabled, honoring NO_COLOR.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}

// ResolveInstallRoot returns the configured install root, falling back to the
// default location under the user's home.
func (c *Config) ResolveInstallRoot() string {
	if c.Install.Root != "" {
		return c.Install.Root
	}
	return DefaultInstallRoot()
}
