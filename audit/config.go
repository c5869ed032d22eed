// Package audit is prooflint's public surface: configuration, source
// directory processing and the watch loop. The audit logic itself lives
// in internal/checks.
package audit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where prooflint looks for configuration when the
// --config flag is not given.
const DefaultConfigPath = ".prooflint.yaml"

// Config represents the prooflint configuration.
type Config struct {
	Name string `yaml:"name"`
	// Session is the path of the Why3 proof session file.
	Session string `yaml:"session"`
	// Source is the directory holding the *.mlw source modules.
	Source string `yaml:"source"`
	// Exempt lists source files that need no proof entry.
	Exempt []string `yaml:"exempt"`
}

// DefaultConfig returns the configuration used when no file is present.
// twoHonestParties.mlw only drives the simple payment test, so it is
// exempt from the coverage audit out of the box.
func DefaultConfig() Config {
	return Config{
		Name:    "prooflint",
		Session: "src/why3session.xml",
		Source:  "src",
		Exempt:  []string{"twoHonestParties.mlw"},
	}
}

// LoadConfig reads a yaml configuration file. Fields left empty in the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return config, nil
}

// WriteDefaultConfig creates (or overwrites) a configuration file with
// the default settings.
func WriteDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	d, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
