// Command subcipher - YAML config file support.
//
// Flags stay authoritative: a value from the config file only applies to
// flags the user did not set explicitly on the command line. Keys missing
// from the file keep the built-in defaults (the file is unmarshalled over a
// defaults copy).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config carries the crack defaults shared by the CLI commands.
type config struct {
	Iterations  int     `yaml:"iterations"`
	Temperature float64 `yaml:"temperature"`
	Chains      int     `yaml:"chains"`
	Seed        int64   `yaml:"seed"`
	Pseudocount float64 `yaml:"pseudocount"`
	Model       string  `yaml:"model"`
}

// defaultConfig mirrors the engine defaults plus CLI-only conveniences.
func defaultConfig() config {
	return config{
		Iterations:  20000,
		Temperature: 2.0,
		Chains:      1,
		Seed:        0,
		Pseudocount: 0.5,
		Model:       "model.json",
	}
}

// loadConfig reads path and unmarshals it over a defaults copy, so omitted
// keys keep their built-in values.
func loadConfig(path string) (config, error) {
	out := defaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return out, nil
}

// mergeUnchanged overwrites every cfg field whose corresponding flag the
// user did NOT set on the command line with the file value. Flags absent on
// the current command count as unchanged.
func (c *config) mergeUnchanged(cmd *cobra.Command, file config) {
	f := cmd.Flags()
	if !f.Changed("iterations") {
		c.Iterations = file.Iterations
	}
	if !f.Changed("temperature") {
		c.Temperature = file.Temperature
	}
	if !f.Changed("chains") {
		c.Chains = file.Chains
	}
	if !f.Changed("seed") {
		c.Seed = file.Seed
	}
	if !f.Changed("pseudocount") {
		c.Pseudocount = file.Pseudocount
	}
	if !f.Changed("model") {
		c.Model = file.Model
	}
}
