package config

import (
	"slices"

	"github.com/arthur-debert/shkit/pkg/capability"
	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/arthur-debert/shkit/pkg/executor"
	"github.com/arthur-debert/shkit/pkg/ui"
)

// Config is the effective shkit configuration
type Config struct {
	Color ColorConfig `koanf:"color" toml:"color"`
	Exec  ExecConfig  `koanf:"exec" toml:"exec"`
	Lock  LockConfig  `koanf:"lock" toml:"lock"`
	Log   LogConfig   `koanf:"log" toml:"log"`

	// Source is the user config file that was loaded, if any
	Source string `koanf:"-" toml:"-"`
}

// ColorConfig controls the capability table
type ColorConfig struct {
	Mode   string `koanf:"mode" toml:"mode"`
	Source string `koanf:"source" toml:"source"`
}

// ExecConfig controls the command wrapper
type ExecConfig struct {
	Harness    string `koanf:"harness" toml:"harness"`
	ScriptPath string `koanf:"script_path" toml:"script_path"`
	Indent     string `koanf:"indent" toml:"indent"`
}

// LockConfig controls lock records
type LockConfig struct {
	Dir    string `koanf:"dir" toml:"dir"`
	Strict bool   `koanf:"strict" toml:"strict"`
}

// LogConfig controls logging
type LogConfig struct {
	File bool `koanf:"file" toml:"file"`
}

var (
	colorModes   = []string{ui.ColorAuto, ui.ColorAlways, ui.ColorNever}
	colorSources = []string{capability.SourceTerminfo, capability.SourceTput, capability.SourceANSI, capability.SourceNone}
)

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if !slices.Contains(colorModes, c.Color.Mode) {
		return invalid("color.mode", c.Color.Mode, colorModes)
	}
	if !slices.Contains(colorSources, c.Color.Source) {
		return invalid("color.source", c.Color.Source, colorSources)
	}
	if !slices.Contains(executor.Kinds(), c.Exec.Harness) {
		return invalid("exec.harness", c.Exec.Harness, executor.Kinds())
	}
	if c.Exec.ScriptPath == "" {
		return errors.New(errors.ErrConfigValid, "exec.script_path must not be empty").
			WithDetail("key", "exec.script_path")
	}
	return nil
}

func invalid(key, value string, valid []string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid %s %q", key, value).
		WithDetail("key", key).
		WithDetail("valid", valid)
}
