package shkit

import (
	"os"

	"github.com/arthur-debert/shkit/pkg/capability"
	"github.com/arthur-debert/shkit/pkg/config"
	"github.com/arthur-debert/shkit/pkg/style"
	"github.com/arthur-debert/shkit/pkg/ui"
	"github.com/spf13/cobra"
)

// app holds what the commands of one invocation share. The config is
// loaded before any command runs; the capability table is built on first
// use and never rebuilt.
type app struct {
	verbosity  int
	colorMode  string
	configPath string

	cfg      *config.Config
	source   string
	table    *capability.Table
	renderer *style.Renderer

	// exitCode is set when the renderer's Die runs
	exitCode int
	died     bool
}

// overrides collects flag values that shadow config keys. Only flags the
// user actually set are included.
func (a *app) overrides(cmd *cobra.Command) map[string]interface{} {
	o := map[string]interface{}{}
	if f := cmd.Flags().Lookup("color"); f != nil && f.Changed {
		o["color.mode"] = a.colorMode
	}
	if f := cmd.Flags().Lookup("harness"); f != nil && f.Changed {
		o["exec.harness"] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		o["lock.strict"] = f.Value.String()
	}
	return o
}

// colorSource decides which querier source applies to this invocation
func (a *app) colorSource(cmd *cobra.Command) (string, error) {
	out, _ := cmd.OutOrStdout().(*os.File)
	if out == nil {
		// not a file, so never a terminal; only "always" enables color
		if a.cfg.Color.Mode != ui.ColorAlways {
			return capability.SourceNone, nil
		}
		return a.cfg.Color.Source, nil
	}
	enabled, err := ui.ColorEnabled(a.cfg.Color.Mode, out)
	if err != nil {
		return "", err
	}
	if !enabled {
		return capability.SourceNone, nil
	}
	return a.cfg.Color.Source, nil
}

// styler returns the renderer, building the capability table once
func (a *app) styler(cmd *cobra.Command) (*style.Renderer, error) {
	if a.renderer != nil {
		return a.renderer, nil
	}

	source, err := a.colorSource(cmd)
	if err != nil {
		return nil, err
	}
	q, err := capability.NewQuerier(source)
	if err != nil {
		return nil, err
	}

	a.source = source
	a.table = capability.Build(q)
	a.renderer = style.New(a.table,
		style.WithOutput(cmd.OutOrStdout()),
		style.WithErrorOutput(cmd.ErrOrStderr()),
		style.WithExit(a.requestExit),
	)
	return a.renderer, nil
}

// requestExit records Die's status; the command returns it as an ExitError
func (a *app) requestExit(code int) {
	a.died = true
	a.exitCode = code
}

// dieStatus returns the ExitError for a Die that ran, nil otherwise
func (a *app) dieStatus() error {
	if !a.died {
		return nil
	}
	return &ExitError{Code: a.exitCode}
}
