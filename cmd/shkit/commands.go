package shkit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/shkit/internal/version"
	"github.com/arthur-debert/shkit/pkg/config"
	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/arthur-debert/shkit/pkg/executor"
	"github.com/arthur-debert/shkit/pkg/indent"
	"github.com/arthur-debert/shkit/pkg/lock"
	"github.com/arthur-debert/shkit/pkg/logging"
	"github.com/arthur-debert/shkit/pkg/platform"
	"github.com/arthur-debert/shkit/pkg/prompt"
	"github.com/arthur-debert/shkit/pkg/shell"
	"github.com/arthur-debert/shkit/pkg/ui"
	"github.com/arthur-debert/shkit/pkg/ui/display"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "shkit",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				ConfigPath: a.configPath,
				Overrides:  a.overrides(cmd),
			})
			if err != nil {
				logging.SetupLogger(a.verbosity, false)
				return fmt.Errorf(MsgErrConfig, err)
			}
			a.cfg = cfg

			logging.SetupLogger(a.verbosity, cfg.Log.File)
			log.Debug().Str("command", cmd.Name()).Str("config", cfg.Source).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.colorMode, "color", ui.ColorAuto, MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "output", Title: "OUTPUT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "process", Title: "PROCESSES:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newErrorCmd(a))
	rootCmd.AddCommand(newDieCmd(a))
	rootCmd.AddCommand(newHeaderCmd(a))
	rootCmd.AddCommand(newIndentCmd(a))
	rootCmd.AddCommand(newCodesCmd(a))
	rootCmd.AddCommand(newAskCmd(a))
	rootCmd.AddCommand(newConfirmCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newLockCmd(a))
	rootCmd.AddCommand(newPlatformCmd())
	rootCmd.AddCommand(newQuoteCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// the pages are embedded, so this only fails on a broken build
	if err := installTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "render TEXT...",
		Short:   MsgRenderShort,
		Example: MsgRenderExample,
		GroupID: "output",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.styler(cmd)
			if err != nil {
				return err
			}
			return r.Print(args...)
		},
	}
}

func newErrorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "error TEXT...",
		Short:   MsgErrorShort,
		GroupID: "output",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.styler(cmd)
			if err != nil {
				return err
			}
			return r.Error(args...)
		},
	}
}

func newDieCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "die TEXT...",
		Short:   MsgDieShort,
		GroupID: "output",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.styler(cmd)
			if err != nil {
				return err
			}
			r.Die(args...)
			return a.dieStatus()
		},
	}
}

func newHeaderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "header TEXT...",
		Short:   MsgHeaderShort,
		GroupID: "output",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.styler(cmd)
			if err != nil {
				return err
			}
			return r.Header(args...)
		},
	}
}

func newIndentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "indent",
		Short:   MsgIndentShort,
		GroupID: "output",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pad := a.cfg.Exec.Indent
			if pad == "" {
				pad = indent.Pad
			}
			_, err := io.Copy(indent.NewWriterWithPad(cmd.OutOrStdout(), pad), cmd.InOrStdin())
			return err
		},
	}
}

func newCodesCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "codes",
		Short:   MsgCodesShort,
		GroupID: "output",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(output)
			if err != nil {
				return err
			}
			if _, err := a.styler(cmd); err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := renderer.RenderResult(display.NewCodesReport(a.source, a.table)); err != nil {
				return fmt.Errorf(MsgErrCodes, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "auto", MsgFlagOutput)
	return cmd
}

func newAskCmd(a *app) *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:     "ask QUESTION",
		Short:   MsgAskShort,
		GroupID: "output",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.styler(cmd)
			if err != nil {
				return err
			}
			// the question goes to stderr so $(shkit ask ...) captures only the answer
			p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr(), r)
			answer, err := p.Ask(strings.Join(args, " "), def)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}

	cmd.Flags().StringVarP(&def, "default", "d", "", MsgFlagDefault)
	return cmd
}

func newConfirmCmd(a *app) *cobra.Command {
	var defaultYes bool

	cmd := &cobra.Command{
		Use:     "confirm QUESTION",
		Short:   MsgConfirmShort,
		GroupID: "output",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.styler(cmd)
			if err != nil {
				return err
			}
			p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr(), r)
			yes, err := p.Confirm(strings.Join(args, " "), defaultYes)
			if err != nil {
				return err
			}
			if !yes {
				return exitWith(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&defaultYes, "yes", "y", false, MsgFlagYes)
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run [--] COMMAND [ARGS...]",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "process",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := platform.Detect(ctx)

			h, err := executor.SelectHarness(p, a.cfg.Exec.Harness, a.cfg.Exec.ScriptPath)
			if err != nil {
				return err
			}

			e := executor.New(executor.Options{
				Harness: h,
				Stdout:  cmd.OutOrStdout(),
				Stdin:   cmd.InOrStdin(),
				Pad:     a.cfg.Exec.Indent,
			})

			res, err := e.Run(ctx, args[0], args[1:]...)
			if err != nil && res.ExitCode != 0 {
				if r, serr := a.styler(cmd); serr == nil {
					_ = r.Error(fmt.Sprintf(MsgErrRun, args[0], err))
				}
				return exitWith(res.ExitCode)
			}
			if err != nil {
				return err
			}
			return exitWith(res.ExitCode)
		},
	}

	cmd.Flags().String("harness", executor.KindAuto, MsgFlagHarness)
	// everything after the command name belongs to the command
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newLockCmd(a *app) *cobra.Command {
	var (
		pid  int
		name string
	)

	cmd := &cobra.Command{
		Use:     "lock ID",
		Short:   MsgLockShort,
		Long:    MsgLockLong,
		Example: MsgLockExample,
		GroupID: "process",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if pid == 0 {
				pid = lock.ParentPID()
			}
			if pid < 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrPID, pid)
			}
			if name == "" {
				name = lock.ProcessName(pid)
			}
			if name == "" {
				name = id
			}

			r, err := a.styler(cmd)
			if err != nil {
				return err
			}

			l := lock.New(
				lock.WithDir(a.cfg.Lock.Dir),
				lock.WithPID(pid),
				lock.WithStrict(a.cfg.Lock.Strict),
			)
			l.MustAcquire(r, id, name)
			if err := a.dieStatus(); err != nil {
				return err
			}

			log.Info().Msgf(MsgLockAcquired, id, pid)
			return nil
		},
	}

	cmd.Flags().IntVar(&pid, "pid", 0, MsgFlagPID)
	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	cmd.Flags().Bool("strict", false, MsgFlagStrict)
	return cmd
}

func newPlatformCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "platform",
		Short:   MsgPlatformShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(output)
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			report := display.NewPlatformReport(platform.Detect(cmd.Context()))
			if err := renderer.RenderResult(report); err != nil {
				return fmt.Errorf(MsgErrPlatform, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", MsgFlagOutput)
	return cmd
}

func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quote ARGS...",
		Short:   MsgQuoteShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), shellquote.Join(args...))
			return err
		},
	}
}

func newSnippetCmd() *cobra.Command {
	var sh, prefix string

	cmd := &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sh == "" {
				sh = shell.DetectShell(os.Getenv("SHELL"))
			}
			binary, err := os.Executable()
			if err != nil {
				binary = "shkit"
			}

			out, err := shell.Snippet(shell.Options{Shell: sh, Binary: binary, Prefix: prefix})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&sh, "shell", "", MsgFlagShell)
	cmd.Flags().StringVar(&prefix, "prefix", shell.DefaultPrefix, MsgFlagPrefix)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.cfg.ToTOML()
			if err != nil {
				return err
			}
			if a.cfg.Source != "" {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigSource, a.cfg.Source); err != nil {
					return err
				}
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
			return err
		},
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
