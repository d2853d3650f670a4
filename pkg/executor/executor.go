package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/arthur-debert/shkit/pkg/indent"
	"github.com/arthur-debert/shkit/pkg/logging"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	Harness Harness
	// Stdout receives the indented output, os.Stdout when nil
	Stdout io.Writer
	// Stdin is handed to harnesses that forward it, os.Stdin when nil
	Stdin io.Reader
	// Pad overrides indent.Pad when set
	Pad    string
	Logger zerolog.Logger
}

// Result describes one finished command
type Result struct {
	Command  string        `json:"command" yaml:"command"`
	Args     []string      `json:"args" yaml:"args"`
	Harness  string        `json:"harness" yaml:"harness"`
	ExitCode int           `json:"exit_code" yaml:"exit_code"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Success reports whether the command exited with status 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Executor runs commands through a harness and indents what they print
type Executor struct {
	harness Harness
	stdout  io.Writer
	stdin   io.Reader
	pad     string
	logger  zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	h := opts.Harness
	if h == nil {
		h = DirectHarness{}
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	pad := opts.Pad
	if pad == "" {
		pad = indent.Pad
	}

	return &Executor{
		harness: h,
		stdout:  stdout,
		stdin:   stdin,
		pad:     pad,
		logger:  logger,
	}
}

// Run executes name with args, streams the combined output indented to the
// executor's stdout and follows it with one empty line. The returned Result
// carries the command's exit status; a non-zero status is not an error.
// When the command or the harness cannot be started, the error is returned
// together with a Result whose ExitCode is 127 (not found) or 1, and nothing
// is written.
func (e *Executor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	start := time.Now()
	result := Result{Command: name, Args: args, Harness: e.harness.Name()}

	logging.LogCommand(name, args)
	e.logger.Debug().
		Str("command", name).
		Strs("args", args).
		Str("harness", result.Harness).
		Msg("Starting wrapped command")

	if name == "" {
		result.ExitCode = 1
		return result, errors.New(errors.ErrInvalidInput, "no command given")
	}

	sess, err := e.harness.Start(ctx, name, args, e.stdin)
	if err != nil {
		result.ExitCode = startExitCode(err)
		result.Duration = time.Since(start)
		e.logger.Debug().Err(err).Int("exit_code", result.ExitCode).Msg("Command did not start")
		return result, err
	}
	defer func() { _ = sess.Close() }()

	copied := make(chan error, 1)
	go func() {
		_, err := io.Copy(indent.NewWriterWithPad(e.stdout, e.pad), sess)
		copied <- err
	}()

	code, waitErr := sess.Wait()
	copyErr := <-copied

	result.ExitCode = code
	result.Duration = time.Since(start)

	if copyErr != nil {
		e.logger.Debug().Err(copyErr).Msg("Output stream ended with error")
	}
	if _, err := fmt.Fprintln(e.stdout); err != nil {
		e.logger.Debug().Err(err).Msg("Failed to write trailing line")
	}

	e.logger.Debug().
		Str("command", name).
		Int("exit_code", code).
		Dur("duration", result.Duration).
		Msg("Wrapped command finished")

	return result, waitErr
}

func startExitCode(err error) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrExecNotFound, errors.ErrHarnessUnavailable:
		return 127
	default:
		return 1
	}
}
