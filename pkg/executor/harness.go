package executor

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/creack/pty"
	"github.com/kballard/go-shellquote"
)

// Harness starts a command so that its output can be captured while the
// command still believes it writes to a terminal.
type Harness interface {
	Name() string
	Start(ctx context.Context, name string, args []string, stdin io.Reader) (Session, error)
}

// Session is a started command. Reading yields the combined output; Wait
// returns the exit status once the command is done.
type Session interface {
	io.Reader
	Wait() (int, error)
	Close() error
}

// DirectHarness runs the command as-is with stdout and stderr joined on
// one pipe. The child sees a pipe, not a terminal.
type DirectHarness struct{}

// Name implements Harness
func (DirectHarness) Name() string { return "direct" }

// Start implements Harness
func (DirectHarness) Start(ctx context.Context, name string, args []string, stdin io.Reader) (Session, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	s, err := startPiped(cmd, stdin)
	if err != nil {
		return nil, startError(err, errors.ErrExecNotFound, name)
	}
	return s, nil
}

// ScriptMode selects how the command line is handed to script(1)
type ScriptMode int

const (
	// ScriptCommandString quotes the argv into one string for util-linux
	// script -c, with -e to return the child's status.
	ScriptCommandString ScriptMode = iota
	// ScriptArgv passes the argv through, BSD style; the child's status is
	// forwarded by default.
	ScriptArgv
)

// ScriptHarness wraps the command in script(1) with the typescript sent to
// /dev/null.
type ScriptHarness struct {
	Path string
	Mode ScriptMode
}

// Name implements Harness
func (h ScriptHarness) Name() string {
	if h.Mode == ScriptCommandString {
		return "script-c"
	}
	return "script"
}

// Argv returns the arguments given to script(1) for a command line
func (h ScriptHarness) Argv(name string, args []string) []string {
	if h.Mode == ScriptCommandString {
		line := shellquote.Join(append([]string{name}, args...)...)
		return []string{"-q", "-e", "-c", line, "/dev/null"}
	}
	return append([]string{"-q", "/dev/null", name}, args...)
}

// Start implements Harness
func (h ScriptHarness) Start(ctx context.Context, name string, args []string, stdin io.Reader) (Session, error) {
	path := h.Path
	if path == "" {
		path = "script"
	}
	cmd := exec.CommandContext(ctx, path, h.Argv(name, args)...)
	s, err := startPiped(cmd, stdin)
	if err != nil {
		return nil, startError(err, errors.ErrHarnessUnavailable, path)
	}
	return s, nil
}

// PTYHarness allocates a pseudo-terminal in-process instead of calling
// script(1). The child's stdin is the pseudo-terminal, so stdin is not
// forwarded.
type PTYHarness struct {
	// SizeFrom is the terminal whose size the pseudo-terminal copies, if any
	SizeFrom *os.File
}

// Name implements Harness
func (PTYHarness) Name() string { return "pty" }

// Start implements Harness
func (h PTYHarness) Start(ctx context.Context, name string, args []string, _ io.Reader) (Session, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var size *pty.Winsize
	if h.SizeFrom != nil {
		if ws, err := pty.GetsizeFull(h.SizeFrom); err == nil {
			size = ws
		}
	}

	master, err := pty.StartWithSize(cmd, size)
	if err != nil {
		if stderrors.Is(err, pty.ErrUnsupported) {
			return nil, errors.Wrap(err, errors.ErrHarnessUnavailable, "pseudo-terminals are not supported on this platform")
		}
		return nil, startError(err, errors.ErrExecNotFound, name)
	}
	return &ptySession{cmd: cmd, master: master}, nil
}

// startPiped starts cmd with stdout and stderr sharing one pipe, so the
// relative order of the two streams is kept.
func startPiped(cmd *exec.Cmd, stdin io.Reader) (*pipeSession, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	cmd.Stdin = stdin
	cmd.Stdout = w
	cmd.Stderr = w
	if err := cmd.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, err
	}
	// the child holds its own copy; ours must go for the reader to see EOF
	_ = w.Close()
	return &pipeSession{cmd: cmd, r: r}, nil
}

type pipeSession struct {
	cmd *exec.Cmd
	r   *os.File
}

func (s *pipeSession) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *pipeSession) Wait() (int, error)         { return exitStatus(s.cmd.Wait()) }
func (s *pipeSession) Close() error               { return s.r.Close() }

type ptySession struct {
	cmd    *exec.Cmd
	master *os.File
}

// Read maps the EIO a pty master returns once the child side is gone to EOF
func (s *ptySession) Read(p []byte) (int, error) {
	n, err := s.master.Read(p)
	if err != nil && stderrors.Is(err, syscall.EIO) {
		return n, io.EOF
	}
	return n, err
}

func (s *ptySession) Wait() (int, error) { return exitStatus(s.cmd.Wait()) }
func (s *ptySession) Close() error       { return s.master.Close() }

// exitStatus turns the result of exec.Cmd.Wait into a shell-style status.
// A non-zero exit is a status, not an error.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}
	return 1, errors.Wrap(err, errors.ErrInternal, "failed waiting for command")
}

func startError(err error, notFound errors.ErrorCode, name string) error {
	var execErr *exec.Error
	if stderrors.As(err, &execErr) || stderrors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, notFound, "cannot run %s", name).WithDetail("command", name)
	}
	return errors.Wrapf(err, errors.ErrExecStart, "failed to start %s", name).WithDetail("command", name)
}
