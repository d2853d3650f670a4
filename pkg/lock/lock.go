// Package lock keeps a single live instance per lock id using a pid record
// file.
//
// The default mode is best effort: the record is read, its pid probed for
// liveness and then overwritten. Two processes racing through that sequence
// can both succeed. Strict mode claims the record with an exclusive create
// and re-reads it after writing.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/arthur-debert/shkit/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// RecordExt is the extension of lock record files
const RecordExt = ".pid"

// Prober reports whether a process id belongs to a running process
type Prober interface {
	Alive(pid int) bool
}

// Dier terminates the process after printing a message
type Dier interface {
	Die(texts ...string)
}

// Locker acquires lock records in one directory
type Locker struct {
	fs     afero.Fs
	dir    string
	pid    int
	prober Prober
	strict bool
	logger zerolog.Logger
}

// Option configures a Locker
type Option func(*Locker)

// WithFs sets the filesystem holding the records
func WithFs(fs afero.Fs) Option {
	return func(l *Locker) { l.fs = fs }
}

// WithDir sets the record directory. An empty dir means os.TempDir().
func WithDir(dir string) Option {
	return func(l *Locker) {
		if dir != "" {
			l.dir = dir
		}
	}
}

// WithPID sets the pid written on a successful claim
func WithPID(pid int) Option {
	return func(l *Locker) {
		if pid > 0 {
			l.pid = pid
		}
	}
}

// WithProber replaces the liveness probe
func WithProber(p Prober) Option {
	return func(l *Locker) { l.prober = p }
}

// WithStrict turns exclusive-create claiming on or off
func WithStrict(strict bool) Option {
	return func(l *Locker) { l.strict = strict }
}

// New creates a Locker. Without options it uses the OS filesystem, the
// system temp directory, the current pid and a gopsutil probe.
func New(opts ...Option) *Locker {
	l := &Locker{
		fs:     afero.NewOsFs(),
		dir:    os.TempDir(),
		pid:    os.Getpid(),
		prober: ProcessProber{},
		logger: logging.GetLogger("lock"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the record file for id
func (l *Locker) Path(id string) string {
	return filepath.Join(l.dir, id+RecordExt)
}

// PID returns the pid this Locker claims records with
func (l *Locker) PID() int {
	return l.pid
}

// Holder reads the pid recorded for id. ok is false when the record is
// missing, empty or not a positive decimal number.
func (l *Locker) Holder(id string) (pid int, ok bool) {
	data, err := afero.ReadFile(l.fs, l.Path(id))
	if err != nil {
		return 0, false
	}
	return parsePID(data)
}

// Acquire claims id for the Locker's pid. It returns a LOCK_HELD error when
// the recorded holder is still alive.
func (l *Locker) Acquire(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := l.fs.MkdirAll(l.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLockIO, "cannot create lock directory %s", l.dir)
	}

	if l.strict {
		return l.acquireStrict(id)
	}

	path := l.Path(id)
	if holder, ok := l.Holder(id); ok && holder != l.pid && l.prober.Alive(holder) {
		l.logger.Debug().Str("id", id).Int("holder", holder).Msg("Lock held by live process")
		return heldError(id, holder)
	}

	if err := afero.WriteFile(l.fs, path, []byte(strconv.Itoa(l.pid)), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrLockIO, "cannot write lock record %s", path)
	}
	l.logger.Debug().Str("id", id).Int("pid", l.pid).Str("path", path).Msg("Lock acquired")
	return nil
}

func (l *Locker) acquireStrict(id string) error {
	path := l.Path(id)

	for attempt := 0; attempt < 2; attempt++ {
		f, err := l.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			_, werr := f.WriteString(strconv.Itoa(l.pid))
			cerr := f.Close()
			if werr != nil {
				return errors.Wrapf(werr, errors.ErrLockIO, "cannot write lock record %s", path)
			}
			if cerr != nil {
				return errors.Wrapf(cerr, errors.ErrLockIO, "cannot write lock record %s", path)
			}
			return l.verify(id)
		}
		if !os.IsExist(err) {
			return errors.Wrapf(err, errors.ErrLockIO, "cannot create lock record %s", path)
		}

		holder, ok := l.Holder(id)
		if ok && holder == l.pid {
			return nil
		}
		if ok && l.prober.Alive(holder) {
			l.logger.Debug().Str("id", id).Int("holder", holder).Msg("Lock held by live process")
			return heldError(id, holder)
		}

		l.logger.Debug().Str("id", id).Int("stale", holder).Msg("Removing stale lock record")
		if err := l.fs.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrLockIO, "cannot remove stale lock record %s", path)
		}
	}

	// another process recreated the record between our remove and create
	holder, _ := l.Holder(id)
	return heldError(id, holder)
}

// verify re-reads the record after a strict claim
func (l *Locker) verify(id string) error {
	holder, ok := l.Holder(id)
	if !ok {
		return errors.Newf(errors.ErrLockInvalid, "lock record for %s is unreadable after claim", id).
			WithDetail("path", l.Path(id))
	}
	if holder != l.pid {
		return heldError(id, holder)
	}
	l.logger.Debug().Str("id", id).Int("pid", l.pid).Msg("Lock acquired (strict)")
	return nil
}

// MustAcquire acquires id or calls d.Die with a message naming program and
// the holder. Errors other than a held lock are fatal too.
func (l *Locker) MustAcquire(d Dier, id, program string) {
	err := l.Acquire(id)
	if err == nil {
		return
	}
	if errors.IsErrorCode(err, errors.ErrLockHeld) {
		d.Die(HeldMessage(program, errors.GetErrorDetails(err)["holder"]))
		return
	}
	d.Die(fmt.Sprintf("{red}%s:{clear} %v", program, err))
}

// HeldMessage is the fatal message printed when a lock is held
func HeldMessage(program string, holder interface{}) string {
	return fmt.Sprintf("{red}%s is already running{clear} (pid %v)", program, holder)
}

func heldError(id string, holder int) error {
	return errors.Newf(errors.ErrLockHeld, "lock %s is held by pid %d", id, holder).
		WithDetail("id", id).
		WithDetail("holder", holder)
}

func parsePID(data []byte) (int, bool) {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return 0, false
	}
	pid, err := strconv.Atoi(s)
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

func validateID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return errors.Newf(errors.ErrInvalidInput, "invalid lock id %q", id)
	}
	return nil
}
