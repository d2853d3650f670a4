package capability

import (
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/xo/terminfo"
)

// ErrUnsupported is returned by a Querier for a capability the terminal lacks
var ErrUnsupported = stderrors.New("capability not supported")

// Querier is the terminal driver: it resolves one terminfo capability,
// with optional numeric parameters, to the bytes the terminal expects.
type Querier interface {
	Query(capName string, params ...int) (string, error)
}

// Querier sources accepted by NewQuerier
const (
	SourceTerminfo = "terminfo"
	SourceTput     = "tput"
	SourceANSI     = "ansi"
	SourceNone     = "none"
)

// NewQuerier returns the Querier for a configured source name
func NewQuerier(source string) (Querier, error) {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case SourceTerminfo, "":
		return NewTerminfoQuerier(os.Getenv("TERM")), nil
	case SourceTput:
		return NewTputQuerier("tput"), nil
	case SourceANSI:
		return ANSIQuerier{}, nil
	case SourceNone:
		return NoneQuerier{}, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown capability source %q", source)
	}
}

var terminfoCaps = map[string]int{
	"sgr0":  terminfo.ExitAttributeMode,
	"setaf": terminfo.SetAForeground,
	"bold":  terminfo.EnterBoldMode,
	"dim":   terminfo.EnterDimMode,
	"rev":   terminfo.EnterReverseMode,
	"smul":  terminfo.EnterUnderlineMode,
	"rmul":  terminfo.ExitUnderlineMode,
}

// TerminfoQuerier reads capabilities from the terminfo database entry of a
// terminal type. The entry is loaded once, at construction.
type TerminfoQuerier struct {
	ti  *terminfo.Terminfo
	err error
}

// NewTerminfoQuerier loads the terminfo entry for term. A load failure is
// kept and reported by every later Query.
func NewTerminfoQuerier(term string) *TerminfoQuerier {
	ti, err := terminfo.Load(term)
	return &TerminfoQuerier{ti: ti, err: err}
}

// Query implements Querier
func (q *TerminfoQuerier) Query(capName string, params ...int) (string, error) {
	if q.err != nil {
		return "", fmt.Errorf("terminfo unavailable: %w", q.err)
	}
	idx, ok := terminfoCaps[capName]
	if !ok {
		return "", fmt.Errorf("%s: %w", capName, ErrUnsupported)
	}
	if len(q.ti.Strings[idx]) == 0 {
		return "", fmt.Errorf("%s: %w", capName, ErrUnsupported)
	}
	args := make([]interface{}, len(params))
	for i, p := range params {
		args[i] = p
	}
	return q.ti.Printf(idx, args...), nil
}

// TputQuerier shells out to tput(1) once per capability
type TputQuerier struct {
	path string
	run  func(name string, args ...string) ([]byte, error)
}

// NewTputQuerier returns a querier invoking the tput binary at path
func NewTputQuerier(path string) *TputQuerier {
	return &TputQuerier{
		path: path,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// Query implements Querier
func (q *TputQuerier) Query(capName string, params ...int) (string, error) {
	args := []string{capName}
	for _, p := range params {
		args = append(args, strconv.Itoa(p))
	}
	out, err := q.run(q.path, args...)
	if err != nil {
		return "", fmt.Errorf("tput %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// ANSIQuerier answers with fixed ECMA-48 SGR sequences, for hosts without a
// terminfo database.
type ANSIQuerier struct{}

// Query implements Querier
func (ANSIQuerier) Query(capName string, params ...int) (string, error) {
	switch capName {
	case "sgr0":
		return "\x1b[0m", nil
	case "setaf":
		if len(params) != 1 || params[0] < 0 || params[0] > 7 {
			return "", fmt.Errorf("setaf %v: %w", params, ErrUnsupported)
		}
		return "\x1b[3" + strconv.Itoa(params[0]) + "m", nil
	case "bold":
		return "\x1b[1m", nil
	case "dim":
		return "\x1b[2m", nil
	case "rev":
		return "\x1b[7m", nil
	case "smul":
		return "\x1b[4m", nil
	case "rmul":
		return "\x1b[24m", nil
	}
	return "", fmt.Errorf("%s: %w", capName, ErrUnsupported)
}

// NoneQuerier supports nothing; every code resolves empty
type NoneQuerier struct{}

// Query implements Querier
func (NoneQuerier) Query(capName string, _ ...int) (string, error) {
	return "", fmt.Errorf("%s: %w", capName, ErrUnsupported)
}
