// Package shell generates the function definitions that let shell scripts
// call shkit like a sourced library. The functions that end the script
// (die, a refused lock) exit the calling shell, which a child process
// cannot do on its own.
package shell

import (
	"embed"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"text/template"

	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/kballard/go-shellquote"
)

// DefaultPrefix is prepended to every generated function name
const DefaultPrefix = "shk"

//go:embed snippets/shkit.sh snippets/shkit.fish
var snippetFS embed.FS

var templates = template.Must(template.ParseFS(snippetFS, "snippets/*"))

var prefixPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Shells lists the shells snippets can be generated for
func Shells() []string {
	return []string{"sh", "bash", "zsh", "fish"}
}

// Options selects the shell and how the functions reach the binary
type Options struct {
	Shell  string
	Binary string
	Prefix string
}

// DetectShell returns the shell named by a $SHELL value, "sh" when it is
// not one Snippet supports
func DetectShell(shellEnv string) string {
	name := filepath.Base(shellEnv)
	if slices.Contains(Shells(), name) {
		return name
	}
	return "sh"
}

// Snippet renders the function definitions for opts.Shell
func Snippet(opts Options) (string, error) {
	if opts.Shell == "" {
		opts.Shell = "sh"
	}
	if !slices.Contains(Shells(), opts.Shell) {
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", opts.Shell).
			WithDetail("valid", Shells())
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	if !prefixPattern.MatchString(opts.Prefix) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid function prefix %q", opts.Prefix)
	}
	if opts.Binary == "" {
		opts.Binary = "shkit"
	}

	name := "shkit.sh"
	if opts.Shell == "fish" {
		name = "shkit.fish"
	}

	var b strings.Builder
	err := templates.ExecuteTemplate(&b, name, struct {
		Shell  string
		Binary string
		Prefix string
	}{
		Shell:  opts.Shell,
		Binary: shellquote.Join(opts.Binary),
		Prefix: opts.Prefix,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render snippet")
	}
	return b.String(), nil
}
