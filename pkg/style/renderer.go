// Package style renders {code} format strings into terminal control sequences.
package style

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/shkit/pkg/capability"
)

// HeaderMarker is the prefix Header puts in front of its text
const HeaderMarker = "{bold}{blue}==>{clear} "

// pair is one substitution step: a literal placeholder and its replacement
type pair struct {
	token    string
	sequence string
}

// Renderer substitutes {code} placeholders with the sequences of a
// capability table. Placeholders are replaced one code at a time in the
// table's declared order, so an earlier code's replacement is visible to
// later codes. Unknown placeholders are left as they are.
type Renderer struct {
	pairs  []pair
	out    io.Writer
	errOut io.Writer
	exit   func(int)
}

// Option configures a Renderer
type Option func(*Renderer)

// WithOutput sets the stream Print and Header write to
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) { r.out = w }
}

// WithErrorOutput sets the stream Error and Die write to
func WithErrorOutput(w io.Writer) Option {
	return func(r *Renderer) { r.errOut = w }
}

// WithExit replaces the function Die terminates the process with
func WithExit(fn func(int)) Option {
	return func(r *Renderer) { r.exit = fn }
}

// New creates a renderer over a built capability table
func New(table *capability.Table, opts ...Option) *Renderer {
	entries := table.Entries()
	r := &Renderer{
		pairs:  make([]pair, len(entries)),
		out:    os.Stdout,
		errOut: os.Stderr,
		exit:   os.Exit,
	}
	for i, e := range entries {
		r.pairs[i] = pair{token: capability.Placeholder(e.Name), sequence: e.Sequence}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render joins texts with single spaces and substitutes every known
// placeholder. It does not append {clear}: callers that change the
// formatting must reset it themselves.
func (r *Renderer) Render(texts ...string) string {
	result := strings.Join(texts, " ")
	if !strings.Contains(result, "{") {
		return result
	}
	for _, p := range r.pairs {
		result = strings.ReplaceAll(result, p.token, p.sequence)
	}
	return result
}

// Print renders texts and writes them as one line to the output stream
func (r *Renderer) Print(texts ...string) error {
	_, err := fmt.Fprintln(r.out, r.Render(texts...))
	return err
}

// Error renders texts and writes them as one line to the error stream
func (r *Renderer) Error(texts ...string) error {
	_, err := fmt.Fprintln(r.errOut, r.Render(texts...))
	return err
}

// Die writes texts like Error, then terminates with status 1
func (r *Renderer) Die(texts ...string) {
	_ = r.Error(texts...)
	r.exit(1)
}

// Header renders texts behind the arrow marker and prints the line
func (r *Renderer) Header(texts ...string) error {
	return r.Print(HeaderMarker + strings.Join(texts, " "))
}
