// Package prompt provides line-oriented question helpers for scripts
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/shkit/pkg/errors"
)

// Renderer expands format codes in the question text
type Renderer interface {
	Render(texts ...string) string
}

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	renderer Renderer
}

// New creates a Prompter. renderer may be nil for plain text.
func New(in io.Reader, out io.Writer, renderer Renderer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, renderer: renderer}
}

func (p *Prompter) render(text string) string {
	if p.renderer == nil {
		return text
	}
	return p.renderer.Render(text)
}

// readLine returns one line without its terminator. eof is true when the
// input ended before any byte of the line was read.
func (p *Prompter) readLine() (line string, eof bool, err error) {
	s, err := p.in.ReadString('\n')
	if err == io.EOF {
		if s == "" {
			return "", true, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrPromptIO, "failed to read answer")
	}
	return strings.TrimRight(s, "\r\n"), false, nil
}

// Ask prints question and returns the answer line, or def when the answer
// is empty or input is exhausted.
func (p *Prompter) Ask(question, def string) (string, error) {
	q := p.render(question)
	if def != "" {
		q = fmt.Sprintf("%s [%s]", q, def)
	}
	if _, err := fmt.Fprint(p.out, q+" "); err != nil {
		return "", errors.Wrap(err, errors.ErrPromptIO, "failed to write question")
	}

	line, eof, err := p.readLine()
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(line)
	if eof || answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question until it gets y, yes, n or no (any case).
// An empty answer or exhausted input picks the default.
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	q := fmt.Sprintf("%s %s ", p.render(question), hint)

	for {
		if _, err := fmt.Fprint(p.out, q); err != nil {
			return false, errors.Wrap(err, errors.ErrPromptIO, "failed to write question")
		}

		line, eof, err := p.readLine()
		if err != nil {
			return false, err
		}
		if eof {
			return defaultYes, nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
