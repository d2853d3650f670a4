// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/shkit/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a report as aligned plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.CodesReport:
		return r.renderCodes(v)
	case *display.PlatformReport:
		_, err := fmt.Fprintln(r.output, v.Platform)
		return err
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderCodes(report *display.CodesReport) error {
	nameWidth, capWidth := len("CODE"), len("CAPABILITY")
	for _, row := range report.Codes {
		nameWidth = max(nameWidth, len(row.Name))
		capWidth = max(capWidth, len(row.Capability))
	}

	line := func(a, b, c string) error {
		_, err := fmt.Fprintf(r.output, "%-*s  %-*s  %s\n", nameWidth, a, capWidth, b, c)
		return err
	}

	if err := line("CODE", "CAPABILITY", "SEQUENCE"); err != nil {
		return err
	}
	for _, row := range report.Codes {
		seq := row.Escaped()
		if !row.Supported {
			seq = "-"
		}
		if err := line(row.Name, row.Capability, seq); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.output, "\n%d of %d codes supported (source: %s)\n", report.Supported, len(report.Codes), report.Source)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
