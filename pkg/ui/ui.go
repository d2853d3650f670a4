// Package ui renders shkit reports (capability tables, platform probes) in
// terminal, text, JSON or YAML form.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/shkit/pkg/ui/json"
	"github.com/arthur-debert/shkit/pkg/ui/terminal"
	"github.com/arthur-debert/shkit/pkg/ui/text"
	"github.com/arthur-debert/shkit/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a report from pkg/ui/display
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto detects terminal capabilities when output is a file and falls
// back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
