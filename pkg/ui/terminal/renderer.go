// Package terminal provides styled terminal output built on lipgloss
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/shkit/pkg/ui/display"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const reset = "\x1b[0m"

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	missingStyle = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Width(10)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Renderer draws reports as bordered tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a report with terminal styling
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.CodesReport:
		return r.renderCodes(v)
	case *display.PlatformReport:
		return r.renderPlatform(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderCodes(report *display.CodesReport) error {
	rows := make([][]string, 0, len(report.Codes))
	for _, row := range report.Codes {
		sample := "-"
		seq := "-"
		if row.Supported {
			// the sample is drawn with the terminal's own sequence
			sample = row.Sequence + row.Name + reset
			seq = row.Escaped()
		}
		rows = append(rows, []string{row.Name, row.Capability, seq, sample})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("CODE", "CAPABILITY", "SEQUENCE", "SAMPLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(report.Codes) && !report.Codes[row].Supported {
				return missingStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(r.output, t.Render()); err != nil {
		return err
	}
	summary := fmt.Sprintf("%d of %d codes supported", report.Supported, len(report.Codes))
	_, err := fmt.Fprintf(r.output, "%s (source: %s)\n", okStyle.Render(summary), report.Source)
	return err
}

func (r *Renderer) renderPlatform(report *display.PlatformReport) error {
	status := okStyle.Render("supported")
	if !report.Supported {
		status = errorStyle.Render("unsupported")
	}
	lines := []string{
		labelStyle.Render("platform") + report.Platform,
		labelStyle.Render("family") + string(report.Family),
		labelStyle.Render("bits") + fmt.Sprint(report.Bits),
		labelStyle.Render("status") + status,
	}
	_, err := fmt.Fprintln(r.output, lipgloss.JoinVertical(lipgloss.Left, lines...))
	return err
}

// RenderError renders an error in bold red
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, errorStyle.Render("Error:")+" "+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
