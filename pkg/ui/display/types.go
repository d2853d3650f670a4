// Package display holds the report types shared by the ui renderers
package display

import (
	"strconv"

	"github.com/arthur-debert/shkit/pkg/capability"
	"github.com/arthur-debert/shkit/pkg/platform"
)

// CodeRow is one symbolic code and what it resolved to
type CodeRow struct {
	Name       string `json:"name" yaml:"name"`
	Capability string `json:"capability" yaml:"capability"`
	Sequence   string `json:"sequence" yaml:"sequence"`
	Supported  bool   `json:"supported" yaml:"supported"`
}

// Escaped returns the sequence with control bytes escaped, e.g. "\x1b[31m"
func (r CodeRow) Escaped() string {
	q := strconv.Quote(r.Sequence)
	return q[1 : len(q)-1]
}

// CodesReport lists a capability table
type CodesReport struct {
	Source    string    `json:"source" yaml:"source"`
	Supported int       `json:"supported" yaml:"supported"`
	Codes     []CodeRow `json:"codes" yaml:"codes"`
}

// NewCodesReport builds a report from a table. Rows follow declared order.
func NewCodesReport(source string, table *capability.Table) *CodesReport {
	defs := capability.Codes()
	entries := table.Entries()

	report := &CodesReport{Source: source, Supported: table.Supported()}
	for i, e := range entries {
		row := CodeRow{Name: e.Name, Sequence: e.Sequence, Supported: e.Sequence != ""}
		if i < len(defs) && defs[i].Name == e.Name {
			row.Capability = capName(defs[i])
		}
		report.Codes = append(report.Codes, row)
	}
	return report
}

func capName(c capability.Code) string {
	if len(c.Params) == 0 {
		return c.Cap
	}
	s := c.Cap
	for _, p := range c.Params {
		s += " " + strconv.Itoa(p)
	}
	return s
}

// PlatformReport describes the detected platform
type PlatformReport struct {
	Platform  string          `json:"platform" yaml:"platform"`
	Family    platform.Family `json:"family" yaml:"family"`
	Bits      int             `json:"bits" yaml:"bits"`
	Supported bool            `json:"supported" yaml:"supported"`
}

// NewPlatformReport builds a report from a probe result
func NewPlatformReport(p platform.Platform) *PlatformReport {
	return &PlatformReport{
		Platform:  p.String(),
		Family:    p.Family,
		Bits:      p.Bits,
		Supported: p.Supported(),
	}
}
