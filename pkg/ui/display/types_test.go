package display

import (
	"testing"

	"github.com/arthur-debert/shkit/pkg/capability"
	"github.com/arthur-debert/shkit/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodesReport(t *testing.T) {
	report := NewCodesReport("ansi", capability.Build(capability.ANSIQuerier{}))

	require.Len(t, report.Codes, len(capability.Names()))
	assert.Equal(t, len(report.Codes), report.Supported)
	assert.Equal(t, "clear", report.Codes[0].Name)
	assert.Equal(t, "sgr0", report.Codes[0].Capability)
	assert.Equal(t, "setaf 7", report.Codes[8].Capability)
	assert.Equal(t, `\x1b[0m`, report.Codes[0].Escaped())
}

func TestNewCodesReportEmptyTable(t *testing.T) {
	report := NewCodesReport("none", capability.Build(capability.NoneQuerier{}))

	assert.Zero(t, report.Supported)
	for _, row := range report.Codes {
		assert.False(t, row.Supported)
		assert.Empty(t, row.Escaped())
	}
}

func TestNewPlatformReport(t *testing.T) {
	report := NewPlatformReport(platform.Classify("MINGW64_NT-10.0", "x86_64"))
	assert.Equal(t, "windows-64", report.Platform)
	assert.Equal(t, platform.Windows, report.Family)
	assert.True(t, report.Supported)

	report = NewPlatformReport(platform.Classify("Plan9", "mips"))
	assert.Equal(t, "unsupported", report.Platform)
	assert.False(t, report.Supported)
}
