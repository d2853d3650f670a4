package ui_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/shkit/pkg/capability"
	"github.com/arthur-debert/shkit/pkg/platform"
	"github.com/arthur-debert/shkit/pkg/ui"
	"github.com/arthur-debert/shkit/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func codesReport() *display.CodesReport {
	return display.NewCodesReport("test", capability.NewTable(map[string]string{
		"clear": "\x1b[0m",
		"red":   "\x1b[31m",
	}))
}

func TestNewRenderer(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		r, err := ui.NewRenderer(f, &bytes.Buffer{})
		require.NoError(t, err, f.String())
		assert.NotNil(t, r)
	}

	r, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestAutoRendererOnBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(display.NewPlatformReport(platform.Classify("Linux", "x86_64"))))
	assert.Equal(t, "linux-64\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(codesReport()))

	var got display.CodesReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "test", got.Source)
	assert.Equal(t, 2, got.Supported)
	require.Len(t, got.Codes, len(capability.Names()))
	assert.Equal(t, "red", got.Codes[2].Name)
	assert.Equal(t, "\x1b[31m", got.Codes[2].Sequence)
	assert.Equal(t, "setaf 1", got.Codes[2].Capability)
	assert.False(t, got.Codes[3].Supported)
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(display.NewPlatformReport(platform.Classify("Darwin", "arm64"))))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "darwin-64", got["platform"])
	assert.Equal(t, "darwin", got["family"])
	assert.Equal(t, 64, got["bits"])
	assert.Equal(t, true, got["supported"])
}

func TestTextRendererCodes(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(codesReport()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "CODE"))
	assert.Contains(t, out, `\x1b[31m`)
	assert.Contains(t, out, "2 of 14 codes supported (source: test)")
	assert.NotContains(t, out, "\x1b", "text output must not carry raw escapes")
}

func TestTerminalRendererCodes(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(codesReport()))
	out := buf.String()
	for _, name := range capability.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "codes supported")
}

func TestRenderErrorAndMessage(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		var buf bytes.Buffer
		r, err := ui.NewRenderer(f, &buf)
		require.NoError(t, err)

		require.NoError(t, r.RenderError(stderrors.New("went wrong")))
		require.NoError(t, r.RenderMessage("all good"))
		assert.Contains(t, buf.String(), "went wrong", f.String())
		assert.Contains(t, buf.String(), "all good", f.String())
	}
}
