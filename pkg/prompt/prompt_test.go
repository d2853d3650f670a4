package prompt

import (
	"bytes"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/arthur-debert/shkit/pkg/capability"
	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/arthur-debert/shkit/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      string
		expected string
		prompt   string
	}{
		{"answer given", "blue\n", "", "blue", "Color? "},
		{"answer trimmed", "  blue  \r\n", "", "blue", "Color? "},
		{"empty uses default", "\n", "red", "red", "Color? [red] "},
		{"eof uses default", "", "red", "red", "Color? [red] "},
		{"last line without newline", "green", "red", "green", "Color? [red] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out, nil)

			got, err := p.Ask("Color?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.prompt, out.String())
		})
	}
}

func TestAskRendersQuestion(t *testing.T) {
	var out bytes.Buffer
	r := style.New(capability.Build(capability.ANSIQuerier{}))
	p := New(strings.NewReader("x\n"), &out, r)

	_, err := p.Ask("{bold}Name?{clear}", "")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1mName?\x1b[0m ", out.String())
}

func TestAskReadError(t *testing.T) {
	p := New(iotest.ErrReader(assert.AnError), &bytes.Buffer{}, nil)
	_, err := p.Ask("q", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptIO))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		expected   bool
	}{
		{"y", "y\n", false, true},
		{"YES", "YES\n", false, true},
		{"n", "n\n", true, false},
		{"No", "No\n", true, false},
		{"empty default yes", "\n", true, true},
		{"empty default no", "\n", false, false},
		{"eof default yes", "", true, true},
		{"reprompt on junk", "maybe\nsure\ny\n", false, true},
		{"junk then eof", "maybe\n", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{}, nil)
			got, err := p.Confirm("Continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConfirmRepromptsAndHints(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("what\nyes\n"), &out, nil)

	ok, err := p.Confirm("Go?", false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Go? [y/N] Go? [y/N] ", out.String())
}
