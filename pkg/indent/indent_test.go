package indent

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty input", "", ""},
		{"single line", "hello\n", "    hello\n"},
		{"no trailing newline", "hello", "    hello"},
		{"multiple lines", "a\nb\nc\n", "    a\n    b\n    c\n"},
		{"interior empty line", "a\n\nb\n", "    a\n    \n    b\n"},
		{"only newline", "\n", "    \n"},
		{"crlf from a pty", "one\r\ntwo\r\n", "    one\r\n    two\r\n"},
		{"already indented", "  x\n", "      x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)

			n, err := w.Write([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, len(tt.input), n)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriterEveryLinePadded(t *testing.T) {
	input := "first\nsecond line\n\tthird\nlast\n"
	var buf bytes.Buffer
	_, err := NewWriter(&buf).Write([]byte(input))
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, strings.Count(input, "\n"))
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, Pad), "line %q not padded", line)
		assert.False(t, strings.HasPrefix(line, Pad+" "), "line %q over-padded", line)
	}
}

func TestWriterSplitWrites(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	for _, chunk := range []string{"par", "tial\nne", "xt\n", "", "tail"} {
		_, err := w.Write([]byte(chunk))
		require.NoError(t, err)
	}

	assert.Equal(t, "    partial\n    next\n    tail", buf.String())
}

func TestWriterStreamsWithoutBuffering(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	_, err := w.Write([]byte("progress"))
	require.NoError(t, err)
	assert.Equal(t, "    progress", buf.String(), "partial line must reach the destination immediately")

	_, err = w.Write([]byte("\n"))
	require.NoError(t, err)
	assert.Equal(t, "    progress\n", buf.String())
}

func TestWriterCustomPad(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewWriterWithPad(&buf, "> ").Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "> a\n> b\n", buf.String())
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, stderrors.New("closed")
	}
	f.after--
	return len(p), nil
}

func TestWriterPropagatesErrors(t *testing.T) {
	_, err := NewWriter(&failingWriter{after: 0}).Write([]byte("x\n"))
	assert.Error(t, err)

	n, err := NewWriter(&failingWriter{after: 2}).Write([]byte("a\nb\n"))
	assert.Error(t, err)
	assert.Equal(t, 2, n)
}

func TestCopy(t *testing.T) {
	var buf bytes.Buffer
	src := iotest.OneByteReader(strings.NewReader("alpha\nbeta\n"))

	n, err := Copy(&buf, src)
	require.NoError(t, err)
	assert.Equal(t, int64(len("alpha\nbeta\n")), n)
	assert.Equal(t, "    alpha\n    beta\n", buf.String())
}
