// Package indent implements the line indentation filter used for the output
// of wrapped commands.
package indent

import (
	"bytes"
	"io"
)

// Pad is the prefix written in front of every line
const Pad = "    "

// Writer prefixes each line written through it with a pad. It never holds
// data back: bytes go to the underlying writer as soon as they arrive, and
// the pad for a line is emitted only when that line's first byte shows up,
// so output ending in a newline does not produce a trailing padded line.
type Writer struct {
	w           io.Writer
	pad         []byte
	atLineStart bool
}

// NewWriter returns a Writer using the default four-space Pad
func NewWriter(w io.Writer) *Writer {
	return NewWriterWithPad(w, Pad)
}

// NewWriterWithPad returns a Writer using a custom pad
func NewWriterWithPad(w io.Writer, pad string) *Writer {
	return &Writer{w: w, pad: []byte(pad), atLineStart: true}
}

// Write implements io.Writer. The returned count covers bytes of p only,
// not the pad.
func (iw *Writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if iw.atLineStart {
			if _, err := iw.w.Write(iw.pad); err != nil {
				return written, err
			}
			iw.atLineStart = false
		}

		chunk := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			chunk = p[:i+1]
		}

		n, err := iw.w.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		if n < len(chunk) {
			return written, io.ErrShortWrite
		}
		if chunk[len(chunk)-1] == '\n' {
			iw.atLineStart = true
		}
		p = p[len(chunk):]
	}
	return written, nil
}

// Copy streams src to dst through an indentation Writer
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	return io.Copy(NewWriter(dst), src)
}
