// File: hexdump.go
// Title: Hexadecimal Dump Implementation
// Description: Implements the Dump value and the flat and line-oriented
//              renderings. Output is always uppercase with two digits per
//              byte; the delimiter between pairs is configurable.

package hexdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/stdx-go/stdx/core/fault"
)

// DefaultDelimiter separates byte pairs when no delimiter is chosen
const DefaultDelimiter = " "

// DefaultWidth is the number of bytes per line in line-oriented output
const DefaultWidth = 16

// Dump renders a borrowed byte region as uppercase hexadecimal pairs. The
// data is not copied; the caller keeps it alive and unmutated while the dump
// is in use. Dump values are cheap to copy.
type Dump struct {
	data  []byte
	delim string
}

// New creates a Dump over data with the given delimiter between byte pairs.
// An empty delimiter joins the pairs directly.
func New(data []byte, delim string) (Dump, error) {
	if data == nil {
		return Dump{}, fault.New("hexdump data is nil").
			WithCode(fault.CodeNilPointer)
	}
	if len(data) == 0 {
		return Dump{}, fault.New("hexdump data is empty").
			WithCode(fault.CodeInvalidSize)
	}
	return Dump{data: data, delim: delim}, nil
}

// Len returns the number of bytes the dump covers
func (d Dump) Len() int {
	return len(d.data)
}

// Delimiter returns the string printed between byte pairs
func (d Dump) Delimiter() string {
	return d.delim
}

// String renders the whole region on one line. Implements fmt.Stringer.
func (d Dump) String() string {
	var sb strings.Builder
	sb.Grow(len(d.data)*2 + (len(d.data)-1)*len(d.delim))
	d.render(&sb)
	return sb.String()
}

// WriteTo streams the rendering to w. Implements io.WriterTo.
func (d Dump) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := d.render(cw); err != nil {
		return cw.n, fault.Wrap(err, "writing hex dump").
			WithCode(fault.CodeIO)
	}
	return cw.n, nil
}

// render writes the pairs and delimiters to w; errors only if w errors
func (d Dump) render(w io.Writer) error {
	for i, b := range d.data {
		if i > 0 {
			if _, err := io.WriteString(w, d.delim); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%02X", b); err != nil {
			return err
		}
	}
	return nil
}

// Bytes renders data with the default delimiter on one line
func Bytes(data []byte) (string, error) {
	d, err := New(data, DefaultDelimiter)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// Lines renders data as offset-prefixed lines of width bytes each. A width
// of zero or less selects DefaultWidth. Each line carries an eight-digit
// uppercase hexadecimal offset followed by the byte pairs of that line.
func Lines(data []byte, width int) ([]string, error) {
	if _, err := New(data, DefaultDelimiter); err != nil {
		return nil, err
	}
	if width <= 0 {
		width = DefaultWidth
	}

	lines := make([]string, 0, (len(data)+width-1)/width)
	for off := 0; off < len(data); off += width {
		end := off + width
		if end > len(data) {
			end = len(data)
		}
		row, _ := New(data[off:end], DefaultDelimiter)
		lines = append(lines, fmt.Sprintf("%08X  %s", off, row.String()))
	}
	return lines, nil
}

// countingWriter tracks the number of bytes passed through to w
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
