// Package proto defines the wire vocabulary shared by the client-role and
// server-role command managers: the record framer, the request/response
// pattern registry, and the response formatters for every operation the
// HLX device understands (spec.md §4.1, §6).
package proto

import "bytes"

// Framer accumulates bytes from a stream and extracts complete records.
// A record is `'(' body ')'` with body containing no unescaped `)`
// (spec.md §6); bytes outside a record — and any trailing `\r\n` after the
// closing paren — are discarded. Grounded on the teacher's
// pkg/device/tunnel.go byte-forwarding style: a small owned buffer fed
// incrementally from a socket read loop, rather than a bufio.Scanner split
// function, since records may span multiple reads and the framer needs to
// report a body slice per completed record instead of one token per Scan.
type Framer struct {
	buf []byte
}

// NewFramer constructs an empty framer.
func NewFramer() *Framer { return &Framer{} }

// Feed appends newly read bytes and returns every record body that became
// complete as a result, in the order their closing paren was seen. Bytes
// preceding the first unmatched '(' are dropped; neither Feed nor its
// callers in pkg/proxy log them.
func (f *Framer) Feed(data []byte) [][]byte {
	f.buf = append(f.buf, data...)

	var bodies [][]byte
	for {
		open := bytes.IndexByte(f.buf, '(')
		if open < 0 {
			// No record start at all; nothing useful to keep.
			f.buf = f.buf[:0]
			break
		}
		if open > 0 {
			// Discard stray bytes preceding the record.
			f.buf = f.buf[open:]
		}
		close := bytes.IndexByte(f.buf, ')')
		if close < 0 {
			// Incomplete record; wait for more bytes.
			break
		}
		body := make([]byte, close-1)
		copy(body, f.buf[1:close])
		bodies = append(bodies, body)

		rest := f.buf[close+1:]
		rest = bytes.TrimPrefix(rest, []byte("\r\n"))
		f.buf = rest
	}
	return bodies
}

// Discarded returns the bytes currently buffered but not yet part of a
// complete record (diagnostic use only).
func (f *Framer) Discarded() []byte { return f.buf }

// Wrap frames a body into a complete wire record: `(body)`. Every response
// formatter in this package produces a bare body; callers send it on the
// wire through Wrap.
func Wrap(body []byte) []byte {
	out := make([]byte, 0, len(body)+2)
	out = append(out, '(')
	out = append(out, body...)
	out = append(out, ')')
	return out
}

// WrapString is the string-argument convenience form of Wrap.
func WrapString(body string) []byte {
	return Wrap([]byte(body))
}
