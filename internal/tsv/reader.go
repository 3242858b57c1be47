// Package tsv reads the strict tab-delimited dialect used by FSO text
// tables: horizontal tab as field delimiter, CRLF as record terminator,
// no quoting or escaping, and no header row.
package tsv

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodeText reads r, transcoding from the given legacy single-byte
// encoding to UTF-8. Transcoding itself cannot fail: bytes without a
// mapping become U+FFFD. Only errors from the underlying reader are
// returned.
func DecodeText(r io.Reader, cm *charmap.Charmap) (string, error) {
	decoded, err := io.ReadAll(transform.NewReader(r, cm.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Reader splits a decoded payload into records. Every call to NewReader
// starts an independent pass over the same text, so one payload can back
// any number of concurrent iterations.
//
// Structural characters (tab, CR, LF) are all 7-bit and no UTF-8
// continuation byte falls below 0x80, so byte-wise scanning cannot split
// inside a multi-byte sequence; anything non-structural passes through as
// field data, quotes included.
type Reader struct {
	rest string
	line int
}

// NewReader returns a Reader over the full decoded payload.
func NewReader(text string) *Reader {
	return &Reader{rest: text}
}

// Next returns the fields and 1-based line number of the next record, or
// ok=false when the input is exhausted. A trailing record terminator does
// not produce an empty final record.
func (r *Reader) Next() (fields []string, line int, ok bool) {
	if r.rest == "" {
		return nil, 0, false
	}

	var record string
	if i := strings.IndexByte(r.rest, '\n'); i >= 0 {
		record, r.rest = r.rest[:i], r.rest[i+1:]
	} else {
		record, r.rest = r.rest, ""
	}
	// The terminator is CRLF; a bare LF is tolerated the same way.
	record = strings.TrimSuffix(record, "\r")

	r.line++
	if record == "" && r.rest == "" {
		return nil, 0, false
	}
	return strings.Split(record, "\t"), r.line, true
}
