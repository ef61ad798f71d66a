// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

package graph6

import (
	"bufio"
	"fmt"
	"io"

	"github.com/frank-number/filter"
)

// Reader reads graph6 lines one at a time from an underlying byte stream:
// a small struct wrapping a bufio.Scanner, configured with a diagnostic
// sink rather than format options, since graph6 has exactly one shape.
type Reader struct {
	scanner *bufio.Scanner
	index   int
	// Warn, if non-nil, is called with a diagnostic message for every
	// line skipped because it fails to decode. If nil, invalid
	// lines are skipped silently.
	Warn func(line int, msg string)
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{scanner: s}
}

// Graph is one decoded line: the raw bytes as they appeared on input (for
// byte-identical re-emission) and the adjacency list decoded from them.
type Graph struct {
	Raw   []byte
	Index int // 1-based position in the input stream
	Adj   [][]frank.NI
}

// Next reads and decodes the next valid graph6 line, skipping and warning
// about any invalid lines it encounters first. It returns ok=false once
// the underlying stream is exhausted.
func (r *Reader) Next() (g Graph, ok bool) {
	for r.scanner.Scan() {
		r.index++
		line := append([]byte(nil), r.scanner.Bytes()...)
		adj, err := Decode(line)
		if err != nil {
			if r.Warn != nil {
				r.Warn(r.index, fmt.Sprintf("line %d: %v", r.index, err))
			}
			continue
		}
		return Graph{Raw: line, Index: r.index, Adj: adj}, true
	}
	return Graph{}, false
}

// Err returns the first non-EOF error encountered reading the underlying
// stream, if any.
func (r *Reader) Err() error { return r.scanner.Err() }
