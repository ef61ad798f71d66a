// Copyright 2024 The Frank Number Filter Authors
// License MIT: http://opensource.org/licenses/MIT

// Package graph6 decodes the graph6 textual graph encoding (McKay's
// format) into adjacency lists suitable for frank.NewGraph: struct-
// configured readers over a bufio-wrapped io.Reader, text in, typed data
// out, specialized to this one wire format rather than a family of
// generic text formats.
package graph6

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/frank-number/filter"
)

// header is the optional 10-byte prefix graph6 lines may carry. It is
// recognized and stripped for decoding purposes; the raw line (including
// the header) is preserved unchanged by the line reader for output, per
// the identity-on-output requirement.
const header = ">>graph6<<"

// ErrDigraph6 is returned when a line begins with the digraph6 '&' marker.
// digraph6 is recognized, as the original decoder recognizes it, but this
// filter has no use for directed input and does not decode it.
var ErrDigraph6 = errors.New("graph6: digraph6 input is not supported")

// ErrTooShort is returned when a line ends before its declared bit count
// does.
var ErrTooShort = errors.New("graph6: truncated edge data")

// Decode parses a single graph6-encoded line (without its trailing
// newline) and returns its adjacency list.
func Decode(line []byte) ([][]frank.NI, error) {
	data := bytes.TrimPrefix(line, []byte(header))
	if len(data) == 0 {
		return nil, errors.New("graph6: empty line")
	}
	if data[0] == '&' {
		return nil, ErrDigraph6
	}
	n, rest, err := decodeOrder(data)
	if err != nil {
		return nil, err
	}
	adj := make([][]frank.NI, n)
	bits, err := bitStream(rest)
	if err != nil {
		return nil, err
	}
	need := n * (n - 1) / 2
	if len(bits) < need {
		return nil, ErrTooShort
	}
	k := 0
	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			if bits[k] {
				adj[u] = append(adj[u], frank.NI(v))
				adj[v] = append(adj[v], frank.NI(u))
			}
			k++
		}
	}
	return adj, nil
}

// decodeOrder reads the vertex-count prefix: a single byte N-63 if that
// byte is below 126; otherwise a 3-byte 18-bit big-endian count, unless
// the first of those 3 bytes is itself 126, in which case a 6-byte 36-bit
// big-endian count.
func decodeOrder(data []byte) (n int, rest []byte, err error) {
	if len(data) == 0 {
		return 0, nil, errors.New("graph6: missing vertex count")
	}
	c := data[0]
	if c < 63 || c > 126 {
		return 0, nil, fmt.Errorf("graph6: invalid start character %q", c)
	}
	if c < 126 {
		return int(c) - 63, data[1:], nil
	}
	if len(data) < 4 {
		return 0, nil, errors.New("graph6: truncated extended vertex count")
	}
	if data[1] != 126 {
		n := be18(data[1:4])
		return n, data[4:], nil
	}
	if len(data) < 8 {
		return 0, nil, errors.New("graph6: truncated 36-bit vertex count")
	}
	n = be36(data[2:8])
	return n, data[8:], nil
}

func be18(b []byte) int {
	return (int(b[0]-63) << 12) | (int(b[1]-63) << 6) | int(b[2]-63)
}

func be36(b []byte) int {
	n := 0
	for _, c := range b {
		n = (n << 6) | int(c-63)
	}
	return n
}

// bitStream unpacks the 6-bits-per-character edge data into a flat bit
// sequence, most significant of the 6 bits first within each character, in
// stream order.
func bitStream(data []byte) ([]bool, error) {
	bits := make([]bool, 0, len(data)*6)
	for _, c := range data {
		if c < 63 || c > 126 {
			return nil, fmt.Errorf("graph6: invalid edge-data byte %d", c)
		}
		v := c - 63
		for shift := 5; shift >= 0; shift-- {
			bits = append(bits, (v>>uint(shift))&1 == 1)
		}
	}
	return bits, nil
}
