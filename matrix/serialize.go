// Package matrix: line-oriented text codec.
// The wire form is "rows cols\n" followed by rows lines of cols
// space-separated integers with a trailing space per line:
//
//	2 2
//	1 2
//	3 4
//
// Serialize and Deserialize are exact inverses on well-formed input.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders the matrix in the textual wire form.
// A 2×2 matrix [[1,2],[3,4]] yields exactly "2 2\n1 2 \n3 4 \n".
// Complexity: O(r*c) time.
func (m *Matrix) Serialize() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%d %d\n", m.r, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&buf, "%d ", m.data[i*m.c+j])
		}
		buf.WriteString("\n")
	}

	return buf.String()
}

// Deserialize parses the textual wire form back into a Matrix.
// Tokens are split on arbitrary whitespace, so the codec accepts any
// spacing Serialize could have produced.
// Returns ErrBadFormat, with token context, on: a missing or non-integer
// token, negative dimensions, or trailing garbage after the declared
// payload.
// Complexity: O(r*c) time and memory.
func Deserialize(s string) (*Matrix, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil, fmt.Errorf("Deserialize: missing header: %w", ErrBadFormat)
	}

	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("Deserialize: row count %q: %w", fields[0], ErrBadFormat)
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("Deserialize: column count %q: %w", fields[1], ErrBadFormat)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Deserialize: negative dimensions %dx%d: %w", rows, cols, ErrBadFormat)
	}

	payload := fields[2:]
	if len(payload) != rows*cols {
		return nil, fmt.Errorf("Deserialize: want %d values, have %d: %w", rows*cols, len(payload), ErrBadFormat)
	}

	data := make([]int64, rows*cols)
	for i, tok := range payload {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Deserialize: value %q: %w", tok, ErrBadFormat)
		}
		data[i] = v
	}

	// A declared "0 c" header denormalizes to the 0×0 matrix.
	if rows == 0 {
		cols = 0
	}

	return newMatrix(rows, cols, data), nil
}
