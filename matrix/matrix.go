// Package matrix: Matrix is a concrete, row-major dense matrix of int64,
// storing elements in a flat slice for performance and cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a row-major dense matrix of int64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The shape is fixed at construction; element values change only through
// AddInPlace.
type Matrix struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// NewMatrix creates an r×c Matrix initialized to zeros.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Prepare): normalize the empty shape (rows==0 implies cols==0).
// Stage 3 (Finalize): allocate flat backing slice and return.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// A matrix with no rows has no columns either.
	if rows == 0 {
		cols = 0
	}

	return &Matrix{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewFromRows creates a Matrix from caller-supplied row data.
// Stage 1 (Validate): every row must share the first row's length; an
// empty grid is valid and yields the 0×0 matrix.
// Stage 2 (Execute): deep-copy rows into flat row-major storage, so later
// mutation of the input cannot alias the matrix.
// Returns ErrBadShape on ragged rows.
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]int64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	cols := len(rows[0])
	for _, row := range rows {
		// A nil row counts as length zero; ragged rows are rejected outright.
		if len(row) != cols {
			return nil, ErrBadShape
		}
	}

	// Deep copy to prevent external mutation
	data := make([]int64, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Matrix{r: len(rows), c: cols, data: data}, nil
}

// newMatrix is the trusted construction path for internally-derived data
// already known consistent (arithmetic results, partition reconstruction).
// data must hold exactly rows*cols elements in row-major order; the slice
// is owned by the returned Matrix.
func newMatrix(rows, cols int, data []int64) *Matrix {
	return &Matrix{r: rows, c: cols, data: data}
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.c
}

// Exists reports whether (row, col) lies within the matrix bounds.
// It never fails; out-of-range indices simply yield false.
// Complexity: O(1).
func (m *Matrix) Exists(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange, wrapped with position context, on invalid indices.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int64, error) {
	if !m.Exists(row, col) {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Clone returns a deep copy of the matrix.
// The returned Matrix is independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging:
//
//	Matrix 2 x 2 : [
//	  1, 2
//	  3, 4
//	]
//
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Matrix %d x %d : [\n", m.r, m.c)
	for i := 0; i < m.r; i++ {
		buf.WriteString("  ")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%d", m.data[i*m.c+j])
		}
		buf.WriteString("\n")
	}
	buf.WriteString("]")

	return buf.String()
}
