// Package matrix: one-shot row/column cursors and the dot product.
// Vector is the single traversal primitive the multiplication kernels are
// built on: a finite, forward-only, non-restartable sequence with a
// precomputed length for pre-validation before consumption.

package matrix

import "fmt"

// Vector is a lazy, one-shot cursor over a single row or column of a
// Matrix. Each RowVector/ColumnVector call yields a fresh cursor; once
// exhausted it cannot be rewound. A Vector reads the matrix's backing
// storage directly, so the matrix must not be mutated mid-traversal.
type Vector struct {
	data []int64 // backing storage of the owning matrix
	pos  int     // flat offset of the next element
	step int     // offset increment per element: 1 for rows, Cols for columns
	left int     // elements remaining
	size int     // total element count, exposed via Len
}

// Len returns the total number of elements the cursor yields,
// independent of how many have been consumed.
// Complexity: O(1).
func (v *Vector) Len() int {
	return v.size
}

// Next yields the next element. The second return is false once the
// cursor is exhausted.
// Complexity: O(1).
func (v *Vector) Next() (int64, bool) {
	if v.left == 0 {
		return 0, false
	}
	x := v.data[v.pos]
	v.pos += v.step
	v.left--

	return x, true
}

// RowVector returns a cursor over row i, in column order.
// Returns ErrOutOfRange at construction if i is not a valid row index.
// Complexity: O(1); traversal is O(c).
func (m *Matrix) RowVector(i int) (*Vector, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("RowVector(%d): %w", i, ErrOutOfRange)
	}

	return &Vector{data: m.data, pos: i * m.c, step: 1, left: m.c, size: m.c}, nil
}

// ColumnVector returns a cursor over column j, in row order.
// Returns ErrOutOfRange at construction if j is not a valid column index.
// Complexity: O(1); traversal is O(r).
func (m *Matrix) ColumnVector(j int) (*Vector, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("ColumnVector(%d): %w", j, ErrOutOfRange)
	}

	return &Vector{data: m.data, pos: j, step: m.c, left: m.r, size: m.r}, nil
}

// Dot computes the dot product of two equal-length vectors: the sum of
// pairwise products in sequence order. Integer accumulation wraps on
// overflow; there is no guard.
// Returns ErrDimensionMismatch if the lengths differ. Both cursors are
// consumed regardless of position, so pass freshly constructed vectors.
// Complexity: O(n) time, O(1) memory.
func Dot(a, b *Vector) (int64, error) {
	// Pre-validate lengths before consuming either cursor.
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("Dot: %w", ErrDimensionMismatch)
	}

	var sum int64
	for {
		x, okA := a.Next()
		y, okB := b.Next()
		if !okA || !okB {
			break
		}
		sum += x * y
	}

	return sum, nil
}
