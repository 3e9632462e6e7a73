// Package matrix: element-level arithmetic kernels.
// All kernels perform strict fail-fast validation, return sentinel errors
// wrapped with an operation tag, and never mutate their operands except
// where the name says so (AddInPlace).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSum           = "Sum"
	opAddInPlace    = "AddInPlace"
	opMul           = "Mul"
	opMulPartitions = "MulPartitions"
)

// opErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addInto computes out[i] = a[i] + b[i] over the flat backing slices.
// Shared by Sum and AddInPlace; shape validation is the caller's job.
// out may alias a or b. Deterministic flat walk 0..n-1.
// Complexity: O(r*c) time.
func addInto(out, a, b *Matrix) {
	n := len(a.data)
	for idx := 0; idx < n; idx++ {
		out.data[idx] = a.data[idx] + b.data[idx]
	}
}

// sameShape reports shape equality of two matrices.
func sameShape(a, b *Matrix) bool {
	return a.r == b.r && a.c == b.c
}

// Sum computes the elementwise sum a + b into a fresh Matrix.
// Stage 1 (Validate): operands must have identical shapes.
// Stage 2 (Execute): single flat accumulation loop.
// Returns ErrDimensionMismatch (wrapped with opSum) on shape difference.
// Operands are never mutated.
// Complexity: O(r*c) time and memory.
func Sum(a, b *Matrix) (*Matrix, error) {
	if !sameShape(a, b) {
		return nil, opErrorf(opSum, ErrDimensionMismatch)
	}

	out := newMatrix(a.r, a.c, make([]int64, len(a.data)))
	addInto(out, a, b)

	return out, nil
}

// AddInPlace accumulates b into the receiver: m[i][j] += b[i][j].
// Used by the block dot product to reuse one accumulator allocation
// across all partial products. The receiver must not alias a
// still-unread operand of the surrounding computation.
// Returns ErrDimensionMismatch (wrapped with opAddInPlace) on shape difference.
// Complexity: O(r*c) time, O(1) extra memory.
func (m *Matrix) AddInPlace(b *Matrix) error {
	if !sameShape(m, b) {
		return opErrorf(opAddInPlace, ErrDimensionMismatch)
	}
	addInto(m, m, b)

	return nil
}

// Mul computes the matrix product a·b into a fresh a.Rows()×b.Cols() Matrix.
// Stage 1 (Validate): inner dimensions must agree (a.Cols == b.Rows).
// Stage 2 (Execute): cell (i,j) = Dot(row i of a, column j of b), with a
// fresh one-shot cursor pair per cell and fixed i→j traversal order.
// Returns ErrDimensionMismatch (wrapped with opMul) on inner mismatch.
// Operands are never mutated.
// Complexity: O(m·n·k) time, O(m·n) memory.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.c != b.r {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}

	rows, cols := a.r, b.c
	data := make([]int64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row, err := a.RowVector(i)
			if err != nil {
				return nil, opErrorf(opMul, err)
			}
			col, err := b.ColumnVector(j)
			if err != nil {
				return nil, opErrorf(opMul, err)
			}
			s, err := Dot(row, col)
			if err != nil {
				return nil, opErrorf(opMul, err)
			}
			data[i*cols+j] = s
		}
	}

	return newMatrix(rows, cols, data), nil
}
