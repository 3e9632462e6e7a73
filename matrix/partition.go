// Package matrix: block partitions — a matrix of matrices.
// A Partition is a coarsened view of a logically larger flat Matrix: the
// grid cells are sub-matrix blocks, every block in a partition-row shares
// one height, every block in a partition-column shares one width, and
// ToMatrix is the exact inverse of Matrix.Partition.

package matrix

import (
	"fmt"
	"strings"
)

// Partition is a row-major grid of Matrix blocks.
// r and c count blocks (the partition grid), not elements.
// The block-uniformity invariant (equal heights per partition-row, equal
// widths per partition-column) is enforced by NewPartition; everything
// the package itself produces satisfies it by construction.
type Partition struct {
	r, c   int       // partition-grid dimensions, in blocks
	blocks []*Matrix // flat row-major grid, length == r*c
}

// NewPartition creates a Partition from a caller-supplied grid of blocks.
// Stage 1 (Validate): the grid must be rectangular with non-nil blocks.
// Stage 2 (Validate): blocks in each partition-row must share one height
// and blocks in each partition-column one width, so that reconstruction
// offsets are well defined for every Partition reachable through the
// public API.
// Returns ErrBadShape on any violation; an empty grid is valid.
// Complexity: O(r*c) time and memory (block pointers are shared, not copied).
func NewPartition(blocks [][]*Matrix) (*Partition, error) {
	if len(blocks) == 0 {
		return &Partition{}, nil
	}
	cols := len(blocks[0])
	for _, row := range blocks {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		for _, b := range row {
			if b == nil {
				return nil, ErrBadShape
			}
		}
	}

	// Uniformity scan: height fixed along each partition-row,
	// width fixed along each partition-column.
	for i, row := range blocks {
		for j, b := range row {
			if b.Rows() != blocks[i][0].Rows() || b.Cols() != blocks[0][j].Cols() {
				return nil, ErrBadShape
			}
		}
	}

	flat := make([]*Matrix, 0, len(blocks)*cols)
	for _, row := range blocks {
		flat = append(flat, row...)
	}

	return &Partition{r: len(blocks), c: cols, blocks: flat}, nil
}

// newPartition is the trusted construction path for internally-derived
// block grids already known rectangular and uniform (tiling results,
// block-multiplication results).
func newPartition(rows, cols int, blocks []*Matrix) *Partition {
	return &Partition{r: rows, c: cols, blocks: blocks}
}

// Partition tiles the matrix into a grid of ceil(R/maxBlockRows) ×
// ceil(C/maxBlockCols) blocks. Block (i,j) covers rows
// [i*maxBlockRows, i*maxBlockRows+h) and columns
// [j*maxBlockCols, j*maxBlockCols+w), where h and w equal the requested
// maximum except on the last block-row/block-column, where they truncate
// to the remainder. Blocks tile the matrix exactly: no padding, no
// overlap. Each block is an independent copy, not a view.
// Returns ErrInvalidDimensions unless both block sizes are positive.
// Complexity: O(R*C) time and memory.
func (m *Matrix) Partition(maxBlockRows, maxBlockCols int) (*Partition, error) {
	if maxBlockRows <= 0 || maxBlockCols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// ceil-divide without floats
	pr := (m.r + maxBlockRows - 1) / maxBlockRows
	pc := (m.c + maxBlockCols - 1) / maxBlockCols

	blocks := make([]*Matrix, 0, pr*pc)
	for i := 0; i < pr; i++ {
		rowOffset := i * maxBlockRows
		h := maxBlockRows
		if rowOffset+h > m.r {
			h = m.r - rowOffset // truncated last block-row
		}
		for j := 0; j < pc; j++ {
			colOffset := j * maxBlockCols
			w := maxBlockCols
			if colOffset+w > m.c {
				w = m.c - colOffset // truncated last block-column
			}

			data := make([]int64, h*w)
			for br := 0; br < h; br++ {
				src := (rowOffset+br)*m.c + colOffset
				copy(data[br*w:(br+1)*w], m.data[src:src+w])
			}
			blocks = append(blocks, newMatrix(h, w, data))
		}
	}

	return newPartition(pr, pc, blocks), nil
}

// Rows returns the number of block-rows in the partition grid.
// Complexity: O(1).
func (p *Partition) Rows() int {
	return p.r
}

// Cols returns the number of block-columns in the partition grid.
// Complexity: O(1).
func (p *Partition) Cols() int {
	return p.c
}

// Exists reports whether (row, col) is a valid partition-grid position.
// Complexity: O(1).
func (p *Partition) Exists(row, col int) bool {
	return row >= 0 && row < p.r && col >= 0 && col < p.c
}

// Block retrieves the block at partition-grid position (row, col).
// Returns ErrOutOfRange, wrapped with position context, on invalid indices.
// Complexity: O(1).
func (p *Partition) Block(row, col int) (*Matrix, error) {
	if !p.Exists(row, col) {
		return nil, fmt.Errorf("Block(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return p.blocks[row*p.c+col], nil
}

// BlockVector is a lazy, one-shot cursor over a single block-row or
// block-column of a Partition — the same contract as Vector with Matrix
// elements instead of integers.
type BlockVector struct {
	blocks []*Matrix
	pos    int
	step   int
	left   int
	size   int
}

// Len returns the total number of blocks the cursor yields.
// Complexity: O(1).
func (v *BlockVector) Len() int {
	return v.size
}

// Next yields the next block. The second return is false once the
// cursor is exhausted.
// Complexity: O(1).
func (v *BlockVector) Next() (*Matrix, bool) {
	if v.left == 0 {
		return nil, false
	}
	b := v.blocks[v.pos]
	v.pos += v.step
	v.left--

	return b, true
}

// RowVector returns a cursor over block-row i, in block-column order.
// Returns ErrOutOfRange at construction if i is invalid.
// Complexity: O(1); traversal is O(c).
func (p *Partition) RowVector(i int) (*BlockVector, error) {
	if i < 0 || i >= p.r {
		return nil, fmt.Errorf("RowVector(%d): %w", i, ErrOutOfRange)
	}

	return &BlockVector{blocks: p.blocks, pos: i * p.c, step: 1, left: p.c, size: p.c}, nil
}

// ColumnVector returns a cursor over block-column j, in block-row order.
// Returns ErrOutOfRange at construction if j is invalid.
// Complexity: O(1); traversal is O(r).
func (p *Partition) ColumnVector(j int) (*BlockVector, error) {
	if j < 0 || j >= p.c {
		return nil, fmt.Errorf("ColumnVector(%d): %w", j, ErrOutOfRange)
	}

	return &BlockVector{blocks: p.blocks, pos: j, step: p.c, left: p.r, size: p.r}, nil
}

// blockDot computes the dot product of a block-row and a block-column:
// the scalar algorithm with Mul substituted for multiply and AddInPlace
// for add. The accumulator is a zero matrix allocated lazily once the
// first product's shape is known, then updated in place across all
// remaining partial products.
// Inner shape errors from Mul/AddInPlace propagate unchanged.
// Complexity: O(k) block products.
func blockDot(a, b *BlockVector) (*Matrix, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("blockDot: %w", ErrDimensionMismatch)
	}

	var sum *Matrix
	for {
		x, okA := a.Next()
		y, okB := b.Next()
		if !okA || !okB {
			break
		}
		product, err := Mul(x, y)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			// Identity element: a zero matrix shaped like the first product.
			sum = newMatrix(product.r, product.c, make([]int64, len(product.data)))
		}
		if err = sum.AddInPlace(product); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

// MulPartitions computes the block product a·b: cell (I,J) of the result
// is the block dot-product of a's block-row I and b's block-column J.
// Stage 1 (Validate): block-grid inner dimensions must agree
// (a.Cols == b.Rows, counted in blocks).
// Stage 2 (Execute): fixed I→J traversal, one blockDot per result cell.
// Inner element-level incompatibilities surface as the ErrDimensionMismatch
// raised by the underlying Mul or AddInPlace.
// Returns a trusted Partition of shape a.Rows() × b.Cols().
// Complexity: the same multiply count as the flat product, grouped by block.
func MulPartitions(a, b *Partition) (*Partition, error) {
	if a.c != b.r {
		return nil, opErrorf(opMulPartitions, ErrDimensionMismatch)
	}

	rows, cols := a.r, b.c
	blocks := make([]*Matrix, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			row, err := a.RowVector(i)
			if err != nil {
				return nil, opErrorf(opMulPartitions, err)
			}
			col, err := b.ColumnVector(j)
			if err != nil {
				return nil, opErrorf(opMulPartitions, err)
			}
			sum, err := blockDot(row, col)
			if err != nil {
				return nil, opErrorf(opMulPartitions, err)
			}
			blocks[i*cols+j] = sum
		}
	}

	return newPartition(rows, cols, blocks), nil
}

// ToMatrix reassembles the partition into a single flat Matrix: the exact
// inverse of Matrix.Partition. Total row count is the sum of block heights
// down the first block-column; total column count is the sum of block
// widths along the first block-row. The constructor-enforced uniformity
// invariant guarantees those totals fit every block, so reconstruction
// cannot fail.
// Complexity: O(R*C) time and memory over the reassembled elements.
func (p *Partition) ToMatrix() *Matrix {
	if p.r == 0 || p.c == 0 {
		return &Matrix{}
	}

	rows, cols := 0, 0
	for i := 0; i < p.r; i++ {
		rows += p.blocks[i*p.c].r
	}
	for j := 0; j < p.c; j++ {
		cols += p.blocks[j].c
	}

	data := make([]int64, rows*cols)
	rowOffset := 0
	for i := 0; i < p.r; i++ {
		colOffset := 0
		for j := 0; j < p.c; j++ {
			b := p.blocks[i*p.c+j]
			for br := 0; br < b.r; br++ {
				dst := (rowOffset+br)*cols + colOffset
				copy(data[dst:dst+b.c], b.data[br*b.c:(br+1)*b.c])
			}
			colOffset += b.c
		}
		rowOffset += p.blocks[i*p.c].r
	}

	return newMatrix(rows, cols, data)
}

// String implements fmt.Stringer: a block map followed by each block's
// own rendering.
// Complexity: O(total elements) for string construction.
func (p *Partition) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Partition %d x %d : [\n", p.r, p.c)
	for i := 0; i < p.r; i++ {
		buf.WriteString("  ")
		for j := 0; j < p.c; j++ {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "M(%d,%d)", i, j)
		}
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	for i := 0; i < p.r; i++ {
		for j := 0; j < p.c; j++ {
			fmt.Fprintf(&buf, "\nM(%d,%d):\n%s\n", i, j, p.blocks[i*p.c+j])
		}
	}

	return buf.String()
}
