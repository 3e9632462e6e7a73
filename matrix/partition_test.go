// Package matrix_test contains unit tests for partitions: tiling, block
// access, block multiplication, and reconstruction.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestPartitionInvalidBlockSize ensures non-positive block sizes are rejected.
func TestPartitionInvalidBlockSize(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 1}, {1, -1}} {
		_, err := m.Partition(size[0], size[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

// TestPartitionBlocks verifies the concrete 2×3 scenario: partitioning
// [[1,2,3],[4,5,6]] with (1,2) yields blocks [[1,2]],[[3]] / [[4,5]],[[6]].
func TestPartitionBlocks(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	p, err := m.Partition(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())

	want := map[[2]int][][]int64{
		{0, 0}: {{1, 2}},
		{0, 1}: {{3}},
		{1, 0}: {{4, 5}},
		{1, 1}: {{6}},
	}
	for pos, rows := range want {
		b, err := p.Block(pos[0], pos[1])
		require.NoError(t, err)
		require.Equal(t, rows, toRows(t, b))
	}
}

// TestPartitionBlockShapes checks the tiling size properties: every block
// is at most the requested size and the last block-row/column truncates
// to the remainder.
func TestPartitionBlockShapes(t *testing.T) {
	const rows, cols, br, bc = 7, 5, 3, 2
	m, err := matrix.Random(rows, cols, 0, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	p, err := m.Partition(br, bc)
	require.NoError(t, err)
	require.Equal(t, 3, p.Rows()) // ceil(7/3)
	require.Equal(t, 3, p.Cols()) // ceil(5/2)

	for i := 0; i < p.Rows(); i++ {
		for j := 0; j < p.Cols(); j++ {
			b, err := p.Block(i, j)
			require.NoError(t, err)

			wantH := br
			if i == p.Rows()-1 {
				wantH = rows - (p.Rows()-1)*br
			}
			wantW := bc
			if j == p.Cols()-1 {
				wantW = cols - (p.Cols()-1)*bc
			}
			require.Equal(t, wantH, b.Rows(), "block (%d,%d) height", i, j)
			require.Equal(t, wantW, b.Cols(), "block (%d,%d) width", i, j)
		}
	}
}

// TestPartitionBlocksAreCopies ensures blocks are independent copies,
// not views over the origin matrix.
func TestPartitionBlocksAreCopies(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	p, err := m.Partition(2, 2)
	require.NoError(t, err)

	b, err := p.Block(0, 0)
	require.NoError(t, err)
	require.NoError(t, b.AddInPlace(b)) // double the block in place

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v) // origin unchanged
}

// TestPartitionRoundTrip verifies ToMatrix inverts Partition exactly for
// a sweep of block sizes, including sizes larger than the matrix.
func TestPartitionRoundTrip(t *testing.T) {
	m, err := matrix.Random(6, 7, -50, 50, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for br := 1; br <= 8; br++ {
		for bc := 1; bc <= 8; bc++ {
			t.Run(fmt.Sprintf("br=%d,bc=%d", br, bc), func(t *testing.T) {
				p, err := m.Partition(br, bc)
				require.NoError(t, err)
				requireSameMatrix(t, m, p.ToMatrix())
			})
		}
	}
}

// TestNewPartitionValidation exercises the public constructor's grid checks:
// ragged grids, nil blocks, and non-uniform block heights/widths.
func TestNewPartitionValidation(t *testing.T) {
	b11 := mustFromRows(t, [][]int64{{1}})
	b12 := mustFromRows(t, [][]int64{{1, 2}})
	b21 := mustFromRows(t, [][]int64{{1}, {2}})

	cases := []struct {
		name string
		grid [][]*matrix.Matrix
	}{
		{"Ragged", [][]*matrix.Matrix{{b11, b12}, {b11}}},
		{"NilBlock", [][]*matrix.Matrix{{b11, nil}}},
		{"UnevenRowHeight", [][]*matrix.Matrix{{b11, b21}}},
		{"UnevenColumnWidth", [][]*matrix.Matrix{{b11}, {b12}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewPartition(tc.grid)
			require.ErrorIs(t, err, matrix.ErrBadShape)
		})
	}

	// A uniform grid passes: heights fixed per row, widths per column.
	p, err := matrix.NewPartition([][]*matrix.Matrix{{b11, b12}, {b11, b12}})
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())
}

// TestPartitionBlockOutOfRange ensures Block and the block cursors
// bounds-check the partition grid.
func TestPartitionBlockOutOfRange(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	p, err := m.Partition(1, 1)
	require.NoError(t, err)

	_, err = p.Block(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = p.Block(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.False(t, p.Exists(2, 2))

	_, err = p.RowVector(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = p.ColumnVector(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestPartitionBlockVectors verifies block-row/block-column cursor order.
func TestPartitionBlockVectors(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	p, err := m.Partition(1, 1)
	require.NoError(t, err)

	row, err := p.RowVector(1)
	require.NoError(t, err)
	require.Equal(t, 2, row.Len())

	var got []int64
	for {
		b, ok := row.Next()
		if !ok {
			break
		}
		v, err := b.At(0, 0)
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int64{3, 4}, got)
}

// TestMulPartitionsMatchesFlat is the central correctness property: for
// compatible matrices and any block sizes, multiplying the partitions and
// reconstructing equals the flat product exactly.
func TestMulPartitionsMatchesFlat(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a, err := matrix.Random(5, 7, -9, 10, rng)
	require.NoError(t, err)
	b, err := matrix.Random(7, 4, -9, 10, rng)
	require.NoError(t, err)

	flat, err := matrix.Mul(a, b)
	require.NoError(t, err)

	// The inner block split of a's columns must equal that of b's rows;
	// the outer splits are free.
	for _, sizes := range [][3]int{{1, 1, 1}, {2, 3, 2}, {3, 2, 4}, {5, 7, 4}, {4, 4, 4}, {9, 9, 9}} {
		br, inner, bc := sizes[0], sizes[1], sizes[2]
		t.Run(fmt.Sprintf("br=%d,inner=%d,bc=%d", br, inner, bc), func(t *testing.T) {
			pa, err := a.Partition(br, inner)
			require.NoError(t, err)
			pb, err := b.Partition(inner, bc)
			require.NoError(t, err)

			pc, err := matrix.MulPartitions(pa, pb)
			require.NoError(t, err)
			requireSameMatrix(t, flat, pc.ToMatrix())
		})
	}
}

// TestMulPartitionsGridMismatch ensures the block-grid inner dimensions
// are validated before any block arithmetic runs.
func TestMulPartitionsGridMismatch(t *testing.T) {
	a := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]int64{{5, 6}, {7, 8}})

	pa, err := a.Partition(1, 1) // 2×2 block grid
	require.NoError(t, err)
	pb, err := b.Partition(2, 1) // 1×2 block grid
	require.NoError(t, err)

	_, err = matrix.MulPartitions(pa, pb)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulPartitionsInnerShapeError checks that an element-level
// incompatibility inside the blocks surfaces as the inner kernel's
// dimension error even when the block grids line up.
func TestMulPartitionsInnerShapeError(t *testing.T) {
	// 1×2 times 2×1 block grids, but the element dimensions cannot agree:
	// a's blocks are 1×1 while b's first block is 2×1.
	a, err := matrix.NewPartition([][]*matrix.Matrix{{
		mustFromRows(t, [][]int64{{1}}),
		mustFromRows(t, [][]int64{{2}}),
	}})
	require.NoError(t, err)

	b, err := matrix.NewPartition([][]*matrix.Matrix{
		{mustFromRows(t, [][]int64{{1}, {2}})},
		{mustFromRows(t, [][]int64{{3}, {4}})},
	})
	require.NoError(t, err)

	_, err = matrix.MulPartitions(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestToMatrixSingleBlock covers the degenerate tiling where the block
// size exceeds the matrix, so the partition is the whole matrix.
func TestToMatrixSingleBlock(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	p, err := m.Partition(10, 10)
	require.NoError(t, err)
	require.Equal(t, 1, p.Rows())
	require.Equal(t, 1, p.Cols())
	requireSameMatrix(t, m, p.ToMatrix())
}
