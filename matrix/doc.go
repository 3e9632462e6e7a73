// Package matrix implements dense int64 matrices and their block
// partitions, with exact sequential arithmetic.
//
// 🚀 What is it?
//
//	Two layered types, leaf-first:
//	  • Matrix    — a rectangular grid of int64 in flat row-major storage,
//	    with bounds-checked access, addition, multiplication, and tiling
//	    into a grid of sub-matrices.
//	  • Partition — a rectangular grid of Matrix blocks, multiplied with
//	    the same row-by-column dot-product algorithm as flat matrices,
//	    except each "multiply" is a full matrix product and each "add" is
//	    a matrix addition. ToMatrix stitches the blocks back together.
//
// ✨ Key features:
//   - one algorithmic primitive: Dot over one-shot row/column vectors,
//     reused verbatim at the element level and lifted to the block level
//   - exact tiling: edge blocks truncate to the remainder, so
//     m.Partition(br, bc) followed by ToMatrix reproduces m bit-for-bit
//   - fail-fast sentinel errors (ErrOutOfRange, ErrDimensionMismatch, ...)
//     matched via errors.Is
//   - a line-oriented text codec (Serialize/Deserialize) and a seeded
//     Random generator for demonstrations and tests
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/blockmat/matrix"
//
//	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]int64{{5, 6}, {7, 8}})
//
//	pa, _ := a.Partition(1, 1)
//	pb, _ := b.Partition(1, 1)
//
//	pc, _ := matrix.MulPartitions(pa, pb)
//	c := pc.ToMatrix() // equals matrix.Mul(a, b)
//
// Performance:
//
//   - Mul:           O(m·n·k) time, O(m·n) memory
//   - Partition:     O(R·C) time and memory (blocks are independent copies)
//   - ToMatrix:      O(R·C) time and memory
//   - MulPartitions: same multiply count as the flat product, grouped by block
//
// The package is intentionally sequential and exact: integer arithmetic
// only, wrapping on overflow, no concurrency primitives. A Matrix or
// Partition must not be mutated while it is being traversed.
package matrix
