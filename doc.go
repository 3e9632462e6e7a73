// Package blockmat is a small, exact linear-algebra toolkit for dense
// integer matrices with block-partitioned multiplication.
//
// 🚀 What is blockmat?
//
//	A sequential, deterministic library that brings together:
//		• Dense primitives: bounds-checked int64 matrices in flat row-major storage
//		• Arithmetic: addition, in-place accumulation, row-by-column multiplication
//		• Vectors: lazy one-shot row/column cursors with a generic dot product
//		• Partitions: tiling a matrix into a grid of blocks and back again
//		• Block multiplication: the scalar dot product lifted to whole blocks
//		• A line-oriented text codec and a seeded random generator
//
// ✨ Why choose blockmat?
//
//   - Exact – integer arithmetic only, no epsilons, no rounding surprises
//   - Fail-fast – every shape violation surfaces as a sentinel error via errors.Is
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – fixed traversal orders, same output for the same input, always
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/ — Matrix, Partition, vectors, arithmetic kernels, codec, generator
//
// Quick ASCII example:
//
//	┌ 1 2 │ 3 ┐          Partition(1,2) tiles a 2×3 matrix into
//	├─────┼───┤          four blocks; multiplying two partitions
//	└ 4 5 │ 6 ┘          block-by-block equals the flat product.
//
// The cmd/blockmul command wires generation → partition → multiply →
// reconstruction → printing into a runnable demonstration.
//
//	go get github.com/katalvlaran/blockmat/matrix
package blockmat
