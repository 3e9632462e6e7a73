// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested dimensions are invalid,
	// e.g. a negative row/column count or a non-positive block size.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrBadShape is returned when caller-supplied grid data is malformed:
	// a nil row, a nil block, ragged row lengths, or a partition whose
	// blocks are not row-height / column-width uniform.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers and vector constructors MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// Sum/AddInPlace with different shapes, Mul where a.Cols != b.Rows, or a
	// dot product over vectors of unequal length. Applies at both the element
	// level and the block level.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadFormat indicates malformed serialized text passed to Deserialize:
	// missing tokens, non-integer tokens, negative dimensions, or trailing
	// garbage after the declared payload.
	ErrBadFormat = errors.New("matrix: malformed serialized data")

	// ErrBadInterval indicates an empty half-open interval [min, max)
	// passed to Random.
	ErrBadInterval = errors.New("matrix: random interval must satisfy min < max")
)
