// Package matrix_test: shared helpers for the matrix package tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/blockmat/matrix"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a Matrix from row data, failing the test on error.
func mustFromRows(t testing.TB, rows [][]int64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// toRows reads a whole Matrix back into row slices via the public accessors.
func toRows(t testing.TB, m *matrix.Matrix) [][]int64 {
	t.Helper()
	out := make([][]int64, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		out[i] = make([]int64, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// requireSameMatrix asserts two matrices agree in shape and every element.
func requireSameMatrix(t testing.TB, want, got *matrix.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	require.Equal(t, toRows(t, want), toRows(t, got))
}
