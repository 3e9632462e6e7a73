// Package matrix: random matrix generation for demonstrations and tests.

package matrix

import "math/rand"

// Random creates an rows×cols Matrix with values drawn uniformly from the
// half-open interval [min, max). A nil rng falls back to the package-level
// math/rand source; pass rand.New(rand.NewSource(seed)) for deterministic
// output.
// Returns ErrInvalidDimensions on negative dimensions and ErrBadInterval
// unless min < max. Not used by the core algorithms.
// Complexity: O(r*c) time and memory.
func Random(rows, cols int, min, max int64, rng *rand.Rand) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if min >= max {
		return nil, ErrBadInterval
	}

	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}

	span := max - min
	for i := range m.data {
		if rng != nil {
			m.data[i] = min + rng.Int63n(span)
		} else {
			m.data[i] = min + rand.Int63n(span)
		}
	}

	return m, nil
}
