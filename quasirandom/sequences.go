// Package quasirandom provides low-discrepancy sequences and discrepancy
// measures for point sets in the unit interval and unit cube.
package quasirandom

import (
	"fmt"
)

// VanDerCorput returns the index-th element of the Van der Corput sequence of
// the given base: the radical inverse of the index, mirroring its base-b
// digits around the radix point. Indexing starts at 1.
func VanDerCorput(index, base int) (float64, error) {
	if index < 1 {
		return 0, fmt.Errorf("quasirandom: index must be at least 1, got %d", index)
	}
	if base < 2 {
		return 0, fmt.Errorf("quasirandom: base must be at least 2, got %d", base)
	}
	value := 0.0
	refinement := 1.0 / float64(base)
	for remainder := index; remainder > 0; remainder /= base {
		value += float64(remainder%base) * refinement
		refinement /= float64(base)
	}
	return value, nil
}

// Halton generates points of a d-dimensional Halton sequence: the j-th
// coordinate of the index-th point is the index-th Van der Corput number of
// base b_j. The bases must be pairwise coprime so that coordinates are
// uncorrelated.
type Halton struct {
	bases []int
}

// NewHalton constructs a Halton sequence with the given bases.
func NewHalton(bases []int) (*Halton, error) {
	if len(bases) == 0 {
		return nil, fmt.Errorf("quasirandom: need at least one base")
	}
	for _, b := range bases {
		if b < 2 {
			return nil, fmt.Errorf("quasirandom: base must be at least 2, got %d", b)
		}
	}
	for i := 0; i < len(bases); i++ {
		for j := i + 1; j < len(bases); j++ {
			if gcd(bases[i], bases[j]) != 1 {
				return nil, fmt.Errorf("quasirandom: bases %d and %d are not coprime", bases[i], bases[j])
			}
		}
	}
	copied := make([]int, len(bases))
	copy(copied, bases)
	return &Halton{bases: copied}, nil
}

// Dimension returns the number of coordinates per point.
func (h *Halton) Dimension() int {
	return len(h.bases)
}

// Point returns the index-th point of the sequence. Indexing starts at 1.
func (h *Halton) Point(index int) ([]float64, error) {
	point := make([]float64, len(h.bases))
	for dimension, base := range h.bases {
		value, err := VanDerCorput(index, base)
		if err != nil {
			return nil, err
		}
		point[dimension] = value
	}
	return point, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
