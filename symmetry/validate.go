// SPDX-License-Identifier: MIT

package symmetry

import "fmt"

// Validate checks that c is a bijection over 0..n-1 pairing equal elements:
// len(c) == len(numsA) == len(numsB), every index used once, and
// numsA[i] == numsB[c[i]].
func Validate(c Correspondence, numsA, numsB []int) error {
	n := len(numsA)
	if len(c) != n || len(numsB) != n {
		return fmt.Errorf("symmetry: correspondence of %d over %d/%d atoms: %w",
			len(c), n, len(numsB), ErrInvalidCorrespondence)
	}
	seen := make([]bool, n)
	for i, j := range c {
		if j < 0 || j >= n {
			return fmt.Errorf("symmetry: c[%d]=%d out of range: %w", i, j, ErrInvalidCorrespondence)
		}
		if seen[j] {
			return fmt.Errorf("symmetry: index %d mapped twice: %w", j, ErrInvalidCorrespondence)
		}
		seen[j] = true
		if numsA[i] != numsB[j] {
			return fmt.Errorf("symmetry: atom %d (Z=%d) paired with %d (Z=%d): %w",
				i, numsA[i], j, numsB[j], ErrInvalidCorrespondence)
		}
	}

	return nil
}

// elementPreserving reports whether c pairs equal elements (c assumed a bijection).
func elementPreserving(c Correspondence, numsA, numsB []int) bool {
	for i, j := range c {
		if numsA[i] != numsB[j] {
			return false
		}
	}

	return true
}
