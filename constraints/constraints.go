// Copyright 2026 Nume Crypto
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package constraints implements the PLONK constraint system (spec.md
// section 4.2): the gate/wiring description and its derived wire
// permutation. Grounded on original_source/zkps/constraints.py's
// Constraints/is_valid/get_permutation.
package constraints

import (
	"errors"

	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/internal/log"
)

// ErrLengthMismatch is returned when the selector or wire-index vectors
// do not all share length n.
var ErrLengthMismatch = errors.New("constraints: selector/wire vectors must all have length n")

// ErrWireLabelOutOfRange is returned when a wire label in a, b, or c falls
// outside [1, m].
var ErrWireLabelOutOfRange = errors.New("constraints: wire label out of range [1, m]")

// ErrPublicInputCountExceedsWires is returned when l > m.
var ErrPublicInputCountExceedsWires = errors.New("constraints: public input count exceeds wire count")

// PlonkConstraints is the fixed-arity gate/wiring description spec.md
// section 3 defines: L public inputs among M distinct wires, wired through
// N gates via selector vectors.
type PlonkConstraints[T field.Element[T]] struct {
	L int // number of public inputs
	M int // number of distinct wire variables
	N int // number of gates

	A, B, C []int // length-N wire indices in [1, M]: left/right/output wire of each gate

	QL, QR, QO, QM, QC []T // length-N selector coefficients
}

// IsValid reports whether all length invariants hold, every wire label is
// in [1, m], and l <= m. It never returns an error: a failing shape is a
// predicate result, not a fault (spec.md section 4.2).
func (c *PlonkConstraints[T]) IsValid() bool {
	n := c.N
	if len(c.A) != n || len(c.B) != n || len(c.C) != n {
		return false
	}
	if len(c.QL) != n || len(c.QR) != n || len(c.QO) != n || len(c.QM) != n || len(c.QC) != n {
		return false
	}
	if c.L > c.M {
		return false
	}
	for _, labels := range [][]int{c.A, c.B, c.C} {
		for _, w := range labels {
			if w < 1 || w > c.M {
				return false
			}
		}
	}
	return true
}

// Validate is IsValid with a diagnosable error, used by the preprocessor,
// which must fail loudly rather than silently on malformed constraints.
func (c *PlonkConstraints[T]) Validate() error {
	n := c.N
	if len(c.A) != n || len(c.B) != n || len(c.C) != n ||
		len(c.QL) != n || len(c.QR) != n || len(c.QO) != n || len(c.QM) != n || len(c.QC) != n {
		return ErrLengthMismatch
	}
	for _, labels := range [][]int{c.A, c.B, c.C} {
		for _, w := range labels {
			if w < 1 || w > c.M {
				return ErrWireLabelOutOfRange
			}
		}
	}
	if c.L > c.M {
		return ErrPublicInputCountExceedsWires
	}
	return nil
}

// GetPermutation derives the length-3N wire permutation sigma on
// {0,...,3n-1}. Positions {j*n+i : j in {0,1,2}} sharing a wire label form
// a cycle; sigma maps each position to the next position in its cycle.
func (c *PlonkConstraints[T]) GetPermutation() []int {
	n := c.N
	classes := make([][]int, c.M)
	roles := [3][]int{c.A, c.B, c.C}
	for j, labels := range roles {
		for i, label := range labels {
			pos := j*n + i
			classes[label-1] = append(classes[label-1], pos)
		}
	}

	sigma := make([]int, 3*n)
	for pos := range sigma {
		sigma[pos] = pos
	}
	for _, positions := range classes {
		for k, pos := range positions {
			sigma[pos] = positions[(k+1)%len(positions)]
		}
	}

	log.Logger.Debug().
		Int("n", n).
		Int("m", c.M).
		Msg("constraints: derived wire permutation")
	return sigma
}
