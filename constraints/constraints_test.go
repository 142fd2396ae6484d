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

package constraints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/zkplonk/field"
)

func sc(vs ...int64) []field.BN254Scalar {
	out := make([]field.BN254Scalar, len(vs))
	for i, v := range vs {
		out[i] = field.NewBN254Scalar(v)
	}
	return out
}

func TestGetPermutationConcreteScenario(t *testing.T) {
	assert := require.New(t)

	c := &PlonkConstraints[field.BN254Scalar]{
		L: 0, M: 7, N: 3,
		A: []int{1, 3, 5}, B: []int{2, 4, 6}, C: []int{5, 6, 7},
		QL: sc(0, 0, 0), QR: sc(0, 0, 0), QO: sc(0, 0, 0), QM: sc(0, 0, 0), QC: sc(0, 0, 0),
	}
	assert.True(c.IsValid())

	got := c.GetPermutation()
	assert.Equal([]int{0, 1, 6, 3, 4, 7, 2, 5, 8}, got)
}

func TestGetPermutationIsBijectionWithClosedCycles(t *testing.T) {
	assert := require.New(t)

	c := &PlonkConstraints[field.BN254Scalar]{
		L: 2, M: 9, N: 4,
		A: []int{1, 3, 5, 8}, B: []int{2, 4, 6, 7}, C: []int{5, 7, 8, 9},
		QL: sc(1, 1, 1, 0), QR: sc(0, 0, 1, 0), QO: sc(0, 0, -1, -1), QM: sc(0, 0, 0, 1), QC: sc(0, 0, 0, 0),
	}
	assert.True(c.IsValid())

	sigma := c.GetPermutation()
	assert.Len(sigma, 3*c.N)

	seen := make(map[int]bool, len(sigma))
	for _, p := range sigma {
		assert.False(seen[p], "sigma must be a bijection")
		seen[p] = true
	}

	for start := range sigma {
		p := start
		for i := 0; i < len(sigma); i++ {
			p = sigma[p]
			if p == start {
				break
			}
		}
		assert.Equal(start, p, "every cycle must close back to its start")
	}
}

func TestIsValidRejectsBadShapes(t *testing.T) {
	assert := require.New(t)

	base := PlonkConstraints[field.BN254Scalar]{
		L: 0, M: 7, N: 3,
		A: []int{1, 3, 5}, B: []int{2, 4, 6}, C: []int{5, 6, 7},
		QL: sc(0, 0, 0), QR: sc(0, 0, 0), QO: sc(0, 0, 0), QM: sc(0, 0, 0), QC: sc(0, 0, 0),
	}
	assert.True(base.IsValid())

	mismatched := base
	mismatched.A = []int{1, 3}
	assert.False(mismatched.IsValid())
	assert.ErrorIs(mismatched.Validate(), ErrLengthMismatch)

	outOfRange := base
	outOfRange.A = []int{1, 3, 99}
	assert.False(outOfRange.IsValid())
	assert.ErrorIs(outOfRange.Validate(), ErrWireLabelOutOfRange)

	tooManyPublic := base
	tooManyPublic.L = 8
	assert.False(tooManyPublic.IsValid())
	assert.ErrorIs(tooManyPublic.Validate(), ErrPublicInputCountExceedsWires)
}
