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

package plonk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/zkplonk/constraints"
	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/pcs/trivial"
	"github.com/nume-crypto/zkplonk/preprocessor"
)

// scenarioCircuit returns spec.md section 8 scenario 6's constraints:
// l=2, m=9, n=4 encoding x + y + xy = out.
func scenarioCircuit() *constraints.PlonkConstraints[field.BN254Scalar] {
	s := func(vs ...int64) []field.BN254Scalar {
		out := make([]field.BN254Scalar, len(vs))
		for i, v := range vs {
			out[i] = field.NewBN254Scalar(v)
		}
		return out
	}
	return &constraints.PlonkConstraints[field.BN254Scalar]{
		L: 2, M: 9, N: 4,
		A: []int{1, 3, 5, 8}, B: []int{2, 4, 6, 7}, C: []int{5, 7, 8, 9},
		QL: s(1, 1, 1, 0), QR: s(0, 0, 1, 0), QO: s(0, 0, -1, -1), QM: s(0, 0, 0, 1), QC: s(0, 0, 0, 0),
	}
}

func scenarioWitness() []field.BN254Scalar {
	s := func(vs ...int64) []field.BN254Scalar {
		out := make([]field.BN254Scalar, len(vs))
		for i, v := range vs {
			out[i] = field.NewBN254Scalar(v)
		}
		return out
	}
	return s(10, 0, 20, 0, 10, 5, 20, 15, 300)
}

func TestPlonkCorrectnessTrivialPCS(t *testing.T) {
	assert := require.New(t)

	c := scenarioCircuit()
	domain, err := field.RootsOfUnity[field.BN254Scalar](uint64(c.N))
	assert.NoError(err)
	pre, err := preprocessor.Preprocess(c, domain)
	assert.NoError(err)

	scheme := trivial.New[field.BN254Scalar]()
	prover, err := NewPlonkProver[field.BN254Scalar, trivial.Commitment[field.BN254Scalar], trivial.Opening](scheme, c, pre, domain)
	assert.NoError(err)
	verifier := NewPlonkVerifier[field.BN254Scalar, trivial.Commitment[field.BN254Scalar], trivial.Opening](scheme, pre, domain, c.L)

	witness := scenarioWitness()
	publicInputs := []field.BN254Scalar{field.NewBN254Scalar(10), field.NewBN254Scalar(20)}

	proof, err := prover.Prove(witness, publicInputs)
	assert.NoError(err)

	ok, err := verifier.Verify(proof, publicInputs)
	assert.NoError(err)
	assert.True(ok)
}

func TestPlonkSoundnessBitFlipRejects(t *testing.T) {
	assert := require.New(t)

	c := scenarioCircuit()
	domain, err := field.RootsOfUnity[field.BN254Scalar](uint64(c.N))
	assert.NoError(err)
	pre, err := preprocessor.Preprocess(c, domain)
	assert.NoError(err)

	scheme := trivial.New[field.BN254Scalar]()
	prover, err := NewPlonkProver[field.BN254Scalar, trivial.Commitment[field.BN254Scalar], trivial.Opening](scheme, c, pre, domain)
	assert.NoError(err)
	verifier := NewPlonkVerifier[field.BN254Scalar, trivial.Commitment[field.BN254Scalar], trivial.Opening](scheme, pre, domain, c.L)

	publicInputs := []field.BN254Scalar{field.NewBN254Scalar(10), field.NewBN254Scalar(20)}

	for i := range scenarioWitness() {
		witness := scenarioWitness()
		witness[i] = witness[i].Add(field.NewBN254Scalar(1))

		proof, err := prover.Prove(witness, publicInputs)
		if err != nil {
			// An honest-prover invariant violation (Z_S fails to divide
			// cleanly) is itself a rejection of the tampered witness.
			continue
		}
		ok, err := verifier.Verify(proof, publicInputs)
		assert.NoError(err)
		assert.False(ok, "flipping witness[%d] must make the proof fail", i)
	}
}

func TestPlonkSoundnessSwappedPublicInputsRejects(t *testing.T) {
	assert := require.New(t)

	c := scenarioCircuit()
	domain, err := field.RootsOfUnity[field.BN254Scalar](uint64(c.N))
	assert.NoError(err)
	pre, err := preprocessor.Preprocess(c, domain)
	assert.NoError(err)

	scheme := trivial.New[field.BN254Scalar]()
	prover, err := NewPlonkProver[field.BN254Scalar, trivial.Commitment[field.BN254Scalar], trivial.Opening](scheme, c, pre, domain)
	assert.NoError(err)
	verifier := NewPlonkVerifier[field.BN254Scalar, trivial.Commitment[field.BN254Scalar], trivial.Opening](scheme, pre, domain, c.L)

	witness := scenarioWitness()
	publicInputs := []field.BN254Scalar{field.NewBN254Scalar(10), field.NewBN254Scalar(20)}

	proof, err := prover.Prove(witness, publicInputs)
	assert.NoError(err)

	swapped := []field.BN254Scalar{publicInputs[1], publicInputs[0]}
	ok, err := verifier.Verify(proof, swapped)
	assert.NoError(err)
	assert.False(ok)
}
