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

package bulletproofs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/group"
	"github.com/nume-crypto/zkplonk/polynomial"
)

func TestBulletproofsRoundTripAcrossPowersOfTwo(t *testing.T) {
	for _, d := range []int{2, 4, 8, 16} {
		d := d
		t.Run("", func(t *testing.T) {
			assert := require.New(t)

			crs := SetupBN254(d + 1)
			scheme := NewBN254(crs)

			coeffs := make([]field.BN254Scalar, d)
			for i := range coeffs {
				coeffs[i] = field.NewBN254Scalar(int64(i + 1))
			}
			f := polynomial.New(coeffs)

			c, err := scheme.Commit(f)
			assert.NoError(err)

			z := field.NewBN254Scalar(4)
			s := f.Evaluate(z)
			opening, err := scheme.Open(f, c, z, s)
			assert.NoError(err)

			ok, err := scheme.VerifyOpening(opening, c, z, s)
			assert.NoError(err)
			assert.True(ok, "round trip must verify for d=%d", d)
		})
	}
}

// TestBulletproofsRoundTripBLS12381 exercises the BLS12-381 parameterization
// across the same powers of two as TestBulletproofsRoundTripAcrossPowersOfTwo;
// d>=4 is the case the s_vec bit-ordering fix above must get right, since
// both curve instantiations share the same verifySingle logic.
func TestBulletproofsRoundTripBLS12381(t *testing.T) {
	for _, d := range []int{2, 4, 8, 16} {
		d := d
		t.Run("", func(t *testing.T) {
			assert := require.New(t)

			crs := SetupBLS12381(d + 1)
			scheme := NewBLS12381(crs)

			coeffs := make([]field.BLS12381Scalar, d)
			for i := range coeffs {
				coeffs[i] = field.NewBLS12381Scalar(int64(i + 1))
			}
			f := polynomial.New(coeffs)

			c, err := scheme.Commit(f)
			assert.NoError(err)

			z := field.NewBLS12381Scalar(4)
			s := f.Evaluate(z)
			opening, err := scheme.Open(f, c, z, s)
			assert.NoError(err)

			ok, err := scheme.VerifyOpening(opening, c, z, s)
			assert.NoError(err)
			assert.True(ok, "round trip must verify for d=%d", d)
		})
	}
}

func TestBulletproofsRejectsWrongValueOrPoint(t *testing.T) {
	assert := require.New(t)

	crs := SetupBN254(5)
	scheme := NewBN254(crs)

	f := polynomial.New([]field.BN254Scalar{
		field.NewBN254Scalar(1), field.NewBN254Scalar(2), field.NewBN254Scalar(3),
	})
	c, err := scheme.Commit(f)
	assert.NoError(err)

	z := field.NewBN254Scalar(4)
	s := field.NewBN254Scalar(57)
	opening, err := scheme.Open(f, c, z, s)
	assert.NoError(err)

	ok, err := scheme.VerifyOpening(opening, c, z, field.NewBN254Scalar(59))
	assert.NoError(err)
	assert.False(ok)

	ok, err = scheme.VerifyOpening(opening, c, field.NewBN254Scalar(3), s)
	assert.NoError(err)
	assert.False(ok)
}

func TestBulletproofsBatchOpenAtPoint(t *testing.T) {
	assert := require.New(t)

	crs := SetupBN254(5)
	scheme := NewBN254(crs)

	f1 := polynomial.New([]field.BN254Scalar{field.NewBN254Scalar(1), field.NewBN254Scalar(2)})
	f2 := polynomial.New([]field.BN254Scalar{field.NewBN254Scalar(5), field.NewBN254Scalar(0), field.NewBN254Scalar(1)})

	c1, err := scheme.Commit(f1)
	assert.NoError(err)
	c2, err := scheme.Commit(f2)
	assert.NoError(err)

	z := field.NewBN254Scalar(7)
	s1 := f1.Evaluate(z)
	s2 := f2.Evaluate(z)
	eta := field.NewBN254Scalar(3)

	opening, err := scheme.BatchOpenAtPoint(
		[]polynomial.Polynomial[field.BN254Scalar]{f1, f2},
		[]group.BN254Group{c1, c2},
		z,
		[]field.BN254Scalar{s1, s2},
		eta,
	)
	assert.NoError(err)

	ok, err := scheme.VerifyBatchAtPoint(opening, []group.BN254Group{c1, c2}, z, []field.BN254Scalar{s1, s2}, eta)
	assert.NoError(err)
	assert.True(ok)
}
