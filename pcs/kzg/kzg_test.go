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

package kzg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/group"
	"github.com/nume-crypto/zkplonk/polynomial"
)

func TestKZGRoundTrip(t *testing.T) {
	assert := require.New(t)

	srs, err := SetupBN254(8, field.NewBN254Scalar(12345))
	assert.NoError(err)
	scheme := NewBN254Scheme(srs)

	f := polynomial.New([]field.BN254Scalar{
		field.NewBN254Scalar(1), field.NewBN254Scalar(2), field.NewBN254Scalar(3),
	})
	c, err := scheme.Commit(f)
	assert.NoError(err)

	z := field.NewBN254Scalar(4)
	s := field.NewBN254Scalar(57)
	opening, err := scheme.Open(f, c, z, s)
	assert.NoError(err)

	ok, err := scheme.VerifyOpening(opening, c, z, s)
	assert.NoError(err)
	assert.True(ok)
}

// TestKZGRoundTripBLS12381 mirrors TestKZGRoundTrip over the second curve
// parameterization, which otherwise has no test ever instantiating it.
func TestKZGRoundTripBLS12381(t *testing.T) {
	assert := require.New(t)

	srs, err := SetupBLS12381(8, field.NewBLS12381Scalar(12345))
	assert.NoError(err)
	scheme := NewBLS12381Scheme(srs)

	f := polynomial.New([]field.BLS12381Scalar{
		field.NewBLS12381Scalar(1), field.NewBLS12381Scalar(2), field.NewBLS12381Scalar(3),
	})
	c, err := scheme.Commit(f)
	assert.NoError(err)

	z := field.NewBLS12381Scalar(4)
	s := field.NewBLS12381Scalar(57)
	opening, err := scheme.Open(f, c, z, s)
	assert.NoError(err)

	ok, err := scheme.VerifyOpening(opening, c, z, s)
	assert.NoError(err)
	assert.True(ok)
}

func TestKZGRejectsWrongValueOrPoint(t *testing.T) {
	assert := require.New(t)

	srs, err := SetupBN254(8, field.NewBN254Scalar(999))
	assert.NoError(err)
	scheme := NewBN254Scheme(srs)

	f := polynomial.New([]field.BN254Scalar{
		field.NewBN254Scalar(1), field.NewBN254Scalar(2), field.NewBN254Scalar(3),
	})
	c, err := scheme.Commit(f)
	assert.NoError(err)

	z := field.NewBN254Scalar(4)
	opening, err := scheme.Open(f, c, z, field.NewBN254Scalar(57))
	assert.NoError(err)

	ok, err := scheme.VerifyOpening(opening, c, z, field.NewBN254Scalar(59))
	assert.NoError(err)
	assert.False(ok)

	ok, err = scheme.VerifyOpening(opening, c, field.NewBN254Scalar(3), field.NewBN254Scalar(57))
	assert.NoError(err)
	assert.False(ok)
}

func TestKZGBatchOpenAtSharedPoint(t *testing.T) {
	assert := require.New(t)

	srs, err := SetupBN254(8, field.NewBN254Scalar(55))
	assert.NoError(err)
	scheme := NewBN254Scheme(srs)

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

	ok, err = scheme.VerifyBatchAtPoint(opening, []group.BN254Group{c1, c2}, z, []field.BN254Scalar{s1, s2.Add(field.NewBN254Scalar(1))}, eta)
	assert.NoError(err)
	assert.False(ok)
}
