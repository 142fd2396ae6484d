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

package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/zkplonk/constraints"
	"github.com/nume-crypto/zkplonk/field"
)

func sc(vs ...int64) []field.BN254Scalar {
	out := make([]field.BN254Scalar, len(vs))
	for i, v := range vs {
		out[i] = field.NewBN254Scalar(v)
	}
	return out
}

func TestPreprocessInterpolatesSelectorsOnDomain(t *testing.T) {
	assert := require.New(t)

	c := &constraints.PlonkConstraints[field.BN254Scalar]{
		L: 2, M: 9, N: 4,
		A: []int{1, 3, 5, 8}, B: []int{2, 4, 6, 7}, C: []int{5, 7, 8, 9},
		QL: sc(1, 1, 1, 0), QR: sc(0, 0, 1, 0), QO: sc(0, 0, -1, -1), QM: sc(0, 0, 0, 1), QC: sc(0, 0, 0, 0),
	}
	assert.True(c.IsValid())

	domain, err := field.RootsOfUnity[field.BN254Scalar](4)
	assert.NoError(err)

	pre, err := Preprocess(c, domain)
	assert.NoError(err)

	for i, x := range domain {
		assert.True(pre.QL.Evaluate(x).Equal(c.QL[i]))
		assert.True(pre.QR.Evaluate(x).Equal(c.QR[i]))
		assert.True(pre.QO.Evaluate(x).Equal(c.QO[i]))
		assert.True(pre.QM.Evaluate(x).Equal(c.QM[i]))
		assert.True(pre.QC.Evaluate(x).Equal(c.QC[i]))
	}

	sigma := c.GetPermutation()
	n := c.N
	idPolys := []func(field.BN254Scalar) field.BN254Scalar{pre.SID1.Evaluate, pre.SID2.Evaluate, pre.SID3.Evaluate}
	permPolys := []func(field.BN254Scalar) field.BN254Scalar{pre.SSigma1.Evaluate, pre.SSigma2.Evaluate, pre.SSigma3.Evaluate}
	for j := 0; j < 3; j++ {
		for i, x := range domain {
			assert.True(idPolys[j](x).Equal(field.NewBN254Scalar(int64(j*n + i + 1))))
			assert.True(permPolys[j](x).Equal(field.NewBN254Scalar(int64(sigma[j*n+i] + 1))))
		}
	}
}
