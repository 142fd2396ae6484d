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

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/polynomial"
)

func coeffsGen(n int) gopter.Gen {
	return gen.SliceOfN(n, gen.Int64Range(-1000, 1000)).Map(func(vs []int64) []field.BN254Scalar {
		out := make([]field.BN254Scalar, len(vs))
		for i, v := range vs {
			out[i] = field.NewBN254Scalar(v)
		}
		return out
	})
}

// TestBulletproofsRoundTripProperty is section 8's PCS round-trip property
// for the discrete-log-based backend, fixed to power-of-two vector lengths
// as the recursive folding requires.
func TestBulletproofsRoundTripProperty(t *testing.T) {
	crs := SetupBN254(5)
	scheme := NewBN254(crs)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("commit/open/verify round-trips for length-4 polynomials", prop.ForAll(
		func(coeffs []field.BN254Scalar, zVal int64) bool {
			f := polynomial.New(coeffs)
			c, err := scheme.Commit(f)
			if err != nil {
				return false
			}
			z := field.NewBN254Scalar(zVal)
			s := f.Evaluate(z)
			opening, err := scheme.Open(f, c, z, s)
			if err != nil {
				return false
			}
			ok, err := scheme.VerifyOpening(opening, c, z, s)
			return err == nil && ok
		},
		coeffsGen(4),
		gen.Int64Range(-1000, 1000),
	))

	properties.Property("a forged evaluation is rejected", prop.ForAll(
		func(coeffs []field.BN254Scalar, zVal int64) bool {
			f := polynomial.New(coeffs)
			c, err := scheme.Commit(f)
			if err != nil {
				return false
			}
			z := field.NewBN254Scalar(zVal)
			s := f.Evaluate(z)
			opening, err := scheme.Open(f, c, z, s)
			if err != nil {
				return false
			}
			ok, err := scheme.VerifyOpening(opening, c, z, s.Add(field.NewBN254Scalar(1)))
			return err == nil && !ok
		},
		coeffsGen(4),
		gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}
