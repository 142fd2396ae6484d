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

package polynomial

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/nume-crypto/zkplonk/field"
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

// TestAdditiveIdentityProperty is section 8's ring law f + 0 == f.
func TestAdditiveIdentityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("f + 0 == f", prop.ForAll(
		func(coeffs []field.BN254Scalar) bool {
			f := New(coeffs)
			return f.Add(Zero(field.NewBN254Scalar(0))).Equal(f)
		},
		coeffsGen(6),
	))

	properties.Property("f - f == 0", prop.ForAll(
		func(coeffs []field.BN254Scalar) bool {
			f := New(coeffs)
			return f.Sub(f).Equal(Zero(field.NewBN254Scalar(0)))
		},
		coeffsGen(6),
	))

	properties.TestingRun(t)
}

// TestDivisionRemainderDegreeBoundProperty is section 8's Euclidean-division
// invariant: deg(remainder) < deg(divisor), dividing by a monic linear
// (X - root) divisor.
func TestDivisionRemainderDegreeBoundProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("deg(f mod (X-root)) < 1, and quo*(X-root)+rem == f", prop.ForAll(
		func(coeffs []field.BN254Scalar, rootVal int64) bool {
			f := New(coeffs)
			root := field.NewBN254Scalar(rootVal)
			divisor := New([]field.BN254Scalar{root.Neg(), field.NewBN254Scalar(1)})

			quo, rem, err := f.Div(divisor)
			if err != nil {
				return false
			}
			if rem.Degree() > 0 {
				return false
			}
			reconstructed := quo.Mul(divisor).Add(rem)
			return reconstructed.Equal(f)
		},
		coeffsGen(8),
		gen.Int64Range(-1000, 1000),
	))

	properties.TestingRun(t)
}

// TestInterpolationRoundTripProperty is section 8's interpolation round
// trip: interpolating a value vector over a roots-of-unity domain and
// re-evaluating at each domain point recovers the original values.
func TestInterpolationRoundTripProperty(t *testing.T) {
	domain, err := field.RootsOfUnity[field.BN254Scalar](8)
	if err != nil {
		t.Fatalf("building domain: %v", err)
	}

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("interpolate then evaluate on the domain recovers the values", prop.ForAll(
		func(values []field.BN254Scalar) bool {
			f, err := Interpolate(domain, values)
			if err != nil {
				return false
			}
			for i, x := range domain {
				if !f.Evaluate(x).Equal(values[i]) {
					return false
				}
			}
			return true
		},
		coeffsGen(len(domain)),
	))

	properties.TestingRun(t)
}
