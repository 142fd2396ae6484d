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

// Package preprocessor builds a PLONK circuit's preprocessed form: the
// selector, identity, and permutation polynomials interpolated over the
// evaluation domain H (spec.md section 4.3). Grounded on
// original_source/zkps/preprocessor.py's preprocess().
package preprocessor

import (
	"github.com/nume-crypto/zkplonk/constraints"
	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/internal/log"
	"github.com/nume-crypto/zkplonk/polynomial"
)

// PlonkPreprocessedInput holds the eleven degree-<n polynomials derived
// from a constraint system and an evaluation domain H: five selectors,
// three identity polynomials, three permutation polynomials.
type PlonkPreprocessedInput[T field.Element[T]] struct {
	QL, QR, QO, QM, QC polynomial.Polynomial[T]
	SID1, SID2, SID3   polynomial.Polynomial[T]
	SSigma1            polynomial.Polynomial[T]
	SSigma2            polynomial.Polynomial[T]
	SSigma3            polynomial.Polynomial[T]

	Permutation []int
	Domain      []T
}

// Preprocess derives the PlonkPreprocessedInput for c over domain H, where
// H is ordered (g^0, ..., g^{n-1}) for some generator g of the size-n
// multiplicative subgroup. It is deterministic given (c, H).
func Preprocess[T field.Element[T]](c *constraints.PlonkConstraints[T], domain []T) (*PlonkPreprocessedInput[T], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n := c.N
	sigma := c.GetPermutation()

	var zero T
	one := zero.One()

	idVecs := [3][]T{make([]T, n), make([]T, n), make([]T, n)}
	permVecs := [3][]T{make([]T, n), make([]T, n), make([]T, n)}
	for j := 0; j < 3; j++ {
		for i := 0; i < n; i++ {
			idVal := int64(j*n + i + 1)
			idVecs[j][i] = field.NewFromInt64(one, idVal)
			permVal := int64(sigma[j*n+i] + 1)
			permVecs[j][i] = field.NewFromInt64(one, permVal)
		}
	}

	sid := make([]polynomial.Polynomial[T], 3)
	ssigma := make([]polynomial.Polynomial[T], 3)
	for j := 0; j < 3; j++ {
		p, err := polynomial.Interpolate(domain, idVecs[j])
		if err != nil {
			return nil, err
		}
		sid[j] = p

		p, err = polynomial.Interpolate(domain, permVecs[j])
		if err != nil {
			return nil, err
		}
		ssigma[j] = p
	}

	selVecs := map[string][]T{
		"qL": c.QL, "qR": c.QR, "qO": c.QO, "qM": c.QM, "qC": c.QC,
	}
	selPolys := make(map[string]polynomial.Polynomial[T], 5)
	for name, vec := range selVecs {
		p, err := polynomial.Interpolate(domain, vec)
		if err != nil {
			return nil, err
		}
		selPolys[name] = p
	}

	log.Logger.Debug().
		Int("n", n).
		Int("m", c.M).
		Int("l", c.L).
		Msg("preprocessor: derived preprocessed input")

	return &PlonkPreprocessedInput[T]{
		QL: selPolys["qL"], QR: selPolys["qR"], QO: selPolys["qO"], QM: selPolys["qM"], QC: selPolys["qC"],
		SID1: sid[0], SID2: sid[1], SID3: sid[2],
		SSigma1: ssigma[0], SSigma2: ssigma[1], SSigma3: ssigma[2],
		Permutation: sigma,
		Domain:      domain,
	}, nil
}
