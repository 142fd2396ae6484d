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

// Package kzg implements the pairing-based KZG polynomial commitment
// scheme (spec.md section 4.8): a structured reference string of G1-powers
// of a toxic scalar s plus G2 at 1 and s; commitments are single G1
// points; openings use the quotient (f-s)/(X-z); verification is a single
// pairing equation, with an eta-power batched variant at a shared point.
// Grounded on original_source/zkps/polynomial_commitment_schemes/kzg.py
// and the teacher's internal/backend/bw6-761/plonk/setup.go SRS-building
// pattern, reimplemented against our own Transcript-driven batching
// instead of gnark-crypto's internal kzg package (whose Open/BatchOpen
// derive their own Fiat-Shamir challenge internally, which would bypass
// spec.md's requirement that eta come from the PLONK protocol's own
// transcript).
package kzg

import (
	"errors"

	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/polynomial"
)

// ErrInsecureSetupScalarIsZero guards against an obviously degenerate toxic
// waste value; a production setup would never accept caller-supplied
// randomness at all.
var ErrInsecureSetupScalarIsZero = errors.New("kzg: setup scalar must be non-zero")

// linearAtZ returns the degree-1 polynomial (X - z), the divisor used by
// the quotient construction in both Open and BatchOpenAtPoint.
func linearAtZ[T field.Element[T]](z T) polynomial.Polynomial[T] {
	one := z.One()
	return polynomial.New([]T{z.Neg(), one})
}
