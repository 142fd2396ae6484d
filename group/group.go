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

// Package group provides the abstract additive CyclicGroup collaborator
// spec.md section 2 requires for the Bulletproofs PCS: identity,
// generator, and scalar multiplication by an integer or field element.
// Concrete elements are realized over the G1 subgroup of the same curve
// (BN254 or BLS12-381) used for KZG, via gnark-crypto, rather than the
// original Python reference's toy integers-mod-order — spec.md section
// 4.9's Pedersen commitment is exactly an EC multi-scalar-multiplication.
package group

import "math/big"

// Element is implemented by a concrete group element type T (self
// referential generic constraint, mirroring field.Element[T]).
type Element[T any] interface {
	Add(other T) T
	Neg() T
	ScalarMul(scalar *big.Int) T
	Equal(other T) bool
	Bytes() []byte

	Identity() T
	Generator() T
}
