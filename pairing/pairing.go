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

// Package pairing provides the bilinear-pairing collaborator KZG needs:
// G1, G2, GT, scalar multiplication in G1/G2, point addition, and the
// pairing e: G1 x G2 -> GT. Grounded on
// original_source/zkps/algebra/pairing.py's Pairing ABC.
package pairing

import "math/big"

// Pairing is implemented by a concrete curve's pairing engine. G1, G2, GT
// are the curve's concrete point/target types.
type Pairing[G1 any, G2 any, GT any] interface {
	AddG1(a, b G1) G1
	AddG2(a, b G2) G2
	NegG1(p G1) G1
	NegG2(p G2) G2
	ScalarMulG1(p G1, s *big.Int) G1
	ScalarMulG2(p G2, s *big.Int) G2
	IdentityG1() G1
	GeneratorG1() G1
	GeneratorG2() G2
	Pair(p G1, q G2) GT
	EqualGT(a, b GT) bool
}
