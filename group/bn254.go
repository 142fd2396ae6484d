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

package group

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254Group is a point of BN254's G1 subgroup, used as the Pedersen-style
// CyclicGroup for Bulletproofs.
type BN254Group struct {
	point bn254.G1Jac
}

// NewBN254Group wraps an affine G1 point.
func NewBN254Group(p bn254.G1Affine) BN254Group {
	var g BN254Group
	g.point.FromAffine(&p)
	return g
}

func (g BN254Group) Add(other BN254Group) BN254Group {
	var z BN254Group
	z.point.Set(&g.point)
	z.point.AddAssign(&other.point)
	return z
}

func (g BN254Group) Neg() BN254Group {
	var z BN254Group
	z.point.Neg(&g.point)
	return z
}

func (g BN254Group) ScalarMul(scalar *big.Int) BN254Group {
	var z BN254Group
	s := new(big.Int).Mod(scalar, bn254fr.Modulus())
	z.point.ScalarMultiplication(&g.point, s)
	return z
}

func (g BN254Group) Equal(other BN254Group) bool {
	return g.point.Equal(&other.point)
}

// Bytes returns X||Y of the affine representative, or the empty string for
// the group identity, per spec.md's Transcript encoding rule.
func (g BN254Group) Bytes() []byte {
	var aff bn254.G1Affine
	aff.FromJacobian(&g.point)
	if aff.X.IsZero() && aff.Y.IsZero() {
		return nil
	}
	xb := aff.X.Bytes()
	yb := aff.Y.Bytes()
	out := make([]byte, 0, len(xb)+len(yb))
	out = append(out, xb[:]...)
	out = append(out, yb[:]...)
	return out
}

func (g BN254Group) Identity() BN254Group {
	return g.Generator().ScalarMul(big.NewInt(0))
}

func (g BN254Group) Generator() BN254Group {
	_, _, g1Gen, _ := bn254.Generators()
	return NewBN254Group(g1Gen)
}

// Affine returns the affine G1 point backing this element, for use by
// pcs/kzg and pcs/bulletproofs when committing to SRS elements directly.
func (g BN254Group) Affine() bn254.G1Affine {
	var aff bn254.G1Affine
	aff.FromJacobian(&g.point)
	return aff
}

// MarshalBinary serializes g via gnark-crypto's compressed G1Affine
// encoding, for use when a commitment or opening is embedded in a
// cbor-encoded PlonkProof. This differs from Bytes, which follows
// spec.md's uncompressed transcript encoding rule.
func (g BN254Group) MarshalBinary() ([]byte, error) {
	aff := g.Affine()
	return aff.Marshal(), nil
}

// UnmarshalBinary reconstructs g from MarshalBinary's output.
func (g *BN254Group) UnmarshalBinary(data []byte) error {
	var aff bn254.G1Affine
	if err := aff.Unmarshal(data); err != nil {
		return err
	}
	*g = NewBN254Group(aff)
	return nil
}
