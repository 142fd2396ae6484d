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

	"github.com/consensys/gnark-crypto/ecc/bls12-381"
	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BLS12381Group is a point of BLS12-381's G1 subgroup.
type BLS12381Group struct {
	point bls12381.G1Jac
}

func NewBLS12381Group(p bls12381.G1Affine) BLS12381Group {
	var g BLS12381Group
	g.point.FromAffine(&p)
	return g
}

func (g BLS12381Group) Add(other BLS12381Group) BLS12381Group {
	var z BLS12381Group
	z.point.Set(&g.point)
	z.point.AddAssign(&other.point)
	return z
}

func (g BLS12381Group) Neg() BLS12381Group {
	var z BLS12381Group
	z.point.Neg(&g.point)
	return z
}

func (g BLS12381Group) ScalarMul(scalar *big.Int) BLS12381Group {
	var z BLS12381Group
	s := new(big.Int).Mod(scalar, bls12381fr.Modulus())
	z.point.ScalarMultiplication(&g.point, s)
	return z
}

func (g BLS12381Group) Equal(other BLS12381Group) bool {
	return g.point.Equal(&other.point)
}

func (g BLS12381Group) Bytes() []byte {
	var aff bls12381.G1Affine
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

func (g BLS12381Group) Identity() BLS12381Group {
	return g.Generator().ScalarMul(big.NewInt(0))
}

func (g BLS12381Group) Generator() BLS12381Group {
	_, _, g1Gen, _ := bls12381.Generators()
	return NewBLS12381Group(g1Gen)
}

func (g BLS12381Group) Affine() bls12381.G1Affine {
	var aff bls12381.G1Affine
	aff.FromJacobian(&g.point)
	return aff
}

// MarshalBinary serializes g via gnark-crypto's compressed G1Affine
// encoding; see BN254Group.MarshalBinary.
func (g BLS12381Group) MarshalBinary() ([]byte, error) {
	aff := g.Affine()
	return aff.Marshal(), nil
}

// UnmarshalBinary reconstructs g from MarshalBinary's output.
func (g *BLS12381Group) UnmarshalBinary(data []byte) error {
	var aff bls12381.G1Affine
	if err := aff.Unmarshal(data); err != nil {
		return err
	}
	*g = NewBLS12381Group(aff)
	return nil
}
