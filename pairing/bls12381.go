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

package pairing

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381"
	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BLS12381Pairing implements Pairing over BLS12-381's G1, G2, GT.
type BLS12381Pairing struct{}

func (BLS12381Pairing) AddG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aJac, bJac, resJac bls12381.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	resJac.Set(&aJac).AddAssign(&bJac)
	var res bls12381.G1Affine
	res.FromJacobian(&resJac)
	return res
}

func (BLS12381Pairing) AddG2(a, b bls12381.G2Affine) bls12381.G2Affine {
	var aJac, bJac, resJac bls12381.G2Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	resJac.Set(&aJac).AddAssign(&bJac)
	var res bls12381.G2Affine
	res.FromJacobian(&resJac)
	return res
}

func (BLS12381Pairing) NegG1(p bls12381.G1Affine) bls12381.G1Affine {
	var z bls12381.G1Affine
	z.Neg(&p)
	return z
}

func (BLS12381Pairing) NegG2(p bls12381.G2Affine) bls12381.G2Affine {
	var z bls12381.G2Affine
	z.Neg(&p)
	return z
}

func (BLS12381Pairing) ScalarMulG1(p bls12381.G1Affine, s *big.Int) bls12381.G1Affine {
	var jac, resJac bls12381.G1Jac
	jac.FromAffine(&p)
	sMod := new(big.Int).Mod(s, bls12381fr.Modulus())
	resJac.ScalarMultiplication(&jac, sMod)
	var res bls12381.G1Affine
	res.FromJacobian(&resJac)
	return res
}

func (BLS12381Pairing) ScalarMulG2(p bls12381.G2Affine, s *big.Int) bls12381.G2Affine {
	var jac, resJac bls12381.G2Jac
	jac.FromAffine(&p)
	sMod := new(big.Int).Mod(s, bls12381fr.Modulus())
	resJac.ScalarMultiplication(&jac, sMod)
	var res bls12381.G2Affine
	res.FromJacobian(&resJac)
	return res
}

func (BLS12381Pairing) IdentityG1() bls12381.G1Affine {
	return BLS12381Pairing{}.ScalarMulG1(BLS12381Pairing{}.GeneratorG1(), big.NewInt(0))
}

func (BLS12381Pairing) GeneratorG1() bls12381.G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

func (BLS12381Pairing) GeneratorG2() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

func (BLS12381Pairing) Pair(p bls12381.G1Affine, q bls12381.G2Affine) bls12381.GT {
	res, err := bls12381.Pair([]bls12381.G1Affine{p}, []bls12381.G2Affine{q})
	if err != nil {
		panic(err)
	}
	return res
}

func (BLS12381Pairing) EqualGT(a, b bls12381.GT) bool {
	return a.Equal(&b)
}
