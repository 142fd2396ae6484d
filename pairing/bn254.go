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

	"github.com/consensys/gnark-crypto/ecc/bn254"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254Pairing implements Pairing over BN254's G1, G2, GT via gnark-crypto.
type BN254Pairing struct{}

func (BN254Pairing) AddG1(a, b bn254.G1Affine) bn254.G1Affine {
	var aJac, bJac, resJac bn254.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	resJac.Set(&aJac).AddAssign(&bJac)
	var res bn254.G1Affine
	res.FromJacobian(&resJac)
	return res
}

func (BN254Pairing) AddG2(a, b bn254.G2Affine) bn254.G2Affine {
	var aJac, bJac, resJac bn254.G2Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	resJac.Set(&aJac).AddAssign(&bJac)
	var res bn254.G2Affine
	res.FromJacobian(&resJac)
	return res
}

func (BN254Pairing) NegG1(p bn254.G1Affine) bn254.G1Affine {
	var z bn254.G1Affine
	z.Neg(&p)
	return z
}

func (BN254Pairing) NegG2(p bn254.G2Affine) bn254.G2Affine {
	var z bn254.G2Affine
	z.Neg(&p)
	return z
}

func (BN254Pairing) ScalarMulG1(p bn254.G1Affine, s *big.Int) bn254.G1Affine {
	var jac, resJac bn254.G1Jac
	jac.FromAffine(&p)
	sMod := new(big.Int).Mod(s, bn254fr.Modulus())
	resJac.ScalarMultiplication(&jac, sMod)
	var res bn254.G1Affine
	res.FromJacobian(&resJac)
	return res
}

func (BN254Pairing) ScalarMulG2(p bn254.G2Affine, s *big.Int) bn254.G2Affine {
	var jac, resJac bn254.G2Jac
	jac.FromAffine(&p)
	sMod := new(big.Int).Mod(s, bn254fr.Modulus())
	resJac.ScalarMultiplication(&jac, sMod)
	var res bn254.G2Affine
	res.FromJacobian(&resJac)
	return res
}

func (BN254Pairing) IdentityG1() bn254.G1Affine {
	return BN254Pairing{}.ScalarMulG1(BN254Pairing{}.GeneratorG1(), big.NewInt(0))
}

func (BN254Pairing) GeneratorG1() bn254.G1Affine {
	_, _, g1, _ := bn254.Generators()
	return g1
}

func (BN254Pairing) GeneratorG2() bn254.G2Affine {
	_, _, _, g2 := bn254.Generators()
	return g2
}

func (BN254Pairing) Pair(p bn254.G1Affine, q bn254.G2Affine) bn254.GT {
	res, err := bn254.Pair([]bn254.G1Affine{p}, []bn254.G2Affine{q})
	if err != nil {
		// A malformed (non-subgroup) point is a programmer error reaching
		// this layer; the PCS layer is responsible for only ever handing
		// us SRS-derived or commitment points.
		panic(err)
	}
	return res
}

func (BN254Pairing) EqualGT(a, b bn254.GT) bool {
	return a.Equal(&b)
}
