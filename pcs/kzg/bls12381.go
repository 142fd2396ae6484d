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

package kzg

import (
	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/group"
	"github.com/nume-crypto/zkplonk/internal/log"
	"github.com/nume-crypto/zkplonk/pairing"
	"github.com/nume-crypto/zkplonk/pcs"
	"github.com/nume-crypto/zkplonk/polynomial"

	"github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BLS12381SRS mirrors BN254SRS for the BLS12-381 curve.
type BLS12381SRS struct {
	Powers []group.BLS12381Group
	G2One  bls12381.G2Affine
	G2S    bls12381.G2Affine
}

// SetupBLS12381 builds a BLS12381SRS supporting polynomials of degree < d.
func SetupBLS12381(d int, s field.BLS12381Scalar) (*BLS12381SRS, error) {
	if s.IsZero() {
		return nil, ErrInsecureSetupScalarIsZero
	}
	var pr pairing.BLS12381Pairing
	gen := group.BLS12381Group{}.Generator()

	powers := make([]group.BLS12381Group, d)
	acc := s.One()
	for i := 0; i < d; i++ {
		powers[i] = gen.ScalarMul(acc.ToBigInt())
		acc = acc.Mul(s)
	}

	g2one := pr.GeneratorG2()
	g2s := pr.ScalarMulG2(g2one, s.ToBigInt())

	log.Logger.Debug().Int("degree_capacity", d).Msg("kzg/bls12381: setup complete")
	return &BLS12381SRS{Powers: powers, G2One: g2one, G2S: g2s}, nil
}

// BLS12381Scheme is the KZG PCS parameterized by a BLS12-381 SRS.
type BLS12381Scheme struct {
	srs     *BLS12381SRS
	pairing pairing.BLS12381Pairing
}

// NewBLS12381Scheme returns a KZG scheme backed by srs.
func NewBLS12381Scheme(srs *BLS12381SRS) *BLS12381Scheme {
	return &BLS12381Scheme{srs: srs}
}

var _ pcs.PCS[field.BLS12381Scalar, group.BLS12381Group, group.BLS12381Group] = (*BLS12381Scheme)(nil)

func (k *BLS12381Scheme) Commit(f polynomial.Polynomial[field.BLS12381Scalar]) (group.BLS12381Group, error) {
	if len(f.Coeffs) > len(k.srs.Powers) {
		return group.BLS12381Group{}, pcs.ErrDegreeExceedsCapacity
	}
	acc := group.BLS12381Group{}.Identity()
	for i, c := range f.Coeffs {
		if c.IsZero() {
			continue
		}
		acc = acc.Add(k.srs.Powers[i].ScalarMul(c.ToBigInt()))
	}
	return acc, nil
}

func (k *BLS12381Scheme) Open(f polynomial.Polynomial[field.BLS12381Scalar], commitment group.BLS12381Group, z field.BLS12381Scalar, s field.BLS12381Scalar) (group.BLS12381Group, error) {
	quo, rem, err := f.SubScalar(s).Div(linearAtZ(z))
	if err != nil {
		return group.BLS12381Group{}, err
	}
	if !rem.Equal(polynomial.Zero(z.Zero())) {
		return group.BLS12381Group{}, pcs.ErrNonZeroRemainder
	}
	return k.Commit(quo)
}

func (k *BLS12381Scheme) VerifyOpening(opening group.BLS12381Group, commitment group.BLS12381Group, z field.BLS12381Scalar, s field.BLS12381Scalar) (bool, error) {
	ok := k.verifySingle(opening, commitment, z, s)
	log.Logger.Debug().Bool("accepted", ok).Msg("kzg/bls12381: verified opening")
	return ok, nil
}

func (k *BLS12381Scheme) verifySingle(opening, commitment group.BLS12381Group, z, s field.BLS12381Scalar) bool {
	lhsG2 := k.pairing.AddG2(k.srs.G2S, k.pairing.NegG2(k.pairing.ScalarMulG2(k.srs.G2One, z.ToBigInt())))
	rhsG1 := commitment.Add(group.BLS12381Group{}.Generator().ScalarMul(s.ToBigInt()).Neg())

	lhs := k.pairing.Pair(opening.Affine(), lhsG2)
	rhs := k.pairing.Pair(rhsG1.Affine(), k.srs.G2One)
	return k.pairing.EqualGT(lhs, rhs)
}

func (k *BLS12381Scheme) BatchOpenAtPoint(fs []polynomial.Polynomial[field.BLS12381Scalar], commitments []group.BLS12381Group, z field.BLS12381Scalar, ss []field.BLS12381Scalar, eta field.BLS12381Scalar) (group.BLS12381Group, error) {
	if len(fs) != len(commitments) || len(fs) != len(ss) {
		return group.BLS12381Group{}, pcs.ErrCommitmentCountMismatch
	}
	batched := polynomial.Zero(z.Zero())
	etaPow := z.One()
	for i, f := range fs {
		quo, rem, err := f.SubScalar(ss[i]).Div(linearAtZ(z))
		if err != nil {
			return group.BLS12381Group{}, err
		}
		if !rem.Equal(polynomial.Zero(z.Zero())) {
			return group.BLS12381Group{}, pcs.ErrNonZeroRemainder
		}
		batched = batched.Add(quo.MulScalar(etaPow))
		etaPow = etaPow.Mul(eta)
	}
	return k.Commit(batched)
}

func (k *BLS12381Scheme) VerifyBatchAtPoint(opening group.BLS12381Group, commitments []group.BLS12381Group, z field.BLS12381Scalar, ss []field.BLS12381Scalar, eta field.BLS12381Scalar) (bool, error) {
	if len(commitments) != len(ss) {
		return false, pcs.ErrCommitmentCountMismatch
	}
	aggC := group.BLS12381Group{}.Identity()
	aggS := z.Zero()
	etaPow := z.One()
	for i, c := range commitments {
		aggC = aggC.Add(c.ScalarMul(etaPow.ToBigInt()))
		aggS = aggS.Add(ss[i].Mul(etaPow))
		etaPow = etaPow.Mul(eta)
	}
	ok := k.verifySingle(opening, aggC, z, aggS)
	log.Logger.Debug().Bool("accepted", ok).Msg("kzg/bls12381: verified batch opening")
	return ok, nil
}
