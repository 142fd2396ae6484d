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

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// BN254SRS is the KZG structured reference string over BN254: G1-powers
// of a toxic scalar s up to degree d-1, plus [1]_2 and [s]_2 in G2.
type BN254SRS struct {
	Powers []group.BN254Group
	G2One  bn254.G2Affine
	G2S    bn254.G2Affine
}

// SetupBN254 builds a BN254SRS supporting polynomials of degree < d, from
// an insecurely-supplied toxic scalar s (spec.md section 6: "a production
// build must replace these with secure randomness and discard the KZG
// scalar after SRS construction" — this reference keeps s around via the
// caller, by design, for reproducibility and testing).
func SetupBN254(d int, s field.BN254Scalar) (*BN254SRS, error) {
	if s.IsZero() {
		return nil, ErrInsecureSetupScalarIsZero
	}
	var pr pairing.BN254Pairing
	gen := group.BN254Group{}.Generator()

	powers := make([]group.BN254Group, d)
	acc := s.One()
	for i := 0; i < d; i++ {
		powers[i] = gen.ScalarMul(acc.ToBigInt())
		acc = acc.Mul(s)
	}

	g2one := pr.GeneratorG2()
	g2s := pr.ScalarMulG2(g2one, s.ToBigInt())

	log.Logger.Debug().Int("degree_capacity", d).Msg("kzg/bn254: setup complete")
	return &BN254SRS{Powers: powers, G2One: g2one, G2S: g2s}, nil
}

// BN254Scheme is the KZG PCS parameterized by a BN254 SRS.
type BN254Scheme struct {
	srs     *BN254SRS
	pairing pairing.BN254Pairing
}

// NewBN254Scheme returns a KZG scheme backed by srs.
func NewBN254Scheme(srs *BN254SRS) *BN254Scheme {
	return &BN254Scheme{srs: srs}
}

var _ pcs.PCS[field.BN254Scalar, group.BN254Group, group.BN254Group] = (*BN254Scheme)(nil)

// Commit returns C = sum_i f.coeffs[i] * [s^i]_1. Fails if deg(f) exceeds
// the SRS's capacity.
func (k *BN254Scheme) Commit(f polynomial.Polynomial[field.BN254Scalar]) (group.BN254Group, error) {
	if len(f.Coeffs) > len(k.srs.Powers) {
		return group.BN254Group{}, pcs.ErrDegreeExceedsCapacity
	}
	acc := group.BN254Group{}.Identity()
	for i, c := range f.Coeffs {
		if c.IsZero() {
			continue
		}
		acc = acc.Add(k.srs.Powers[i].ScalarMul(c.ToBigInt()))
	}
	return acc, nil
}

// Open computes q = (f - s)/(X - z), rejecting a non-zero remainder, and
// returns [q(s)]_1 = Commit(q).
func (k *BN254Scheme) Open(f polynomial.Polynomial[field.BN254Scalar], commitment group.BN254Group, z field.BN254Scalar, s field.BN254Scalar) (group.BN254Group, error) {
	quo, rem, err := f.SubScalar(s).Div(linearAtZ(z))
	if err != nil {
		return group.BN254Group{}, err
	}
	if !rem.Equal(polynomial.Zero(z.Zero())) {
		return group.BN254Group{}, pcs.ErrNonZeroRemainder
	}
	return k.Commit(quo)
}

// VerifyOpening checks e(pi, [s]_2 - z*[1]_2) = e(C - s*[1]_1, [1]_2).
func (k *BN254Scheme) VerifyOpening(opening group.BN254Group, commitment group.BN254Group, z field.BN254Scalar, s field.BN254Scalar) (bool, error) {
	ok := k.verifySingle(opening, commitment, z, s)
	log.Logger.Debug().Bool("accepted", ok).Msg("kzg/bn254: verified opening")
	return ok, nil
}

func (k *BN254Scheme) verifySingle(opening, commitment group.BN254Group, z, s field.BN254Scalar) bool {
	lhsG2 := k.pairing.AddG2(k.srs.G2S, k.pairing.NegG2(k.pairing.ScalarMulG2(k.srs.G2One, z.ToBigInt())))
	rhsG1 := commitment.Add(group.BN254Group{}.Generator().ScalarMul(s.ToBigInt()).Neg())

	lhs := k.pairing.Pair(opening.Affine(), lhsG2)
	rhs := k.pairing.Pair(rhsG1.Affine(), k.srs.G2One)
	return k.pairing.EqualGT(lhs, rhs)
}

// BatchOpenAtPoint returns a single aggregated opening [(sum_i eta^i q_i)(s)]_1
// for a shared evaluation point z, one quotient q_i per (f_i, s_i) pair.
func (k *BN254Scheme) BatchOpenAtPoint(fs []polynomial.Polynomial[field.BN254Scalar], commitments []group.BN254Group, z field.BN254Scalar, ss []field.BN254Scalar, eta field.BN254Scalar) (group.BN254Group, error) {
	if len(fs) != len(commitments) || len(fs) != len(ss) {
		return group.BN254Group{}, pcs.ErrCommitmentCountMismatch
	}
	batched := polynomial.Zero(z.Zero())
	etaPow := z.One()
	for i, f := range fs {
		quo, rem, err := f.SubScalar(ss[i]).Div(linearAtZ(z))
		if err != nil {
			return group.BN254Group{}, err
		}
		if !rem.Equal(polynomial.Zero(z.Zero())) {
			return group.BN254Group{}, pcs.ErrNonZeroRemainder
		}
		batched = batched.Add(quo.MulScalar(etaPow))
		etaPow = etaPow.Mul(eta)
	}
	return k.Commit(batched)
}

// VerifyBatchAtPoint aggregates commitments and values by eta-powers and
// performs a single pairing check against the batched opening.
func (k *BN254Scheme) VerifyBatchAtPoint(opening group.BN254Group, commitments []group.BN254Group, z field.BN254Scalar, ss []field.BN254Scalar, eta field.BN254Scalar) (bool, error) {
	if len(commitments) != len(ss) {
		return false, pcs.ErrCommitmentCountMismatch
	}
	aggC := group.BN254Group{}.Identity()
	aggS := z.Zero()
	etaPow := z.One()
	for i, c := range commitments {
		aggC = aggC.Add(c.ScalarMul(etaPow.ToBigInt()))
		aggS = aggS.Add(ss[i].Mul(etaPow))
		etaPow = etaPow.Mul(eta)
	}
	ok := k.verifySingle(opening, aggC, z, aggS)
	log.Logger.Debug().Bool("accepted", ok).Msg("kzg/bn254: verified batch opening")
	return ok, nil
}
