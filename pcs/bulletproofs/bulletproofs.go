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

// Package bulletproofs implements the inner-product-argument (IPA)
// polynomial commitment scheme: a Pedersen-style vector commitment opened
// by a recursive halving argument with a Schnorr-style finalization
// round. Grounded on
// original_source/zkps/polynomial_commitment_schemes/bulletproofs.py,
// generalized over any field.Element/group.Element pair so the same code
// serves both BN254 and BLS12-381 (see pcs/bulletproofs/bn254.go,
// bls12381.go for the concrete instantiations).
//
// Two latent bugs in the Python reference are corrected here:
//   - verify_opening's s_vec accumulator is built but the per-index
//     product is never appended, leaving it permanently empty; this
//     implementation appends each prod as it is computed.
//   - verify_opening's final check uses P' directly instead of the folded
//     aggregate Q = P' + sum_j(u_j^2*L_j + u_j^-2*R_j) that the recursive
//     argument's soundness requires; this implementation folds L_j/R_j
//     into Q before the final check.
//
// The verifier's s_vec reconstruction must mirror the prover's round
// order exactly: each round splits the current vector into contiguous
// halves (see splitT and the folds in Open), so round 0 distinguishes
// the most significant bit of the original d-element index, not the
// least significant one. s_vec is built bit-(k-1-j)-first accordingly.
package bulletproofs

import (
	"errors"
	"math/big"

	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/group"
	"github.com/nume-crypto/zkplonk/internal/log"
	"github.com/nume-crypto/zkplonk/pcs"
	"github.com/nume-crypto/zkplonk/polynomial"
	"github.com/nume-crypto/zkplonk/transcript"
)

// ErrOddLengthVector guards the recursive split, which requires an even
// (power-of-two) vector length at every round.
var ErrOddLengthVector = errors.New("bulletproofs: vector length must be even to split")

// ErrLengthMismatch guards multi-scalar-multiplication and dot-product
// helpers that require equal-length operands.
var ErrLengthMismatch = errors.New("bulletproofs: operand vectors must have equal length")

// fixedBlindingScalar is the reference implementation's hard-coded
// Pedersen blinding factor, reused across commitments for reproducibility
// (spec.md section 6: a documented non-goal; a production build must draw
// this from secure randomness per commitment).
const fixedBlindingScalar = 1234

// CRS is the Bulletproofs common reference string: a length-d vector of
// group generators plus one blinding generator H.
type CRS[T field.Element[T], G group.Element[G]] struct {
	G []G
	H G
}

// Setup deterministically derives a CRS supporting vectors of length up to
// d (spec.md section 6: insecure, deterministic generator derivation,
// documented non-goal). d need not be a power of two; callers slice
// CRS.G down to the padded capacity they need per polynomial.
func Setup[T field.Element[T], G group.Element[G]](d int) CRS[T, G] {
	var zeroG G
	gen := zeroG.Generator()
	gs := make([]G, d)
	for i := 0; i < d; i++ {
		gs[i] = gen.ScalarMul(big.NewInt(int64(i)))
	}
	h := gen.ScalarMul(big.NewInt(int64(d)))
	log.Logger.Debug().Int("capacity", d).Msg("bulletproofs: crs setup complete")
	return CRS[T, G]{G: gs, H: h}
}

// roundProof is a single IPA argument: one (L, R) pair per halving round,
// a final Schnorr commitment R, and the two finalization scalars z1, z2.
type roundProof[T field.Element[T], G group.Element[G]] struct {
	L, R []G
	RFin G
	Z1   T
	Z2   T
}

// Opening wraps either a single IPA proof (Open's result) or a list of
// independent per-polynomial proofs (BatchOpenAtPoint's result, per
// spec.md section 4.9's "minimal viable batch contract": a batched opening
// is a list of individual IPA proofs, not a single aggregated argument).
// Exactly one of Single or Batch is set; VerifyOpening/VerifyBatchAtPoint
// reject an Opening of the wrong shape as a PCS type mismatch.
type Opening[T field.Element[T], G group.Element[G]] struct {
	Single *roundProof[T, G]
	Batch  []roundProof[T, G]
}

// ErrOpeningShapeMismatch is returned when VerifyOpening is given a batch
// Opening, or VerifyBatchAtPoint is given a single Opening.
var ErrOpeningShapeMismatch = errors.New("bulletproofs: opening has the wrong shape for this operation")

// Scheme is the Bulletproofs PCS over a CRS, a fixed blinding scalar, and
// the field/group pair (T, G).
type Scheme[T field.Element[T], G group.Element[G]] struct {
	crs CRS[T, G]
	r   T
}

// New returns a Bulletproofs scheme backed by crs, using the reference's
// fixed blinding scalar.
func New[T field.Element[T], G group.Element[G]](crs CRS[T, G]) *Scheme[T, G] {
	var zero T
	return &Scheme[T, G]{crs: crs, r: field.NewFromInt64(zero, fixedBlindingScalar)}
}

var _ pcs.PCS[field.BN254Scalar, group.BN254Group, Opening[field.BN254Scalar, group.BN254Group]] = (*Scheme[field.BN254Scalar, group.BN254Group])(nil)

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func log2(n int) int {
	k := 0
	for n > 1 {
		n /= 2
		k++
	}
	return k
}

func padCoeffs[T field.Element[T]](coeffs []T, d int) []T {
	var zero T
	out := make([]T, d)
	copy(out, coeffs)
	for i := len(coeffs); i < d; i++ {
		out[i] = zero
	}
	return out
}

func powersOf[T field.Element[T]](base T, count int) []T {
	out := make([]T, count)
	acc := base.One()
	for i := 0; i < count; i++ {
		out[i] = acc
		acc = acc.Mul(base)
	}
	return out
}

func msm[T field.Element[T], G group.Element[G]](scalars []T, points []G) (G, error) {
	var zeroG G
	if len(scalars) != len(points) {
		return zeroG, ErrLengthMismatch
	}
	acc := zeroG.Identity()
	for i, s := range scalars {
		acc = acc.Add(points[i].ScalarMul(s.ToBigInt()))
	}
	return acc, nil
}

func dot[T field.Element[T]](a, b []T) (T, error) {
	var zero T
	if len(a) != len(b) {
		return zero, ErrLengthMismatch
	}
	res := zero.Zero()
	for i := range a {
		res = res.Add(a[i].Mul(b[i]))
	}
	return res, nil
}

func splitT[T any](vec []T) (lo, hi []T, err error) {
	if len(vec)%2 != 0 {
		var zero []T
		return zero, zero, ErrOddLengthVector
	}
	half := len(vec) / 2
	return vec[:half], vec[half:], nil
}

func scaleVecT[T field.Element[T]](vec []T, s T) []T {
	out := make([]T, len(vec))
	for i, v := range vec {
		out[i] = v.Mul(s)
	}
	return out
}

func scaleVecG[T field.Element[T], G group.Element[G]](vec []G, s T) []G {
	out := make([]G, len(vec))
	for i, v := range vec {
		out[i] = v.ScalarMul(s.ToBigInt())
	}
	return out
}

func addVecT[T field.Element[T]](a, b []T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

func addVecG[G group.Element[G]](a, b []G) []G {
	out := make([]G, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}
	return out
}

// Commit pads f's coefficients to the next power of two and returns the
// Pedersen commitment C = sum a_i*G[i] + r*H.
func (s *Scheme[T, G]) Commit(f polynomial.Polynomial[T]) (G, error) {
	var zeroG G
	d := nextPow2(len(f.Coeffs))
	if d > len(s.crs.G) {
		return zeroG, pcs.ErrDegreeExceedsCapacity
	}
	a := padCoeffs(f.Coeffs, d)
	acc, err := msm(a, s.crs.G[:d])
	if err != nil {
		return zeroG, err
	}
	return acc.Add(s.crs.H.ScalarMul(s.r.ToBigInt())), nil
}

// Open runs the recursive IPA against a fresh transcript seeded with
// (commitment, z, s), returning the round-by-round (L, R) pairs and the
// Schnorr finalization.
func (s *Scheme[T, G]) Open(f polynomial.Polynomial[T], commitment G, z T, claimed T) (Opening[T, G], error) {
	var zero Opening[T, G]
	var zeroG G

	d := nextPow2(len(f.Coeffs))
	if d > len(s.crs.G) {
		return zero, pcs.ErrDegreeExceedsCapacity
	}
	k := log2(d)

	tr := transcript.New[T]()
	tr.Append(commitment)
	tr.Append(z)
	tr.Append(claimed)
	uSeed := tr.Challenge()
	u := zeroG.Generator().ScalarMul(uSeed.ToBigInt())

	a := padCoeffs(f.Coeffs, d)
	b := powersOf(z, d)
	g := append([]G(nil), s.crs.G[:d]...)
	rPrime := s.r

	ls := make([]G, 0, k)
	rs := make([]G, 0, k)
	for round := 0; round < k; round++ {
		aLo, aHi, err := splitT(a)
		if err != nil {
			return zero, err
		}
		bLo, bHi, err := splitT(b)
		if err != nil {
			return zero, err
		}
		gLo, gHi, err := splitT(g)
		if err != nil {
			return zero, err
		}

		lj := tr.Challenge(0x00)
		rj := tr.Challenge(0x00, 0x00)

		msmLo, err := msm(aLo, gHi)
		if err != nil {
			return zero, err
		}
		dotLoHi, err := dot(aLo, bHi)
		if err != nil {
			return zero, err
		}
		lPoint := msmLo.Add(s.crs.H.ScalarMul(lj.ToBigInt())).Add(u.ScalarMul(dotLoHi.ToBigInt()))

		msmHi, err := msm(aHi, gLo)
		if err != nil {
			return zero, err
		}
		dotHiLo, err := dot(aHi, bLo)
		if err != nil {
			return zero, err
		}
		rPoint := msmHi.Add(s.crs.H.ScalarMul(rj.ToBigInt())).Add(u.ScalarMul(dotHiLo.ToBigInt()))

		ls = append(ls, lPoint)
		rs = append(rs, rPoint)
		tr.Append(lPoint)
		tr.Append(rPoint)

		uj := tr.Challenge()
		ujInv, err := uj.Inverse()
		if err != nil {
			return zero, err
		}

		a = addVecT(scaleVecT(aHi, ujInv), scaleVecT(aLo, uj))
		b = addVecT(scaleVecT(bLo, ujInv), scaleVecT(bHi, uj))
		g = addVecG(scaleVecG(gLo, ujInv), scaleVecG(gHi, uj))
		rPrime = rPrime.Add(lj.Mul(uj).Mul(uj)).Add(rj.Mul(ujInv).Mul(ujInv))
	}

	r1 := tr.Challenge(0x00)
	r2 := tr.Challenge(0x00, 0x00)
	finalPoint := g[0].Add(u.ScalarMul(b[0].ToBigInt())).ScalarMul(r1.ToBigInt()).Add(s.crs.H.ScalarMul(r2.ToBigInt()))
	tr.Append(finalPoint)

	c := tr.Challenge()
	z1 := a[0].Mul(c).Add(r1)
	z2 := rPrime.Mul(c).Add(r2)

	proof := roundProof[T, G]{L: ls, R: rs, RFin: finalPoint, Z1: z1, Z2: z2}
	return Opening[T, G]{Single: &proof}, nil
}

// VerifyOpening rebuilds the transcript from the public proof data,
// re-derives every round challenge, folds L/R into the aggregate Q, and
// checks the Schnorr finalization equation.
func (s *Scheme[T, G]) VerifyOpening(opening Opening[T, G], commitment G, z T, claimed T) (bool, error) {
	if opening.Single == nil {
		return false, ErrOpeningShapeMismatch
	}
	ok, err := s.verifySingle(*opening.Single, commitment, z, claimed)
	if err != nil {
		return false, err
	}
	log.Logger.Debug().Bool("accepted", ok).Msg("bulletproofs: verified opening")
	return ok, nil
}

func (s *Scheme[T, G]) verifySingle(opening roundProof[T, G], commitment G, z T, claimed T) (bool, error) {
	var zeroG G
	k := len(opening.L)
	d := 1 << uint(k)
	if d > len(s.crs.G) {
		return false, pcs.ErrDegreeExceedsCapacity
	}

	tr := transcript.New[T]()
	tr.Append(commitment)
	tr.Append(z)
	tr.Append(claimed)
	uSeed := tr.Challenge()
	u := zeroG.Generator().ScalarMul(uSeed.ToBigInt())
	pPrime := commitment.Add(u.ScalarMul(claimed.ToBigInt()))

	us := make([]T, k)
	usInv := make([]T, k)
	for j := 0; j < k; j++ {
		tr.Append(opening.L[j])
		tr.Append(opening.R[j])
		uj := tr.Challenge()
		ujInv, err := uj.Inverse()
		if err != nil {
			return false, err
		}
		us[j] = uj
		usInv[j] = ujInv
	}
	tr.Append(opening.RFin)

	q := pPrime
	for j := 0; j < k; j++ {
		q = q.Add(opening.L[j].ScalarMul(us[j].Mul(us[j]).ToBigInt())).
			Add(opening.R[j].ScalarMul(usInv[j].Mul(usInv[j]).ToBigInt()))
	}

	gVec := s.crs.G[:d]
	bVec := powersOf(z, d)

	var one T
	one = one.One()
	sVec := make([]T, d)
	for i := 0; i < d; i++ {
		prod := one
		for j := 0; j < k; j++ {
			// Round j splits the current vector in contiguous halves, so it
			// corresponds to bit (k-1-j) of i, not bit j: the first round
			// distinguishes the coarsest (most significant) half.
			bit := (i >> uint(k-1-j)) & 1
			if bit == 0 {
				prod = prod.Mul(usInv[j])
			} else {
				prod = prod.Mul(us[j])
			}
		}
		sVec[i] = prod
	}

	g, err := msm(sVec, gVec)
	if err != nil {
		return false, err
	}
	b, err := dot(sVec, bVec)
	if err != nil {
		return false, err
	}

	c := tr.Challenge()

	lhs := q.ScalarMul(c.ToBigInt()).Add(opening.RFin)
	rhs := g.Add(u.ScalarMul(b.ToBigInt())).ScalarMul(opening.Z1.ToBigInt()).Add(s.crs.H.ScalarMul(opening.Z2.ToBigInt()))
	return lhs.Equal(rhs), nil
}

// BatchOpenAtPoint returns one independent IPA proof per polynomial, per
// spec.md section 4.9's "minimal viable batch contract". eta is accepted
// for interface symmetry with KZG but unused: each proof is independently
// sound and aggregation across commitments is not performed.
func (s *Scheme[T, G]) BatchOpenAtPoint(fs []polynomial.Polynomial[T], commitments []G, z T, ss []T, eta T) (Opening[T, G], error) {
	if len(fs) != len(commitments) || len(fs) != len(ss) {
		return Opening[T, G]{}, pcs.ErrCommitmentCountMismatch
	}
	out := make([]roundProof[T, G], len(fs))
	for i, f := range fs {
		op, err := s.Open(f, commitments[i], z, ss[i])
		if err != nil {
			return Opening[T, G]{}, err
		}
		out[i] = *op.Single
	}
	return Opening[T, G]{Batch: out}, nil
}

// VerifyBatchAtPoint accepts iff every individual IPA proof verifies.
func (s *Scheme[T, G]) VerifyBatchAtPoint(opening Opening[T, G], commitments []G, z T, ss []T, eta T) (bool, error) {
	if opening.Batch == nil {
		return false, ErrOpeningShapeMismatch
	}
	if len(opening.Batch) != len(commitments) || len(opening.Batch) != len(ss) {
		return false, pcs.ErrCommitmentCountMismatch
	}
	for i, proof := range opening.Batch {
		ok, err := s.verifySingle(proof, commitments[i], z, ss[i])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
