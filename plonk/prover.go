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

package plonk

import (
	"errors"
	"math/big"

	"github.com/nume-crypto/zkplonk/constraints"
	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/internal/log"
	"github.com/nume-crypto/zkplonk/pcs"
	"github.com/nume-crypto/zkplonk/polynomial"
	"github.com/nume-crypto/zkplonk/preprocessor"
	"github.com/nume-crypto/zkplonk/transcript"
)

// ErrInvalidConstraints is returned when the constraints passed to
// NewPlonkProver fail constraints.IsValid.
var ErrInvalidConstraints = errors.New("plonk: constraints are not valid")

// ErrFieldTooSmall guards spec.md section 4.5's precondition |F| > 3n.
var ErrFieldTooSmall = errors.New("plonk: field modulus must exceed 3n")

// ErrWitnessLengthMismatch is returned by Prove when len(witness) != m.
var ErrWitnessLengthMismatch = errors.New("plonk: witness length must equal constraints.M")

// ErrPublicInputLengthMismatch is returned by Prove/Verify when the public
// input count does not match constraints.L.
var ErrPublicInputLengthMismatch = errors.New("plonk: public input length must equal constraints.L")

// ErrQuotientRemainderNonZero is the honest-prover invariant violation
// spec.md section 7 names: Z_S failed to divide the alpha-linear
// combination of constraint polynomials cleanly, indicating a bug or a
// non-satisfying witness.
var ErrQuotientRemainderNonZero = errors.New("plonk: vanishing polynomial does not divide quotient combination cleanly")

// PlonkProver orchestrates the nine-step proving protocol (spec.md section
// 4.5) against a fixed PCS backend, constraint system, and preprocessed
// input.
type PlonkProver[T field.Element[T], C Commitment, O any] struct {
	pcsProver    pcs.PCS[T, C, O]
	constraints  *constraints.PlonkConstraints[T]
	preprocessed *preprocessor.PlonkPreprocessedInput[T]
	domain       []T
}

// NewPlonkProver validates c and checks |F| > 3n before returning a prover
// bound to pcsProver, c, and the preprocessed input derived over domain.
func NewPlonkProver[T field.Element[T], C Commitment, O any](
	pcsProver pcs.PCS[T, C, O],
	c *constraints.PlonkConstraints[T],
	preprocessed *preprocessor.PlonkPreprocessedInput[T],
	domain []T,
) (*PlonkProver[T, C, O], error) {
	if !c.IsValid() {
		return nil, ErrInvalidConstraints
	}
	var zero T
	threeN := big.NewInt(int64(3 * c.N))
	if zero.Modulus().Cmp(threeN) <= 0 {
		return nil, ErrFieldTooSmall
	}
	return &PlonkProver[T, C, O]{
		pcsProver:    pcsProver,
		constraints:  c,
		preprocessed: preprocessed,
		domain:       domain,
	}, nil
}

// Prove runs the nine-step protocol of spec.md section 4.5 against witness
// w and public inputs pi, returning the assembled PlonkProof.
func (pr *PlonkProver[T, C, O]) Prove(witness []T, publicInputs []T) (*PlonkProof[T, C, O], error) {
	c := pr.constraints
	if len(witness) != c.M {
		return nil, ErrWitnessLengthMismatch
	}
	if len(publicInputs) != c.L {
		return nil, ErrPublicInputLengthMismatch
	}

	var zero T
	one := zero.One()
	n := c.N
	domain := pr.domain
	pre := pr.preprocessed

	tr := transcript.New[T]()

	// ---- Step 1: wire polynomials ----
	fL, err := interpolateWire(witness, c.A, domain)
	if err != nil {
		return nil, err
	}
	fR, err := interpolateWire(witness, c.B, domain)
	if err != nil {
		return nil, err
	}
	fO, err := interpolateWire(witness, c.C, domain)
	if err != nil {
		return nil, err
	}

	fLCm, err := pr.pcsProver.Commit(fL)
	if err != nil {
		return nil, err
	}
	fRCm, err := pr.pcsProver.Commit(fR)
	if err != nil {
		return nil, err
	}
	fOCm, err := pr.pcsProver.Commit(fO)
	if err != nil {
		return nil, err
	}
	tr.Append(fLCm)
	tr.Append(fRCm)
	tr.Append(fOCm)

	// ---- Step 2: permutation challenges ----
	beta := tr.Challenge(0x00)
	gamma := tr.Challenge(0x01)

	// ---- Step 3: grand product ----
	fPrime1 := linearize(fL, pre.SID1, beta, gamma)
	fPrime2 := linearize(fR, pre.SID2, beta, gamma)
	fPrime3 := linearize(fO, pre.SID3, beta, gamma)
	gPrime1 := linearize(fL, pre.SSigma1, beta, gamma)
	gPrime2 := linearize(fR, pre.SSigma2, beta, gamma)
	gPrime3 := linearize(fO, pre.SSigma3, beta, gamma)
	fPrime := fPrime1.Mul(fPrime2).Mul(fPrime3)
	gPrime := gPrime1.Mul(gPrime2).Mul(gPrime3)

	zValues := make([]T, n)
	zValues[0] = one
	prod := one
	for i := 0; i < n-1; i++ {
		num := fPrime.Evaluate(domain[i])
		den := gPrime.Evaluate(domain[i])
		ratio, err := num.Div(den)
		if err != nil {
			return nil, err
		}
		prod = prod.Mul(ratio)
		zValues[i+1] = prod
	}
	Z, err := polynomial.Interpolate(domain, zValues)
	if err != nil {
		return nil, err
	}
	zShiftValues := make([]T, n)
	for i := 0; i < n; i++ {
		zShiftValues[i] = zValues[(i+1)%n]
	}
	ZShift, err := polynomial.Interpolate(domain, zShiftValues)
	if err != nil {
		return nil, err
	}
	zCm, err := pr.pcsProver.Commit(Z)
	if err != nil {
		return nil, err
	}
	zShiftCm, err := pr.pcsProver.Commit(ZShift)
	if err != nil {
		return nil, err
	}
	tr.Append(zCm)
	tr.Append(zShiftCm)

	// ---- Step 4: linear-combination challenges ----
	alpha1 := tr.Challenge(0x00)
	alpha2 := tr.Challenge(0x01)
	alpha3 := tr.Challenge(0x02)

	// ---- Step 5: constraint polynomials ----
	L1, err := polynomial.LagrangeBasis(domain, 0)
	if err != nil {
		return nil, err
	}
	F1 := L1.Mul(Z.SubScalar(one))
	F2 := Z.Mul(fPrime).Sub(gPrime.Mul(ZShift))

	PI := polynomial.Zero(zero)
	for i := 0; i < c.L; i++ {
		li, err := polynomial.LagrangeBasis(domain, i)
		if err != nil {
			return nil, err
		}
		PI = PI.Add(li.MulScalar(publicInputs[i].Neg()))
	}
	F3 := pre.QL.Mul(fL).
		Add(pre.QR.Mul(fR)).
		Add(pre.QO.Mul(fO)).
		Add(pre.QM.Mul(fL).Mul(fR)).
		Add(pre.QC).
		Add(PI)

	// ---- Step 6: quotient ----
	ZS := vanishingPolynomial(domain)
	combo := F1.MulScalar(alpha1).Add(F2.MulScalar(alpha2)).Add(F3.MulScalar(alpha3))
	Tpoly, rem, err := combo.Div(ZS)
	if err != nil {
		return nil, err
	}
	if !rem.Equal(polynomial.Zero(zero)) {
		return nil, ErrQuotientRemainderNonZero
	}
	tCm, err := pr.pcsProver.Commit(Tpoly)
	if err != nil {
		return nil, err
	}
	tr.Append(tCm)

	// ---- Step 7: evaluation ----
	zeta := tr.Challenge()
	fLEval := fL.Evaluate(zeta)
	fREval := fR.Evaluate(zeta)
	fOEval := fO.Evaluate(zeta)
	zEval := Z.Evaluate(zeta)
	zShiftEval := ZShift.Evaluate(zeta)
	tEval := Tpoly.Evaluate(zeta)
	tr.Append(fLEval)
	tr.Append(fREval)
	tr.Append(fOEval)
	tr.Append(zEval)
	tr.Append(zShiftEval)
	tr.Append(tEval)

	// ---- Step 8: openings ----
	// eta is derived to keep the transcript in lockstep with the verifier,
	// matching plonk.py's op_info argument; the individual Open calls below
	// don't take an auxiliary batch challenge, since spec.md's own PCS
	// backends treat single-polynomial Open as independent of batching.
	_ = tr.Challenge()

	fLOp, err := pr.pcsProver.Open(fL, fLCm, zeta, fLEval)
	if err != nil {
		return nil, err
	}
	fROp, err := pr.pcsProver.Open(fR, fRCm, zeta, fREval)
	if err != nil {
		return nil, err
	}
	fOOp, err := pr.pcsProver.Open(fO, fOCm, zeta, fOEval)
	if err != nil {
		return nil, err
	}
	zOp, err := pr.pcsProver.Open(Z, zCm, zeta, zEval)
	if err != nil {
		return nil, err
	}
	zShiftOp, err := pr.pcsProver.Open(ZShift, zShiftCm, zeta, zShiftEval)
	if err != nil {
		return nil, err
	}
	tOp, err := pr.pcsProver.Open(Tpoly, tCm, zeta, tEval)
	if err != nil {
		return nil, err
	}

	log.Logger.Debug().Int("n", n).Msg("plonk: proof assembled")

	// ---- Step 9: output ----
	return &PlonkProof[T, C, O]{
		FLCm: fLCm, FRCm: fRCm, FOCm: fOCm,
		ZCm: zCm, ZShiftCm: zShiftCm,
		TCm: tCm,
		FLEval: fLEval, FREval: fREval, FOEval: fOEval,
		ZEval: zEval, ZShiftEval: zShiftEval,
		TEval: tEval,
		FLOp: fLOp, FROp: fROp, FOOp: fOOp,
		ZOp: zOp, ZShiftOp: zShiftOp,
		TOp: tOp,
	}, nil
}

// interpolateWire selects witness[labels[i]-1] for each gate i and
// interpolates the resulting length-n vector over domain.
func interpolateWire[T field.Element[T]](witness []T, labels []int, domain []T) (polynomial.Polynomial[T], error) {
	values := make([]T, len(labels))
	for i, label := range labels {
		values[i] = witness[label-1]
	}
	return polynomial.Interpolate(domain, values)
}

// linearize returns f + beta*s + gamma, the per-role factor shared by
// f'/g' construction (spec.md section 4.5 step 3).
func linearize[T field.Element[T]](f, s polynomial.Polynomial[T], beta, gamma T) polynomial.Polynomial[T] {
	return f.Add(s.MulScalar(beta)).AddScalar(gamma)
}

// vanishingPolynomial returns Z_S(X) = prod_{h in domain} (X - h).
func vanishingPolynomial[T field.Element[T]](domain []T) polynomial.Polynomial[T] {
	one := domain[0].One()
	zs := polynomial.New([]T{one})
	for _, h := range domain {
		zs = zs.Mul(polynomial.New([]T{h.Neg(), one}))
	}
	return zs
}
