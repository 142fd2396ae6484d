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
	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/internal/log"
	"github.com/nume-crypto/zkplonk/pcs"
	"github.com/nume-crypto/zkplonk/polynomial"
	"github.com/nume-crypto/zkplonk/preprocessor"
	"github.com/nume-crypto/zkplonk/transcript"
)

// PlonkVerifier orchestrates the seven-step verification protocol
// (spec.md section 4.6) against a fixed PCS backend and preprocessed
// input.
type PlonkVerifier[T field.Element[T], C Commitment, O any] struct {
	pcsVerifier  pcs.PCS[T, C, O]
	preprocessed *preprocessor.PlonkPreprocessedInput[T]
	domain       []T
	l            int
}

// NewPlonkVerifier binds a verifier to pcsVerifier and the preprocessed
// input derived over domain, expecting l public inputs per Verify call.
func NewPlonkVerifier[T field.Element[T], C Commitment, O any](
	pcsVerifier pcs.PCS[T, C, O],
	preprocessed *preprocessor.PlonkPreprocessedInput[T],
	domain []T,
	l int,
) *PlonkVerifier[T, C, O] {
	return &PlonkVerifier[T, C, O]{
		pcsVerifier:  pcsVerifier,
		preprocessed: preprocessed,
		domain:       domain,
		l:            l,
	}
}

// Verify re-derives every Fiat-Shamir challenge from proof, checks all six
// PCS openings, and accepts iff the quotient identity holds at zeta.
// Per spec.md section 7, proof rejection is not an error: a malformed
// witness or a tampered proof both surface as (false, nil); only
// structural failures (a PCS opening call returning an error, unequal
// public-input counts) surface as (false, err).
//
// The Python reference never actually branches on verify_opening's result
// (a TODO in plonk.py marks it: "Fail if any of these verification
// openings fail") — every opening is checked here and a single failing
// opening rejects the whole proof, per spec.md section 4.6 step 5's "Any
// failure => reject."
func (v *PlonkVerifier[T, C, O]) Verify(proof *PlonkProof[T, C, O], publicInputs []T) (bool, error) {
	if len(publicInputs) != v.l {
		return false, ErrPublicInputLengthMismatch
	}

	pre := v.preprocessed
	domain := v.domain
	var zero T

	tr := transcript.New[T]()
	tr.Append(proof.FLCm)
	tr.Append(proof.FRCm)
	tr.Append(proof.FOCm)
	beta := tr.Challenge(0x00)
	gamma := tr.Challenge(0x01)

	tr.Append(proof.ZCm)
	tr.Append(proof.ZShiftCm)
	alpha1 := tr.Challenge(0x00)
	alpha2 := tr.Challenge(0x01)
	alpha3 := tr.Challenge(0x02)

	tr.Append(proof.TCm)
	zeta := tr.Challenge()

	tr.Append(proof.FLEval)
	tr.Append(proof.FREval)
	tr.Append(proof.FOEval)
	tr.Append(proof.ZEval)
	tr.Append(proof.ZShiftEval)
	tr.Append(proof.TEval)
	_ = tr.Challenge() // eta: derived to stay in lockstep with the prover

	// ---- Step 5: verify all six PCS openings ----
	openings := []struct {
		op O
		cm C
		s  T
	}{
		{proof.FLOp, proof.FLCm, proof.FLEval},
		{proof.FROp, proof.FRCm, proof.FREval},
		{proof.FOOp, proof.FOCm, proof.FOEval},
		{proof.ZOp, proof.ZCm, proof.ZEval},
		{proof.ZShiftOp, proof.ZShiftCm, proof.ZShiftEval},
		{proof.TOp, proof.TCm, proof.TEval},
	}
	for _, o := range openings {
		ok, err := v.pcsVerifier.VerifyOpening(o.op, o.cm, zeta, o.s)
		if err != nil {
			return false, err
		}
		if !ok {
			log.Logger.Debug().Msg("plonk: a PCS opening failed to verify")
			return false, nil
		}
	}

	// ---- Step 6: recompute F1(zeta), F2(zeta), F3(zeta), Z_S(zeta) ----
	L1, err := polynomial.LagrangeBasis(domain, 0)
	if err != nil {
		return false, err
	}
	f1Eval := L1.Evaluate(zeta).Mul(proof.ZEval.Sub(zero.One()))

	fPrimeEval := proof.FLEval.Add(beta.Mul(pre.SID1.Evaluate(zeta))).Add(gamma).
		Mul(proof.FREval.Add(beta.Mul(pre.SID2.Evaluate(zeta))).Add(gamma)).
		Mul(proof.FOEval.Add(beta.Mul(pre.SID3.Evaluate(zeta))).Add(gamma))
	gPrimeEval := proof.FLEval.Add(beta.Mul(pre.SSigma1.Evaluate(zeta))).Add(gamma).
		Mul(proof.FREval.Add(beta.Mul(pre.SSigma2.Evaluate(zeta))).Add(gamma)).
		Mul(proof.FOEval.Add(beta.Mul(pre.SSigma3.Evaluate(zeta))).Add(gamma))
	f2Eval := proof.ZEval.Mul(fPrimeEval).Sub(gPrimeEval.Mul(proof.ZShiftEval))

	piEval := zero
	for i := 0; i < v.l; i++ {
		li, err := polynomial.LagrangeBasis(domain, i)
		if err != nil {
			return false, err
		}
		piEval = piEval.Add(li.Evaluate(zeta).Mul(publicInputs[i].Neg()))
	}
	f3Eval := pre.QL.Evaluate(zeta).Mul(proof.FLEval).
		Add(pre.QR.Evaluate(zeta).Mul(proof.FREval)).
		Add(pre.QO.Evaluate(zeta).Mul(proof.FOEval)).
		Add(pre.QM.Evaluate(zeta).Mul(proof.FLEval).Mul(proof.FREval)).
		Add(pre.QC.Evaluate(zeta)).
		Add(piEval)

	zsEval := zero.One()
	for _, h := range domain {
		zsEval = zsEval.Mul(zeta.Sub(h))
	}

	// ---- Step 7: accept iff the quotient identity holds ----
	lhs := alpha1.Mul(f1Eval).Add(alpha2.Mul(f2Eval)).Add(alpha3.Mul(f3Eval)).Sub(proof.TEval.Mul(zsEval))
	accepted := lhs.IsZero()
	log.Logger.Debug().Bool("accepted", accepted).Msg("plonk: verification complete")
	return accepted, nil
}
