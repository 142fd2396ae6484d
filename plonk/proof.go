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

// Package plonk implements the PLONK prover and verifier (spec.md section
// 4.5-4.6): the multi-round Fiat-Shamir protocol that produces, and checks,
// a succinct proof of arithmetic-circuit satisfiability over any PCS
// backend satisfying the pcs.PCS trait. Grounded line-for-line on
// original_source/zkps/plonk.py's PlonkProver.prove / PlonkVerifier.verify
// for protocol order, salts, and the F1/F2/F3/quotient construction.
package plonk

import (
	"errors"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/nume-crypto/zkplonk/field"
)

// ProofFormatVersion tags the wire format produced by MarshalBinary, so a
// future incompatible change to PlonkProof's shape can be detected by
// UnmarshalBinary rather than silently misparsed.
var ProofFormatVersion = semver.MustParse("1.0.0")

// ErrUnsupportedProofFormat is returned by UnmarshalBinary when the
// encoded proof's major format version does not match ProofFormatVersion.
var ErrUnsupportedProofFormat = errors.New("plonk: unsupported proof format version")

// Commitment is the capability a PCS's concrete commitment type must offer
// to appear inside a PlonkProof: a canonical byte encoding, so it can be
// appended to the transcript (spec.md section 4.4).
type Commitment interface {
	Bytes() []byte
}

// PlonkProof is the six-commitment, six-evaluation, six-opening object
// spec.md section 3 defines, generic over the field T and a PCS variant's
// concrete Commitment/Opening types C, O.
type PlonkProof[T field.Element[T], C Commitment, O any] struct {
	FormatVersion string

	FLCm, FRCm, FOCm   C
	ZCm, ZShiftCm      C
	TCm                C
	FLEval, FREval     T
	FOEval             T
	ZEval, ZShiftEval  T
	TEval              T
	FLOp, FROp, FOOp   O
	ZOp, ZShiftOp      O
	TOp                O
}

// MarshalBinary cbor-encodes the proof, stamping it with ProofFormatVersion.
// Every field/group leaf type used by the concrete PCS backends in this
// module (field.BN254Scalar/BLS12381Scalar, group.BN254Group/BLS12381Group)
// implements encoding.BinaryMarshaler, so cbor recurses into C and O
// correctly without any scheme-specific marshaling code here.
func (p *PlonkProof[T, C, O]) MarshalBinary() ([]byte, error) {
	p.FormatVersion = ProofFormatVersion.String()
	return cbor.Marshal(p)
}

// UnmarshalBinary decodes a proof produced by MarshalBinary, rejecting a
// mismatched major format version.
func (p *PlonkProof[T, C, O]) UnmarshalBinary(data []byte) error {
	if err := cbor.Unmarshal(data, p); err != nil {
		return err
	}
	v, err := semver.Parse(p.FormatVersion)
	if err != nil {
		return err
	}
	if v.Major != ProofFormatVersion.Major {
		return ErrUnsupportedProofFormat
	}
	return nil
}
