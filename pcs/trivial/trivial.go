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

// Package trivial implements the reference "send-all-coefficients"
// polynomial commitment scheme (spec.md section 4.7): commit is the
// coefficient list itself, opening is a no-op, and verification
// recomputes f(z) from the committed coefficients. Grounded on
// original_source/zkps/polynomial_commitment_schemes/trivial.py.
package trivial

import (
	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/internal/log"
	"github.com/nume-crypto/zkplonk/pcs"
	"github.com/nume-crypto/zkplonk/polynomial"
)

// Commitment is simply the polynomial's coefficient vector.
type Commitment[T field.Element[T]] struct {
	Coeffs []T
}

// Bytes concatenates each coefficient's canonical byte encoding, letting a
// Commitment be appended directly to a transcript.
func (c Commitment[T]) Bytes() []byte {
	var out []byte
	for _, v := range c.Coeffs {
		out = append(out, v.Bytes()...)
	}
	return out
}

// Opening is empty: TrivialPCS proves nothing beyond the commitment
// itself, since the commitment already contains the whole polynomial.
type Opening struct{}

// Bytes is the empty string: TrivialPCS's opening carries no data.
func (Opening) Bytes() []byte { return nil }

// PCS is the zero-value trivial scheme (it has no setup parameters).
type PCS[T field.Element[T]] struct{}

// New returns a TrivialPCS instance.
func New[T field.Element[T]]() *PCS[T] {
	return &PCS[T]{}
}

var _ pcs.PCS[field.BN254Scalar, Commitment[field.BN254Scalar], Opening] = (*PCS[field.BN254Scalar])(nil)

// Commit returns f's coefficient vector unchanged.
func (*PCS[T]) Commit(f polynomial.Polynomial[T]) (Commitment[T], error) {
	coeffs := append([]T(nil), f.Coeffs...)
	return Commitment[T]{Coeffs: coeffs}, nil
}

// Open returns the empty opening; TrivialPCS needs no proof beyond the
// commitment.
func (*PCS[T]) Open(f polynomial.Polynomial[T], commitment Commitment[T], z T, s T) (Opening, error) {
	return Opening{}, nil
}

// VerifyOpening recomputes f(z) from the committed coefficients and
// compares it to s.
func (*PCS[T]) VerifyOpening(_ Opening, commitment Commitment[T], z T, s T) (bool, error) {
	ok := verifySingle(commitment, z, s)
	log.Logger.Debug().Bool("accepted", ok).Msg("trivial pcs: verified opening")
	return ok, nil
}

func verifySingle[T field.Element[T]](commitment Commitment[T], z T, s T) bool {
	f := polynomial.New(commitment.Coeffs)
	return f.Evaluate(z).Equal(s)
}

// BatchOpenAtPoint returns the empty opening; aux (eta) is unused since
// TrivialPCS's verify already checks every (commitment, value) pair
// independently.
func (*PCS[T]) BatchOpenAtPoint(fs []polynomial.Polynomial[T], commitments []Commitment[T], z T, ss []T, eta T) (Opening, error) {
	if len(fs) != len(commitments) || len(fs) != len(ss) {
		return Opening{}, pcs.ErrCommitmentCountMismatch
	}
	return Opening{}, nil
}

// VerifyBatchAtPoint checks each (C_i, s_i) independently, per spec.md
// section 4.7: "Batched verify checks each (C_i, s_i) independently."
func (*PCS[T]) VerifyBatchAtPoint(_ Opening, commitments []Commitment[T], z T, ss []T, eta T) (bool, error) {
	if len(commitments) != len(ss) {
		return false, pcs.ErrCommitmentCountMismatch
	}
	for i, c := range commitments {
		if !verifySingle(c, z, ss[i]) {
			return false, nil
		}
	}
	return true, nil
}
