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

// Package pcs defines the polynomial commitment scheme trait spec.md
// section 2 and 4.7-4.9 specify: commit, open, verify_opening, and their
// batched-at-a-shared-point variants. Concrete schemes (trivial, kzg,
// bulletproofs) live in sibling packages and each implement PCS for their
// own concrete Commitment/Opening types. Grounded on
// original_source/zkps/polynomial_commitment_schemes/pcs.py's PCS ABC.
package pcs

import (
	"errors"

	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/polynomial"
)

// ErrDegreeExceedsCapacity is returned by Commit when deg(f) is too large
// for the scheme's setup parameters.
var ErrDegreeExceedsCapacity = errors.New("pcs: polynomial degree exceeds scheme capacity")

// ErrNonZeroRemainder is returned by Open when the (f-s)/(X-z) division
// (or its batched analogue) leaves a non-zero remainder, meaning s was not
// actually f(z).
var ErrNonZeroRemainder = errors.New("pcs: claimed evaluation does not match polynomial")

// ErrCommitmentCountMismatch is returned by batched operations when the
// number of commitments, polynomials, or claimed values disagree.
var ErrCommitmentCountMismatch = errors.New("pcs: batched operation received mismatched input counts")

// PCS is implemented by each concrete commitment scheme variant. Commitment
// and Opening are the scheme's own concrete wire types (e.g. a G1 point
// for KZG, a coefficient list for TrivialPCS); using a scheme's verifier
// with another scheme's commitment/opening is an input error the concrete
// implementation must reject explicitly (spec.md's "PCS type mismatch").
type PCS[T field.Element[T], Commitment any, Opening any] interface {
	Commit(f polynomial.Polynomial[T]) (Commitment, error)
	Open(f polynomial.Polynomial[T], commitment Commitment, z T, s T) (Opening, error)
	VerifyOpening(opening Opening, commitment Commitment, z T, s T) (bool, error)

	BatchOpenAtPoint(fs []polynomial.Polynomial[T], commitments []Commitment, z T, ss []T, eta T) (Opening, error)
	VerifyBatchAtPoint(opening Opening, commitments []Commitment, z T, ss []T, eta T) (bool, error)
}
