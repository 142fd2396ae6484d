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

// Package transcript implements the Fiat-Shamir transcript spec.md
// section 4.4 describes: an append-only byte buffer with a pure
// challenge-extraction operation. Grounded on
// original_source/zkps/transcript.py, with the reference's print-based
// diagnostics replaced by structured zerolog logging (SPEC_FULL.md 1.1).
package transcript

import (
	"golang.org/x/crypto/sha3"

	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/internal/log"
)

// Byteable is any value with a canonical byte encoding — commitments,
// field elements, opening proofs — that can be appended to a transcript.
type Byteable interface {
	Bytes() []byte
}

// Transcript is a growing byte buffer whose challenges are derived by
// Keccak-256 over (buffer || optional salt), reduced modulo the scalar
// field's modulus. Appending never consumes the buffer: challenges are a
// pure function of the transcript so far.
type Transcript[T field.Element[T]] struct {
	record []byte
}

// New returns an empty transcript.
func New[T field.Element[T]]() *Transcript[T] {
	return &Transcript[T]{}
}

// Append extends the real buffer with entry's byte encoding. Salts used
// for Challenge are never part of the persisted buffer.
func (tr *Transcript[T]) Append(entry Byteable) {
	b := entry.Bytes()
	tr.record = append(tr.record, b...)
	log.Logger.Debug().
		Int("bytes", len(b)).
		Int("buffer_len", len(tr.record)).
		Msg("transcript: appended entry")
}

// Challenge hashes a copy of the buffer (optionally extended with salt)
// with Keccak-256 and reduces the digest modulo q to produce a field
// challenge. It does not mutate the transcript.
func (tr *Transcript[T]) Challenge(salt ...byte) T {
	h := sha3.NewLegacyKeccak256()
	h.Write(tr.record)
	if len(salt) > 0 {
		h.Write(salt)
	}
	digest := h.Sum(nil)

	var zero T
	chal := field.NewFromBytesReduced[T](zero, digest)
	log.Logger.Debug().
		Hex("digest", digest).
		Bool("salted", len(salt) > 0).
		Msg("transcript: derived challenge")
	return chal
}
