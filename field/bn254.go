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

package field

import (
	"math/big"

	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// bn254PrimitiveRoot is the fixed generator used to derive roots of unity
// for the BN254 scalar field, per spec.md section 6: "primitive_root = 5
// is used for both [curves]".
const bn254PrimitiveRoot = 5

// BN254Scalar is an element of the BN254 scalar field Fr.
type BN254Scalar struct {
	inner bn254fr.Element
}

// NewBN254Scalar builds a BN254Scalar from a signed integer value.
func NewBN254Scalar(v int64) BN254Scalar {
	var e BN254Scalar
	e.inner.SetInt64(v)
	return e
}

// NewBN254ScalarFromBigInt builds a BN254Scalar by reducing v modulo q.
func NewBN254ScalarFromBigInt(v *big.Int) BN254Scalar {
	var e BN254Scalar
	e.inner.SetBigInt(v)
	return e
}

// NewBN254ScalarFromBytes reduces a big-endian byte string modulo q.
func NewBN254ScalarFromBytes(b []byte) BN254Scalar {
	return NewBN254ScalarFromBigInt(new(big.Int).SetBytes(b))
}

func (e BN254Scalar) Add(other BN254Scalar) BN254Scalar {
	var z BN254Scalar
	z.inner.Add(&e.inner, &other.inner)
	return z
}

func (e BN254Scalar) Sub(other BN254Scalar) BN254Scalar {
	var z BN254Scalar
	z.inner.Sub(&e.inner, &other.inner)
	return z
}

func (e BN254Scalar) Mul(other BN254Scalar) BN254Scalar {
	var z BN254Scalar
	z.inner.Mul(&e.inner, &other.inner)
	return z
}

func (e BN254Scalar) Div(other BN254Scalar) (BN254Scalar, error) {
	if other.IsZero() {
		return BN254Scalar{}, ErrDivideByZero
	}
	var inv, z BN254Scalar
	inv.inner.Inverse(&other.inner)
	z.inner.Mul(&e.inner, &inv.inner)
	return z, nil
}

func (e BN254Scalar) Neg() BN254Scalar {
	var z BN254Scalar
	z.inner.Neg(&e.inner)
	return z
}

func (e BN254Scalar) Inverse() (BN254Scalar, error) {
	if e.IsZero() {
		return BN254Scalar{}, ErrDivideByZero
	}
	var z BN254Scalar
	z.inner.Inverse(&e.inner)
	return z, nil
}

func (e BN254Scalar) Pow(exp *big.Int) BN254Scalar {
	var z BN254Scalar
	z.inner.Exp(e.inner, exp)
	return z
}

func (e BN254Scalar) IsZero() bool {
	return e.inner.IsZero()
}

func (e BN254Scalar) Equal(other BN254Scalar) bool {
	return e.inner.Equal(&other.inner)
}

// Bytes returns the canonical big-endian encoding of the minimal byte
// length, per spec.md's FieldElement invariant (zero encodes as the empty
// string, matching original_source/zkps/utils.py's unsigned_int_to_bytes).
func (e BN254Scalar) Bytes() []byte {
	var v big.Int
	e.inner.BigInt(&v)
	return v.Bytes()
}

func (e BN254Scalar) Zero() BN254Scalar { return BN254Scalar{} }

func (e BN254Scalar) One() BN254Scalar {
	var z BN254Scalar
	z.inner.SetOne()
	return z
}

func (e BN254Scalar) Modulus() *big.Int {
	return bn254fr.Modulus()
}

func (e BN254Scalar) PrimitiveRoot() BN254Scalar {
	return NewBN254Scalar(bn254PrimitiveRoot)
}

// Inner exposes the underlying gnark-crypto element for packages (group,
// pairing, pcs/kzg, pcs/bulletproofs) that must pass scalars into
// gnark-crypto's EC scalar-multiplication APIs.
func (e BN254Scalar) Inner() bn254fr.Element { return e.inner }

// ToBigInt returns the non-negative integer representative in [0, q).
func (e BN254Scalar) ToBigInt() *big.Int {
	var v big.Int
	e.inner.BigInt(&v)
	return &v
}

// FromBigInt constructs a BN254Scalar by reducing v modulo q.
func (e BN254Scalar) FromBigInt(v *big.Int) BN254Scalar {
	return NewBN254ScalarFromBigInt(v)
}

// MarshalBinary returns the same canonical big-endian encoding as Bytes,
// letting BN254Scalar serialize directly inside cbor-encoded structures
// such as a PlonkProof.
func (e BN254Scalar) MarshalBinary() ([]byte, error) {
	return e.Bytes(), nil
}

// UnmarshalBinary reconstructs a BN254Scalar from its canonical encoding.
func (e *BN254Scalar) UnmarshalBinary(data []byte) error {
	*e = NewBN254ScalarFromBytes(data)
	return nil
}
