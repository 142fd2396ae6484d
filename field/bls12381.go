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

	bls12381fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// bls12381PrimitiveRoot mirrors bn254PrimitiveRoot: spec.md section 6 fixes
// primitive_root = 5 for both supported curves.
const bls12381PrimitiveRoot = 5

// BLS12381Scalar is an element of the BLS12-381 scalar field Fr.
type BLS12381Scalar struct {
	inner bls12381fr.Element
}

func NewBLS12381Scalar(v int64) BLS12381Scalar {
	var e BLS12381Scalar
	e.inner.SetInt64(v)
	return e
}

func NewBLS12381ScalarFromBigInt(v *big.Int) BLS12381Scalar {
	var e BLS12381Scalar
	e.inner.SetBigInt(v)
	return e
}

func NewBLS12381ScalarFromBytes(b []byte) BLS12381Scalar {
	return NewBLS12381ScalarFromBigInt(new(big.Int).SetBytes(b))
}

func (e BLS12381Scalar) Add(other BLS12381Scalar) BLS12381Scalar {
	var z BLS12381Scalar
	z.inner.Add(&e.inner, &other.inner)
	return z
}

func (e BLS12381Scalar) Sub(other BLS12381Scalar) BLS12381Scalar {
	var z BLS12381Scalar
	z.inner.Sub(&e.inner, &other.inner)
	return z
}

func (e BLS12381Scalar) Mul(other BLS12381Scalar) BLS12381Scalar {
	var z BLS12381Scalar
	z.inner.Mul(&e.inner, &other.inner)
	return z
}

func (e BLS12381Scalar) Div(other BLS12381Scalar) (BLS12381Scalar, error) {
	if other.IsZero() {
		return BLS12381Scalar{}, ErrDivideByZero
	}
	var inv, z BLS12381Scalar
	inv.inner.Inverse(&other.inner)
	z.inner.Mul(&e.inner, &inv.inner)
	return z, nil
}

func (e BLS12381Scalar) Neg() BLS12381Scalar {
	var z BLS12381Scalar
	z.inner.Neg(&e.inner)
	return z
}

func (e BLS12381Scalar) Inverse() (BLS12381Scalar, error) {
	if e.IsZero() {
		return BLS12381Scalar{}, ErrDivideByZero
	}
	var z BLS12381Scalar
	z.inner.Inverse(&e.inner)
	return z, nil
}

func (e BLS12381Scalar) Pow(exp *big.Int) BLS12381Scalar {
	var z BLS12381Scalar
	z.inner.Exp(e.inner, exp)
	return z
}

func (e BLS12381Scalar) IsZero() bool {
	return e.inner.IsZero()
}

func (e BLS12381Scalar) Equal(other BLS12381Scalar) bool {
	return e.inner.Equal(&other.inner)
}

func (e BLS12381Scalar) Bytes() []byte {
	var v big.Int
	e.inner.BigInt(&v)
	return v.Bytes()
}

func (e BLS12381Scalar) Zero() BLS12381Scalar { return BLS12381Scalar{} }

func (e BLS12381Scalar) One() BLS12381Scalar {
	var z BLS12381Scalar
	z.inner.SetOne()
	return z
}

func (e BLS12381Scalar) Modulus() *big.Int {
	return bls12381fr.Modulus()
}

func (e BLS12381Scalar) PrimitiveRoot() BLS12381Scalar {
	return NewBLS12381Scalar(bls12381PrimitiveRoot)
}

func (e BLS12381Scalar) Inner() bls12381fr.Element { return e.inner }

func (e BLS12381Scalar) ToBigInt() *big.Int {
	var v big.Int
	e.inner.BigInt(&v)
	return &v
}

// FromBigInt constructs a BLS12381Scalar by reducing v modulo q.
func (e BLS12381Scalar) FromBigInt(v *big.Int) BLS12381Scalar {
	return NewBLS12381ScalarFromBigInt(v)
}

// MarshalBinary returns the same canonical big-endian encoding as Bytes.
func (e BLS12381Scalar) MarshalBinary() ([]byte, error) {
	return e.Bytes(), nil
}

// UnmarshalBinary reconstructs a BLS12381Scalar from its canonical encoding.
func (e *BLS12381Scalar) UnmarshalBinary(data []byte) error {
	*e = NewBLS12381ScalarFromBytes(data)
	return nil
}
