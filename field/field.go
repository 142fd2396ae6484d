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

// Package field provides the prime-field abstraction PLONK and its
// polynomial commitment schemes are built over: the scalar field of a
// pairing-friendly curve (BN254 or BLS12-381), with the arithmetic
// (+, -, ×, ÷, equality, zero/one, powers, roots of unity) that
// spec.md's Field collaborator requires.
//
// Concrete elements wrap github.com/consensys/gnark-crypto's scalar
// field types directly rather than reimplementing modular arithmetic,
// per spec.md section 1: "the system may call into an existing
// elliptic-curve library for BN254 and BLS12-381".
package field

import (
	"errors"
	"math/big"
)

// ErrOrderDoesNotDivide is returned by RootsOfUnity when order does not
// divide q-1, so no subgroup of that order exists in F*.
var ErrOrderDoesNotDivide = errors.New("field: requested order does not divide q-1")

// ErrRootsOfUnityFailed guards against a primitive-root misconfiguration;
// it should never trigger for a correctly parameterized curve.
var ErrRootsOfUnityFailed = errors.New("field: computed roots of unity do not close the cycle")

// ErrDivideByZero is returned by Div and Inverse on a zero divisor.
var ErrDivideByZero = errors.New("field: division by zero")

// Element is implemented by a concrete scalar-field element type T. It is a
// self-referential generic constraint: every concrete field (BN254Scalar,
// BLS12381Scalar) implements Element[itself]. Values are immutable; every
// operation returns a new element, so elements remain freely copyable.
type Element[T any] interface {
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) (T, error)
	Neg() T
	Inverse() (T, error)
	Pow(exp *big.Int) T
	IsZero() bool
	Equal(other T) bool
	Bytes() []byte
	ToBigInt() *big.Int

	Zero() T
	One() T
	Modulus() *big.Int
	PrimitiveRoot() T

	// FromBigInt constructs an element of the same concrete type from an
	// arbitrary big.Int, reducing modulo the field's modulus.
	FromBigInt(v *big.Int) T
}

// NewFromBytesReduced interprets digest as a big-endian integer and reduces
// it modulo T's modulus, producing a field element. zero is only used to
// select the concrete type T (its value is discarded); callers pass a fresh
// var zero T. Used by transcript.Challenge to turn a Keccak-256 digest into
// a Fiat-Shamir challenge.
func NewFromBytesReduced[T Element[T]](zero T, digest []byte) T {
	v := new(big.Int).SetBytes(digest)
	return zero.FromBigInt(v)
}

// NewFromInt64 constructs an element of T's concrete type from a signed
// integer. zero is only used to select the concrete type T; callers pass a
// fresh var zero T. Used by components (the preprocessor, pcs/bulletproofs)
// that build field elements generically across curves from small integers
// such as 1-based wire/position indices or a fixed blinding scalar.
func NewFromInt64[T Element[T]](zero T, v int64) T {
	return zero.FromBigInt(big.NewInt(v))
}

// RootsOfUnity returns the `order` distinct n-th roots of unity (n = order)
// of the field T, ordered as g^0, g^1, ..., g^(order-1), where g is a
// generator of the unique cyclic subgroup of F* of size order. It fails if
// order does not divide q-1 (Field.get_roots_of_unity's precondition).
func RootsOfUnity[T Element[T]](order uint64) ([]T, error) {
	var zero T
	qMinus1 := new(big.Int).Sub(zero.Modulus(), big.NewInt(1))
	orderBig := new(big.Int).SetUint64(order)
	if new(big.Int).Mod(qMinus1, orderBig).Sign() != 0 {
		return nil, ErrOrderDoesNotDivide
	}

	exp := new(big.Int).Div(qMinus1, orderBig)
	root := zero.PrimitiveRoot().Pow(exp)

	res := make([]T, order)
	prod := zero.One()
	for i := uint64(0); i < order; i++ {
		res[i] = prod
		prod = prod.Mul(root)
	}
	if !prod.Equal(zero.One()) {
		return nil, ErrRootsOfUnityFailed
	}
	return res, nil
}
