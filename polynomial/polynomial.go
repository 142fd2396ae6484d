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

// Package polynomial implements dense univariate polynomials over a
// field.Element, mirroring original_source/zkps/algebra/polynomial.py:
// add/sub/mul/div with leading-zero truncation, Horner evaluation,
// Lagrange basis construction, and interpolation.
package polynomial

import (
	"errors"

	"github.com/nume-crypto/zkplonk/field"
)

// ErrLengthMismatch is returned by Interpolate when domain and values
// differ in length.
var ErrLengthMismatch = errors.New("polynomial: domain and values must have equal length")

// ErrIndexOutOfRange is returned by LagrangeBasis when k is not a valid
// domain index.
var ErrIndexOutOfRange = errors.New("polynomial: lagrange basis index out of range")

// ErrDuplicateDomainPoint is returned by LagrangeBasis when the divisor
// product vanishes, indicating the domain has a repeated point.
var ErrDuplicateDomainPoint = errors.New("polynomial: divisor does not divide cleanly, domain point repeated")

// ErrZeroLeadingCoefficient is returned by Div when the divisor's leading
// coefficient is zero (the divisor was not truncated).
var ErrZeroLeadingCoefficient = errors.New("polynomial: divisor has zero leading coefficient")

// Polynomial is a dense coefficient vector over F: Coeffs[i] is the
// coefficient of X^i. The zero polynomial is canonically represented as
// []T{zero}; whenever length > 1, the last coefficient is non-zero.
type Polynomial[T field.Element[T]] struct {
	Coeffs []T
}

// New builds a Polynomial from a coefficient vector, truncating trailing
// zero coefficients (but never shrinking below length 1).
func New[T field.Element[T]](coeffs []T) Polynomial[T] {
	c := append([]T(nil), coeffs...)
	return Polynomial[T]{Coeffs: truncate(c)}
}

// Zero returns the zero polynomial [0] in the field of zero.
func Zero[T field.Element[T]](zero T) Polynomial[T] {
	return Polynomial[T]{Coeffs: []T{zero}}
}

func truncate[T field.Element[T]](c []T) []T {
	if len(c) == 0 {
		var zero T
		return []T{zero}
	}
	for len(c) > 1 && c[len(c)-1].IsZero() {
		c = c[:len(c)-1]
	}
	return c
}

// Degree returns deg(f); the zero polynomial has degree 0 by this
// convention (len(Coeffs)-1 for the canonical [0] representation).
func (f Polynomial[T]) Degree() int {
	return len(f.Coeffs) - 1
}

func (f Polynomial[T]) zero() T {
	return f.Coeffs[0].Zero()
}

// Add returns f + g, truncated.
func (f Polynomial[T]) Add(g Polynomial[T]) Polynomial[T] {
	n := len(f.Coeffs)
	if len(g.Coeffs) > n {
		n = len(g.Coeffs)
	}
	zero := f.zero()
	res := make([]T, n)
	for i := 0; i < n; i++ {
		a, b := zero, zero
		if i < len(f.Coeffs) {
			a = f.Coeffs[i]
		}
		if i < len(g.Coeffs) {
			b = g.Coeffs[i]
		}
		res[i] = a.Add(b)
	}
	return Polynomial[T]{Coeffs: truncate(res)}
}

// Sub returns f - g, truncated.
func (f Polynomial[T]) Sub(g Polynomial[T]) Polynomial[T] {
	n := len(f.Coeffs)
	if len(g.Coeffs) > n {
		n = len(g.Coeffs)
	}
	zero := f.zero()
	res := make([]T, n)
	for i := 0; i < n; i++ {
		a, b := zero, zero
		if i < len(f.Coeffs) {
			a = f.Coeffs[i]
		}
		if i < len(g.Coeffs) {
			b = g.Coeffs[i]
		}
		res[i] = a.Sub(b)
	}
	return Polynomial[T]{Coeffs: truncate(res)}
}

// SubScalar subtracts a scalar from the constant coefficient only.
func (f Polynomial[T]) SubScalar(s T) Polynomial[T] {
	res := append([]T(nil), f.Coeffs...)
	res[0] = res[0].Sub(s)
	return Polynomial[T]{Coeffs: truncate(res)}
}

// AddScalar adds a scalar to the constant coefficient only.
func (f Polynomial[T]) AddScalar(s T) Polynomial[T] {
	res := append([]T(nil), f.Coeffs...)
	res[0] = res[0].Add(s)
	return Polynomial[T]{Coeffs: truncate(res)}
}

// Mul returns the schoolbook product f*g; deg(f*g) = deg(f)+deg(g).
func (f Polynomial[T]) Mul(g Polynomial[T]) Polynomial[T] {
	zero := f.zero()
	res := make([]T, len(f.Coeffs)+len(g.Coeffs)-1)
	for i := range res {
		res[i] = zero
	}
	for i, a := range f.Coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range g.Coeffs {
			res[i+j] = res[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial[T]{Coeffs: truncate(res)}
}

// MulScalar distributes s across every coefficient.
func (f Polynomial[T]) MulScalar(s T) Polynomial[T] {
	res := make([]T, len(f.Coeffs))
	for i, c := range f.Coeffs {
		res[i] = c.Mul(s)
	}
	return Polynomial[T]{Coeffs: truncate(res)}
}

// Div performs Euclidean division by a non-constant polynomial, returning
// (quotient, remainder) with deg(remainder) < deg(other). other must be
// truncated (non-zero leading coefficient); DivScalar handles the scalar
// case.
func (f Polynomial[T]) Div(other Polynomial[T]) (Polynomial[T], Polynomial[T], error) {
	zero := f.zero()
	den := other.Coeffs
	if den[len(den)-1].IsZero() {
		return Polynomial[T]{}, Polynomial[T]{}, ErrZeroLeadingCoefficient
	}
	if len(f.Coeffs) < len(den) {
		return Polynomial[T]{Coeffs: []T{zero}}, Polynomial[T]{Coeffs: append([]T(nil), f.Coeffs...)}, nil
	}

	num := append([]T(nil), f.Coeffs...)
	quo := make([]T, len(num)-len(den)+1)
	for len(num) >= len(den) {
		lead := num[len(num)-1]
		qi := len(num) - len(den)
		if lead.IsZero() {
			quo[qi] = zero
			num = num[:len(num)-1]
			continue
		}
		q, err := lead.Div(den[len(den)-1])
		if err != nil {
			return Polynomial[T]{}, Polynomial[T]{}, err
		}
		quo[qi] = q
		for i := 0; i < len(den); i++ {
			idx := len(num) - 1 - i
			num[idx] = num[idx].Sub(q.Mul(den[len(den)-1-i]))
		}
		num = num[:len(num)-1]
	}

	return Polynomial[T]{Coeffs: truncate(quo)}, Polynomial[T]{Coeffs: truncate(num)}, nil
}

// DivScalar divides every coefficient by the non-zero scalar s, with an
// exact (zero) remainder.
func (f Polynomial[T]) DivScalar(s T) (Polynomial[T], Polynomial[T], error) {
	res := make([]T, len(f.Coeffs))
	for i, c := range f.Coeffs {
		q, err := c.Div(s)
		if err != nil {
			return Polynomial[T]{}, Polynomial[T]{}, err
		}
		res[i] = q
	}
	return Polynomial[T]{Coeffs: truncate(res)}, Zero(f.zero()), nil
}

// Equal reports whether f and g have identical (truncated) coefficients.
func (f Polynomial[T]) Equal(g Polynomial[T]) bool {
	if len(f.Coeffs) != len(g.Coeffs) {
		return false
	}
	for i := range f.Coeffs {
		if !f.Coeffs[i].Equal(g.Coeffs[i]) {
			return false
		}
	}
	return true
}

// Evaluate computes f(x) via Horner's method in O(deg f).
func (f Polynomial[T]) Evaluate(x T) T {
	res := f.zero()
	for i := len(f.Coeffs) - 1; i >= 0; i-- {
		res = res.Mul(x).Add(f.Coeffs[i])
	}
	return res
}

// EvaluateOnDomain evaluates f at every point of domain, in order.
func (f Polynomial[T]) EvaluateOnDomain(domain []T) []T {
	res := make([]T, len(domain))
	for i, x := range domain {
		res[i] = f.Evaluate(x)
	}
	return res
}

// LagrangeBasis returns the k-th Lagrange basis polynomial for domain:
// prod_{i != k} (X - domain[i]) / (domain[k] - domain[i]).
func LagrangeBasis[T field.Element[T]](domain []T, k int) (Polynomial[T], error) {
	if k < 0 || k >= len(domain) {
		return Polynomial[T]{}, ErrIndexOutOfRange
	}
	zero := domain[0].Zero()
	one := domain[0].One()

	num := Polynomial[T]{Coeffs: []T{one}}
	divisor := one
	for i, v := range domain {
		if i == k {
			continue
		}
		num = num.Mul(Polynomial[T]{Coeffs: []T{v.Neg(), one}})
		divisor = divisor.Mul(domain[k].Sub(v))
	}
	if divisor.IsZero() {
		return Polynomial[T]{}, ErrDuplicateDomainPoint
	}

	quo, rem, err := num.DivScalar(divisor)
	if err != nil {
		return Polynomial[T]{}, err
	}
	if !rem.Equal(Zero(zero)) {
		return Polynomial[T]{}, ErrDuplicateDomainPoint
	}
	return quo, nil
}

// Interpolate returns the unique polynomial of degree < len(domain) with
// f(domain[k]) = values[k] for every k.
func Interpolate[T field.Element[T]](domain []T, values []T) (Polynomial[T], error) {
	if len(domain) != len(values) {
		return Polynomial[T]{}, ErrLengthMismatch
	}
	zero := domain[0].Zero()
	res := Zero(zero)
	for k := range domain {
		basis, err := LagrangeBasis(domain, k)
		if err != nil {
			return Polynomial[T]{}, err
		}
		res = res.Add(basis.MulScalar(values[k]))
	}
	return res, nil
}
