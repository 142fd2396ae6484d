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

package bulletproofs

import (
	"github.com/nume-crypto/zkplonk/field"
	"github.com/nume-crypto/zkplonk/group"
)

// BN254CRS is the Bulletproofs CRS instantiated over BN254's G1 subgroup.
type BN254CRS = CRS[field.BN254Scalar, group.BN254Group]

// SetupBN254 derives a BN254CRS supporting vectors of length up to d.
func SetupBN254(d int) BN254CRS {
	return Setup[field.BN254Scalar, group.BN254Group](d)
}

// BN254Scheme is the Bulletproofs PCS over BN254.
type BN254Scheme = Scheme[field.BN254Scalar, group.BN254Group]

// NewBN254 returns a Bulletproofs scheme backed by crs, over BN254.
func NewBN254(crs BN254CRS) *BN254Scheme {
	return New[field.BN254Scalar, group.BN254Group](crs)
}
