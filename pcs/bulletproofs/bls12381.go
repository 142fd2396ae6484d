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

// BLS12381CRS is the Bulletproofs CRS instantiated over BLS12-381's G1
// subgroup.
type BLS12381CRS = CRS[field.BLS12381Scalar, group.BLS12381Group]

// SetupBLS12381 derives a BLS12381CRS supporting vectors of length up to d.
func SetupBLS12381(d int) BLS12381CRS {
	return Setup[field.BLS12381Scalar, group.BLS12381Group](d)
}

// BLS12381Scheme is the Bulletproofs PCS over BLS12-381.
type BLS12381Scheme = Scheme[field.BLS12381Scalar, group.BLS12381Group]

// NewBLS12381 returns a Bulletproofs scheme backed by crs, over BLS12-381.
func NewBLS12381(crs BLS12381CRS) *BLS12381Scheme {
	return New[field.BLS12381Scalar, group.BLS12381Group](crs)
}
