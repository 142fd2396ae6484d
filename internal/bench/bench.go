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

// Package bench wraps runtime/pprof and github.com/google/pprof/profile to
// give benchmark tests a CPU-profile capture-and-sanity-check helper. It is
// test tooling only: no component in this module reads a profile to make a
// decision at runtime.
package bench

import (
	"bytes"
	"fmt"
	"runtime/pprof"

	"github.com/google/pprof/profile"
)

// CPUProfile runs fn under runtime/pprof's CPU profiler and returns the
// recorded profile, already parsed back via profile.Parse so a caller can
// assert on sample counts without shelling out to `go tool pprof`.
func CPUProfile(fn func() error) (*profile.Profile, error) {
	var buf bytes.Buffer
	if err := pprof.StartCPUProfile(&buf); err != nil {
		return nil, fmt.Errorf("bench: start cpu profile: %w", err)
	}
	fnErr := fn()
	pprof.StopCPUProfile()
	if fnErr != nil {
		return nil, fmt.Errorf("bench: profiled function failed: %w", fnErr)
	}

	prof, err := profile.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("bench: parse profile: %w", err)
	}
	return prof, nil
}

// SampleCount returns the number of samples recorded in prof, a cheap
// sanity signal that the profiler actually captured something during fn.
func SampleCount(prof *profile.Profile) int {
	return len(prof.Sample)
}
