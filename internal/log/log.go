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

// Package log provides the package-level structured logger used across
// zkplonk. It is grounded on github.com/rs/zerolog, already present in
// the dependency graph as gnark's own logging backend (see
// github.com/consensys/gnark/logger), and replaces the Python reference
// implementation's ad hoc print(...) diagnostics (original_source/zkps/*)
// with leveled, structured output.
package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger every zkplonk component writes
// through. It defaults to info level with a human-readable console writer;
// call SetLevel or SetOutput to reconfigure it (e.g. from a CLI harness or
// test main).
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().
	Timestamp().
	Logger().
	Level(zerolog.InfoLevel)

// SetLevel adjusts the minimum severity Logger emits.
func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}

// SetOutput redirects Logger to w, preserving its configured level.
func SetOutput(w zerolog.ConsoleWriter) {
	level := Logger.GetLevel()
	Logger = zerolog.New(w).With().Timestamp().Logger().Level(level)
}
