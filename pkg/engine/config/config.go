// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the engine's tunable knobs, independent of how
// they were set (UCI setoption, a CLI flag, or a hardcoded default).
package config

// Default is the configuration a freshly started engine uses before any
// setoption command or CLI flag overrides it.
var Default = Config{
	Threads:   1,
	HashMB:    16,
	UseStdout: true,
	MaxPly:    256,
}

// Config collects the engine's runtime-tunable parameters.
type Config struct {
	// Threads is the lazy-SMP worker count; at least 1.
	Threads int

	// HashMB is the requested transposition table size in megabytes.
	// tt.New rounds this down to the largest power-of-two cluster count
	// that fits the budget.
	HashMB int

	// UseStdout controls whether "info" lines are emitted during a
	// search; "bestmove" replies are sent whether it is set or not.
	UseStdout bool

	// MaxPly hard-caps the iterative deepening loop regardless of the
	// "go depth" argument.
	MaxPly int

	// Contempt and EvalWeights are accepted for forward-compatibility
	// with evaluation tuning but are not consumed anywhere in this
	// repository: weighting and contempt adjustment are evaluation
	// internals, out of scope here.
	Contempt    int
	EvalWeights map[string]int32
}

// Clamp normalizes out-of-range fields to their nearest valid value.
func (c *Config) Clamp() {
	if c.Threads < 1 {
		c.Threads = 1
	}
	if c.HashMB < 1 {
		c.HashMB = 1
	}
	if c.MaxPly < 1 {
		c.MaxPly = Default.MaxPly
	}
}
