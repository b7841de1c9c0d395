// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package eval

import "fmt"

// MatedIn returns the score for being checkmated in the given number of
// plies from the current node; longer mating lines score higher (less
// negative) so search prefers delaying a loss.
func MatedIn(ply int) Eval {
	return -Mate + Eval(ply)
}

// MateIn returns the score for delivering checkmate in the given number
// of plies from the current node.
func MateIn(ply int) Eval {
	return Mate - Eval(ply)
}

// RandDraw returns a small evaluation jitter derived from seed, used as
// the draw score so a search doesn't play every repetition identically
// and get stuck failing to make progress against a weaker opponent.
func RandDraw(seed int) Eval {
	return Eval(4 - (seed & 7))
}

// String renders e as a UCI "info score" field: "cp <n>" for ordinary
// scores, "mate <n>" when e is within MateThreshold of a forced mate.
func (e Eval) String() string {
	switch {
	case e > MateThreshold:
		plies := Mate - e
		return fmt.Sprintf("mate %d", (int(plies)+1)/2)
	case e < -MateThreshold:
		plies := Mate + e
		return fmt.Sprintf("mate -%d", (int(plies)+1)/2)
	default:
		return fmt.Sprintf("cp %d", e)
	}
}
