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

// Package eval computes a tapered material-plus-piece-square static
// evaluation of a position, plus a pawn-structure hash table caching
// the doubled, isolated and passed-pawn terms.
package eval

import "github.com/kestrelchess/kestrel/pkg/piece"

// Eval is a centipawn evaluation score, from the perspective of the
// side being evaluated (positive favors that side).
type Eval int32

// Mate-adjacent bounds: any score whose absolute value exceeds
// MateThreshold encodes "mate in N plies", letting search propagate
// mate scores through the same int type as ordinary evaluations.
const (
	Mate          Eval = 32000
	MateThreshold Eval = Mate - 512
	Infinite      Eval = Mate + 1
	Draw          Eval = 0
)

// Score packs a middle-game and an end-game evaluation into one value,
// the same trick used throughout the pack: MG in the low 32 bits, EG in
// the high 32 bits, with a +2^31 bias on EG so both halves round the
// same way when added.
type Score int64

// S builds a Score from its middle-game and end-game components.
func S(mg, eg Eval) Score {
	return Score(uint64(uint32(eg))<<32) + Score(mg)
}

func (s Score) MG() Eval { return Eval(int32(uint32(uint64(s)))) }
func (s Score) EG() Eval { return Eval(int32(uint32(uint64(s+(1<<31)) >> 32))) }

// phaseInc is the game-phase contribution of one piece of the given
// type, used to taper between the middle-game and end-game scores.
var phaseInc = [piece.TypeN]int32{
	piece.Pawn:   0,
	piece.Knight: 1,
	piece.Bishop: 1,
	piece.Rook:   2,
	piece.Queen:  4,
}

// MaxPhase is the phase value of the starting position (4 knights +
// 4 bishops + 4 rooks + 2 queens).
const MaxPhase = 4*1 + 4*1 + 4*2 + 2*4

// Taper linearly interpolates between a middle-game and end-game score
// using phase (clamped to [0, MaxPhase]) as the middle-game weight.
func Taper(score Score, phase int32) Eval {
	if phase > MaxPhase {
		phase = MaxPhase
	}
	if phase < 0 {
		phase = 0
	}
	mg, eg := int32(score.MG()), int32(score.EG())
	return Eval((mg*phase + eg*(MaxPhase-phase)) / MaxPhase)
}
