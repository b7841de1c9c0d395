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

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/piece"
)

// Evaluate computes a static, side-relative centipawn score for b: the
// sum of material, piece-square, and pawn-structure terms, tapered by
// the position's game phase. pt caches the pawn-structure term across
// calls that share a pawn_key; pass a fresh *PawnTable per search
// worker (it is not safe for concurrent use by multiple goroutines).
func Evaluate(b *board.Board, pt *PawnTable) Eval {
	var score Score
	var phase int32

	for t := piece.Pawn; t <= piece.King; t++ {
		for c := piece.White; c < piece.ColorN; c++ {
			bb := b.PiecesOf(c, t)
			phase += phaseInc[t] * int32(bb.Count())

			for bb != 0 {
				sq := bb.Pop()
				pieceScore := PieceSquare(piece.New(t, c), int(sq))
				if c == piece.Black {
					pieceScore = -pieceScore
				}
				score += pieceScore
			}
		}
	}

	whitePawns := b.PiecesOf(piece.White, piece.Pawn)
	blackPawns := b.PiecesOf(piece.Black, piece.Pawn)
	entry := pt.Probe(whitePawns, blackPawns, b.PawnKey())
	score += entry.score

	eval := Taper(score, phase)
	if b.SideToMove == piece.Black {
		eval = -eval
	}
	return eval
}
