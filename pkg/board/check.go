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

package board

import (
	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/piece"
)

// updateCheckInfo recomputes the current state's checkers, pin data and
// check-giving squares from the board's placement. Called after every
// make (including null moves) and after FEN parsing, since all four
// depend on the full occupancy rather than being cheaply incrementable
// move-by-move; unmake restores the previous State, which already
// holds them.
func (b *Board) updateCheckInfo() {
	us, them := b.SideToMove, b.SideToMove.Other()
	ourKing, theirKing := b.kings[us], b.kings[them]

	b.state.Checkers = b.attackersTo(ourKing, b.Occupied()) & b.colors[them]

	b.state.BlockersKing[piece.White], b.state.PinnersKing[piece.White] =
		b.sliderBlockers(b.colors[piece.Black], b.kings[piece.White])
	b.state.BlockersKing[piece.Black], b.state.PinnersKing[piece.Black] =
		b.sliderBlockers(b.colors[piece.White], b.kings[piece.Black])

	occ := b.Occupied()
	b.state.CheckSquares[piece.Pawn] = attacks.Pawn(them, theirKing)
	b.state.CheckSquares[piece.Knight] = attacks.Knight(theirKing)
	b.state.CheckSquares[piece.Bishop] = attacks.Bishop(theirKing, occ)
	b.state.CheckSquares[piece.Rook] = attacks.Rook(theirKing, occ)
	b.state.CheckSquares[piece.Queen] = b.state.CheckSquares[piece.Bishop] | b.state.CheckSquares[piece.Rook]
	b.state.CheckSquares[piece.King] = bitboard.Empty
}
