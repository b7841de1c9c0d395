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
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// seeValue gives the material value static exchange evaluation trades
// against; deliberately coarser than pkg/search/eval's tapered scores,
// since SEE only needs a total ordering of piece worth.
var seeValue = [piece.TypeN]int32{
	piece.Pawn:   100,
	piece.Knight: 320,
	piece.Bishop: 330,
	piece.Rook:   500,
	piece.Queen:  900,
	piece.King:   20000,
}

// SeeGE reports whether the static exchange evaluation of playing m is
// greater than or equal to threshold, walking the capture sequence on
// the target square from least to most valuable attacker on each side
// without actually making any moves.
func (b *Board) SeeGE(m move.Move, threshold int32) bool {
	if m.IsCastle() {
		return threshold <= 0
	}

	from, to := m.Source(), m.Target()

	var gain [32]int32
	depth := 0

	movedType := b.PieceAt(from).Type()
	occ := b.Occupied() &^ bitboard.FromSquare(from)

	var capturedValue int32
	if m.IsEnPassant() {
		capturedValue = seeValue[piece.Pawn]
		capSq := square.New(to.File(), from.Rank())
		occ &^= bitboard.FromSquare(capSq)
	} else if captured := b.PieceAt(to); captured != piece.NoPiece {
		capturedValue = seeValue[captured.Type()]
	}
	if m.IsPromotion() {
		movedType = promotionType(m)
		capturedValue += seeValue[movedType] - seeValue[piece.Pawn]
	}

	gain[0] = capturedValue
	side := b.SideToMove.Other()
	attackerValue := seeValue[movedType]

	// placement still has the moved piece on from; masking with occ keeps
	// it from being picked again as a recapturer
	attackers := b.attackersTo(to, occ) & occ

	for {
		depth++
		gain[depth] = attackerValue - gain[depth-1]
		if max(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		ourAttackers := attackers & b.colors[side]
		if ourAttackers == bitboard.Empty {
			break
		}

		next, nextSq := leastValuableAttacker(b, ourAttackers)
		occ &^= bitboard.FromSquare(nextSq)
		attackerValue = seeValue[next]

		// re-probe sliders once a blocker is removed from the ray
		attackers = (attackers &^ bitboard.FromSquare(nextSq)) |
			(attacks.Bishop(to, occ) & (b.Pieces(piece.Bishop) | b.Pieces(piece.Queen)) & occ) |
			(attacks.Rook(to, occ) & (b.Pieces(piece.Rook) | b.Pieces(piece.Queen)) & occ)

		side = side.Other()

		if depth >= 31 {
			break
		}
	}

	for depth--; depth > 0; depth-- {
		gain[depth-1] = -max(-gain[depth-1], gain[depth])
	}

	return gain[0] >= threshold
}

func leastValuableAttacker(b *Board, attackers bitboard.Board) (piece.Type, square.Square) {
	for t := piece.Pawn; t <= piece.King; t++ {
		if bb := attackers & b.Pieces(t); bb != bitboard.Empty {
			return t, bb.LSB()
		}
	}
	return piece.NoType, square.None
}

func max(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
