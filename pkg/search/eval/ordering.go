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
	"math"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
)

// MoveScore is the type move-ordering scores are expressed in, fed
// straight to move.ScoreMoves/move.OrderedMoveList.
type MoveScore int32

// Move-ordering score bands: the hash move always sorts first, then
// captures/promotions ranked by MVV-LVA, then quiets at 0 (further
// split by killer/history scores at the search layer).
const (
	HashMoveScore MoveScore = math.MaxInt32
	mvvLvaOffset  MoveScore = 10000
	QuietScore    MoveScore = 0
)

// mvvLva[victim][attacker] ranks capturing a valuable piece with a
// cheap one above every other capture ordering.
var mvvLva = [piece.TypeN][piece.TypeN]MoveScore{
	piece.Pawn:   {piece.Pawn: 15, piece.Knight: 14, piece.Bishop: 13, piece.Rook: 12, piece.Queen: 11, piece.King: 10},
	piece.Knight: {piece.Pawn: 25, piece.Knight: 24, piece.Bishop: 23, piece.Rook: 22, piece.Queen: 21, piece.King: 20},
	piece.Bishop: {piece.Pawn: 35, piece.Knight: 34, piece.Bishop: 33, piece.Rook: 32, piece.Queen: 31, piece.King: 30},
	piece.Rook:   {piece.Pawn: 45, piece.Knight: 44, piece.Bishop: 43, piece.Rook: 42, piece.Queen: 41, piece.King: 40},
	piece.Queen:  {piece.Pawn: 55, piece.Knight: 54, piece.Bishop: 53, piece.Rook: 52, piece.Queen: 51, piece.King: 50},
}

// OrderingFunc returns a move-ordering scorer for b: hashMove (usually
// the transposition table's stored best move, or move.Null) is always
// ranked first, captures/promotions next by MVV-LVA, everything else
// last.
func OrderingFunc(b *board.Board, hashMove move.Move) func(move.Move) MoveScore {
	return func(m move.Move) MoveScore {
		switch {
		case m == hashMove:
			return HashMoveScore

		case m.IsCapture():
			attacker := b.PieceAt(m.Source()).Type()
			victim := capturedType(b, m)
			return mvvLvaOffset + mvvLva[victim][attacker]

		case m.IsPromotion():
			return mvvLvaOffset

		default:
			return QuietScore
		}
	}
}

// capturedType returns the type of the piece m removes, handling
// en-passant specially since the captured pawn isn't on the move's
// target square.
func capturedType(b *board.Board, m move.Move) piece.Type {
	if m.IsEnPassant() {
		return piece.Pawn
	}
	return b.PieceAt(m.Target()).Type()
}
