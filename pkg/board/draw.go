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
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// IsRepetition reports whether the current position is a threefold
// repetition: its Zobrist key has already occurred at least twice
// before the current occurrence since the last irreversible move
// (capture, pawn push, or loss of castling rights truncates the walk
// since Rule50 was reset there too). The current occurrence itself is
// not counted towards the two prior ones.
//
// This walks the State chain rather than a separate history table,
// since every reachable frame back to the last zeroing of Rule50 is
// still linked via Prev.
func (b *Board) IsRepetition() bool {
	st := b.state
	if st.Rule50 < 4 || st.Prev == nil || st.Prev.Prev == nil {
		return false
	}

	prior := 0
	walk := st.Prev.Prev // same side to move two plies back
	for i := int16(2); i <= st.Rule50; i += 2 {
		if walk.Zobrist == st.Zobrist {
			prior++
			if prior >= 2 {
				return true
			}
		}
		if walk.Prev == nil || walk.Prev.Prev == nil {
			break
		}
		walk = walk.Prev.Prev
	}
	return false
}

// IsFiftyMoveDraw reports whether the fifty-move rule allows a draw
// claim (rule_50 counts plies since the last capture or pawn push, so
// 50 of them is fifty moves without one).
func (b *Board) IsFiftyMoveDraw() bool {
	return b.state.Rule50 >= 50
}

// IsInsufficientMaterial reports whether neither side has enough
// material to ever deliver checkmate: king vs king, king vs king+minor,
// or king+bishop vs king+bishop with same-colored bishops.
func (b *Board) IsInsufficientMaterial() bool {
	if b.Pieces(piece.Pawn) != 0 || b.Pieces(piece.Rook) != 0 || b.Pieces(piece.Queen) != 0 {
		return false
	}

	whiteMinors := b.PiecesOf(piece.White, piece.Knight).Count() + b.PiecesOf(piece.White, piece.Bishop).Count()
	blackMinors := b.PiecesOf(piece.Black, piece.Knight).Count() + b.PiecesOf(piece.Black, piece.Bishop).Count()

	if whiteMinors == 0 && blackMinors == 0 {
		return true
	}
	if whiteMinors+blackMinors == 1 {
		return true
	}
	if whiteMinors == 1 && blackMinors == 1 &&
		b.Pieces(piece.Knight) == 0 {
		whiteBishops := b.PiecesOf(piece.White, piece.Bishop)
		blackBishops := b.PiecesOf(piece.Black, piece.Bishop)
		if whiteBishops != 0 && blackBishops != 0 {
			return isLightSquare(whiteBishops.LSB()) == isLightSquare(blackBishops.LSB())
		}
	}

	return false
}

func isLightSquare(sq square.Square) bool {
	return (int(sq.File())+int(sq.Rank()))%2 != 0
}

// IsDraw reports whether the position is drawn by any rule the search
// is expected to honor on its own: repetition, the fifty-move rule, or
// insufficient material.
func (b *Board) IsDraw() bool {
	return b.IsFiftyMoveDraw() || b.IsInsufficientMaterial() || b.IsRepetition()
}

// hasNoLegalMoves reports whether the side to move has no legal move,
// the shared condition behind both Checkmate and Stalemate.
func (b *Board) hasNoLegalMoves() bool {
	var list []move.Move
	list = b.GenerateMoves(list, Legal, All)
	return len(list) == 0
}

// Checkmate reports whether the side to move is in check with no legal
// move to escape it.
func (b *Board) Checkmate() bool {
	return b.InCheck() && b.hasNoLegalMoves()
}

// Stalemate reports whether the side to move is not in check but has
// no legal move.
func (b *Board) Stalemate() bool {
	return !b.InCheck() && b.hasNoLegalMoves()
}
