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
	"errors"

	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// ErrIllegalUndo is returned by UnmakeMove when the current state has
// no previous frame to unwind to, i.e. it is the root of its chain.
var ErrIllegalUndo = errors.New("board: no move to undo")

// MakeMove plays m, assumed pseudo-legal in the current position, and
// links a freshly built State to the one it replaces. The previous
// frame is left untouched, so any other Board sharing it via
// ShallowClone is unaffected.
func (b *Board) MakeMove(m move.Move) {
	prev := b.state
	st := prev.clone()
	st.Rule50++
	st.Ply++
	st.PrevMove = m
	st.Captured = piece.NoType

	us, them := b.SideToMove, b.SideToMove.Other()
	from, to := m.Source(), m.Target()
	p := b.PieceAt(from)

	st.Zobrist ^= zobrist.Castling[st.Castling]
	if st.EnPassant != square.None {
		st.Zobrist ^= zobrist.EnPassantFile[st.EnPassant.File()]
	}
	st.EnPassant = square.None

	switch {
	case m.IsCastle():
		rookFrom, rookTo := castleRookFrom(to), castleRookTo(to)
		rook := piece.New(piece.Rook, us)
		b.clearPiece(from, p, st)
		b.placePiece(to, p, st)
		b.clearPiece(rookFrom, rook, st)
		b.placePiece(rookTo, rook, st)

	case m.IsEnPassant():
		capSq := square.New(to.File(), from.Rank())
		captured := b.PieceAt(capSq)
		st.Captured = captured.Type()
		b.clearPiece(capSq, captured, st)
		b.clearPiece(from, p, st)
		b.placePiece(to, p, st)
		st.Rule50 = 0

	case m.IsPromotion():
		if m.IsCapture() {
			captured := b.PieceAt(to)
			st.Captured = captured.Type()
			b.clearPiece(to, captured, st)
		}
		b.clearPiece(from, p, st)
		promoted := piece.New(promotionType(m), us)
		b.placePiece(to, promoted, st)
		st.Rule50 = 0

	default:
		if m.IsCapture() {
			captured := b.PieceAt(to)
			st.Captured = captured.Type()
			b.clearPiece(to, captured, st)
			st.Rule50 = 0
		}
		b.clearPiece(from, p, st)
		b.placePiece(to, p, st)
		if p.Type() == piece.Pawn {
			st.Rule50 = 0
		}
		if m.IsDoublePawnPush() {
			epSq := square.New(from.File(), (from.Rank()+to.Rank())/2)
			st.EnPassant = epSq
		}
	}

	st.Castling &^= castling.RightsLost[from] | castling.RightsLost[to]

	st.Zobrist ^= zobrist.Castling[st.Castling]
	if st.EnPassant != square.None {
		st.Zobrist ^= zobrist.EnPassantFile[st.EnPassant.File()]
	}
	st.Zobrist ^= zobrist.SideToMove

	b.SideToMove = them
	if them == piece.White {
		b.FullMoves++
	}

	b.state = st
	b.updateCheckInfo()
}

// UnmakeMove reverses the last move played by MakeMove, restoring the
// placement and the previous State. m must be the same move that was
// just made.
func (b *Board) UnmakeMove(m move.Move) error {
	if b.state.Prev == nil {
		return ErrIllegalUndo
	}

	them := b.SideToMove
	us := them.Other()
	from, to := m.Source(), m.Target()

	captured := b.state.Captured
	st := b.state

	switch {
	case m.IsCastle():
		rookFrom, rookTo := castleRookFrom(to), castleRookTo(to)
		king := piece.New(piece.King, us)
		rook := piece.New(piece.Rook, us)
		b.move_(to, from, king)
		b.move_(rookTo, rookFrom, rook)

	case m.IsEnPassant():
		b.move_(to, from, piece.New(piece.Pawn, us))
		capSq := square.New(to.File(), from.Rank())
		b.squares[capSq] = piece.NoPiece
		b.placeRaw(capSq, piece.New(piece.Pawn, them))

	case m.IsPromotion():
		b.squares[to] = piece.NoPiece
		b.pieces[promotionType(m)].Unset(to)
		b.colors[us].Unset(to)
		b.placeRaw(from, piece.New(piece.Pawn, us))
		if m.IsCapture() {
			b.placeRaw(to, piece.New(captured, them))
		}

	default:
		b.move_(to, from, piece.New(pieceTypeFromUnmake(b, to, us), us))
		if m.IsCapture() {
			b.placeRaw(to, piece.New(captured, them))
		}
	}

	b.SideToMove = us
	if them == piece.White {
		b.FullMoves--
	}

	b.state = st.Prev
	return nil
}

// pieceTypeFromUnmake recovers the moved piece's type while the piece
// still sits on `to` (i.e. before move_ has relocated it back to
// `from`), since UnmakeMove's default case does not otherwise retain it.
func pieceTypeFromUnmake(b *Board, to square.Square, _ piece.Color) piece.Type {
	return b.squares[to].Type()
}

// move_ relocates the piece p from `from` to `to` in the raw placement
// arrays only, without touching the Zobrist hash (the State being
// restored already holds the correct hash).
func (b *Board) move_(from, to square.Square, p piece.Piece) {
	b.squares[from] = piece.NoPiece
	b.pieces[p.Type()].Unset(from)
	b.colors[p.Color()].Unset(from)
	b.placeRaw(to, p)
}

func (b *Board) placeRaw(sq square.Square, p piece.Piece) {
	b.squares[sq] = p
	b.pieces[p.Type()].Set(sq)
	b.colors[p.Color()].Set(sq)
	if p.Type() == piece.King {
		b.kings[p.Color()] = sq
	}
}

// nonPawnValue gives the rough material value used only for the
// NonPawnMaterial endgame-detection aggregate, independent of the
// tapered evaluation scores pkg/search/eval computes; keeping the two
// separate avoids a board -> eval import cycle.
var nonPawnValue = [piece.TypeN]int32{
	piece.Knight: 320,
	piece.Bishop: 330,
	piece.Rook:   500,
	piece.Queen:  900,
}

// clearPiece removes p from sq, updating placement and the
// in-progress state's Zobrist/material bookkeeping in lockstep.
func (b *Board) clearPiece(sq square.Square, p piece.Piece, st *State) {
	oldCount := b.PiecesOf(p.Color(), p.Type()).Count()

	b.squares[sq] = piece.NoPiece
	b.pieces[p.Type()].Unset(sq)
	b.colors[p.Color()].Unset(sq)

	st.Zobrist ^= zobrist.PieceSquare[p][sq]
	if p.Type() == piece.Pawn {
		st.PawnKey ^= zobrist.PieceSquare[p][sq]
	} else if p.Type() != piece.King {
		st.NonPawnMaterial[p.Color()] -= nonPawnValue[p.Type()]
	}

	st.MaterialKey ^= zobrist.MaterialKeyTerm(p, oldCount) ^ zobrist.MaterialKeyTerm(p, oldCount-1)
}

// placePiece adds p to sq, updating placement and the in-progress
// state's Zobrist/material bookkeeping in lockstep.
func (b *Board) placePiece(sq square.Square, p piece.Piece, st *State) {
	oldCount := b.PiecesOf(p.Color(), p.Type()).Count()

	b.squares[sq] = p
	b.pieces[p.Type()].Set(sq)
	b.colors[p.Color()].Set(sq)
	if p.Type() == piece.King {
		b.kings[p.Color()] = sq
	}

	st.Zobrist ^= zobrist.PieceSquare[p][sq]
	if p.Type() == piece.Pawn {
		st.PawnKey ^= zobrist.PieceSquare[p][sq]
	} else if p.Type() != piece.King {
		st.NonPawnMaterial[p.Color()] += nonPawnValue[p.Type()]
	}

	st.MaterialKey ^= zobrist.MaterialKeyTerm(p, oldCount) ^ zobrist.MaterialKeyTerm(p, oldCount+1)
}

// MakeNullMove passes the turn without moving a piece, used by search's
// null-move pruning. The en-passant square is always cleared, since a
// pass forfeits the one-move window to capture en passant.
func (b *Board) MakeNullMove() {
	prev := b.state
	st := prev.clone()
	st.Ply++
	st.Rule50++
	st.PrevMove = move.Null
	st.Captured = piece.NoType

	st.Zobrist ^= zobrist.SideToMove
	if st.EnPassant != square.None {
		st.Zobrist ^= zobrist.EnPassantFile[st.EnPassant.File()]
		st.EnPassant = square.None
	}

	b.SideToMove = b.SideToMove.Other()
	b.state = st
	b.updateCheckInfo()
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove() error {
	if b.state.Prev == nil {
		return ErrIllegalUndo
	}
	b.SideToMove = b.SideToMove.Other()
	b.state = b.state.Prev
	return nil
}
