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

// Package board implements a bitboard chess position: piece placement,
// FEN parsing/rendering, make/unmake, legal and pseudo-legal move
// generation, and the query operations search needs (attackers, static
// exchange evaluation, draw detection).
package board

import (
	"fmt"

	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Board is a single chess position. It owns the 0x88-free mailbox/
// bitboard placement data directly (cheap to copy, always fully owned)
// and a pointer to the head of its State chain (shared, never mutated
// in place; see State).
type Board struct {
	squares  [square.N]piece.Piece
	pieces   [piece.TypeN]bitboard.Board
	colors   [piece.ColorN]bitboard.Board
	kings    [piece.ColorN]square.Square

	SideToMove piece.Color
	FullMoves  int

	state *State
}

// New creates the standard chess starting position.
func New() *Board {
	b, err := NewFromFEN(StartFEN)
	if err != nil {
		panic("board: starting position FEN is malformed: " + err.Error())
	}
	return b
}

// ShallowClone returns an independent Board that starts out identical
// to b, sharing b's entire State chain. It is O(1): no State is copied,
// since States are immutable once built. The clone's own moves build
// their own new frames on top of the shared chain without touching it.
func (b *Board) ShallowClone() *Board {
	n := *b
	return &n
}

func (b *Board) state_() *State { return b.state }

// Occupied returns every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.colors[piece.White] | b.colors[piece.Black]
}

// Colored returns every square occupied by a piece of color c.
func (b *Board) Colored(c piece.Color) bitboard.Board {
	return b.colors[c]
}

// Pieces returns every square occupied by a piece of type t, of either
// color.
func (b *Board) Pieces(t piece.Type) bitboard.Board {
	return b.pieces[t]
}

// PiecesOf returns every square occupied by a piece of type t and
// color c.
func (b *Board) PiecesOf(c piece.Color, t piece.Type) bitboard.Board {
	return b.pieces[t] & b.colors[c]
}

// PieceAt returns the piece on sq, or piece.NoPiece if it is empty.
func (b *Board) PieceAt(sq square.Square) piece.Piece {
	return b.squares[sq]
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c piece.Color) square.Square {
	return b.kings[c]
}

// Checkers returns every enemy piece currently giving check to the
// side to move.
func (b *Board) Checkers() bitboard.Board {
	return b.state.Checkers
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return b.state.Checkers != bitboard.Empty
}

// Rule50 returns the half-move clock since the last capture or pawn
// push, per the fifty-move rule.
func (b *Board) Rule50() int16 {
	return b.state.Rule50
}

// Ply returns the number of half-moves played since the root position.
func (b *Board) Ply() uint16 {
	return b.state.Ply
}

// EnPassant returns the current en-passant target square, or
// square.None.
func (b *Board) EnPassant() square.Square {
	return b.state.EnPassant
}

// ZobristKey returns the position's full Zobrist hash.
func (b *Board) ZobristKey() uint64 {
	return uint64(b.state.Zobrist)
}

// PawnKey returns the Zobrist hash of the pawn structure alone.
func (b *Board) PawnKey() uint64 {
	return uint64(b.state.PawnKey)
}

// MaterialKey returns the Zobrist hash of the material configuration
// alone (piece counts, ignoring square placement).
func (b *Board) MaterialKey() uint64 {
	return uint64(b.state.MaterialKey)
}

// NonPawnMaterial returns the non-pawn material value for c, in the
// board's own coarse units (nonPawnValue: knight 320, bishop 330, rook
// 500, queen 900), not pkg/search/eval's tapered piece values.
func (b *Board) NonPawnMaterial(c piece.Color) int32 {
	return b.state.NonPawnMaterial[c]
}

// attackersTo returns every piece of either color attacking sq, given
// the occupancy occ (passed explicitly so callers can probe hypothetical
// occupancies, e.g. while SeeGE removes attackers from the exchange).
func (b *Board) attackersTo(sq square.Square, occ bitboard.Board) bitboard.Board {
	return (attacks.Pawn(piece.White, sq) & b.PiecesOf(piece.Black, piece.Pawn)) |
		(attacks.Pawn(piece.Black, sq) & b.PiecesOf(piece.White, piece.Pawn)) |
		(attacks.Knight(sq) & b.Pieces(piece.Knight)) |
		(attacks.King(sq) & b.Pieces(piece.King)) |
		(attacks.Bishop(sq, occ) & (b.Pieces(piece.Bishop) | b.Pieces(piece.Queen))) |
		(attacks.Rook(sq, occ) & (b.Pieces(piece.Rook) | b.Pieces(piece.Queen)))
}

// AttackersTo returns every piece of either color attacking sq on the
// current board occupancy.
func (b *Board) AttackersTo(sq square.Square) bitboard.Board {
	return b.attackersTo(sq, b.Occupied())
}

// IsAttacked reports whether sq is attacked by a piece of color by.
func (b *Board) IsAttacked(sq square.Square, by piece.Color) bool {
	return b.attackersTo(sq, b.Occupied())&b.colors[by] != bitboard.Empty
}

// sliderBlockers computes, for the king on ksq, the set of pieces (of
// either color) that sit on a line between ksq and an enemy slider and
// would expose ksq to check if they moved; pinners receives the enemy
// sliders responsible, indexed the same way. It finds the sliders that
// would attack ksq on an empty board, and for each, intersects the
// squares between it and ksq with the real occupancy (minus those
// sliders): exactly one piece there makes that piece a blocker.
func (b *Board) sliderBlockers(sliders bitboard.Board, ksq square.Square) (blockers, pinners bitboard.Board) {
	occ := b.Occupied()

	snipers := ((attacks.Rook(ksq, bitboard.Empty) & (b.Pieces(piece.Rook) | b.Pieces(piece.Queen))) |
		(attacks.Bishop(ksq, bitboard.Empty) & (b.Pieces(piece.Bishop) | b.Pieces(piece.Queen)))) & sliders

	occWithoutSnipers := occ &^ snipers

	for s := snipers; s != bitboard.Empty; {
		sniperSq := s.Pop()
		between := attacks.Between(ksq, sniperSq) & occWithoutSnipers

		if between != bitboard.Empty && between&(between-1) == 0 {
			blockers |= between
			if between&b.colors[b.PieceAt(ksq).Color()] != bitboard.Empty {
				pinners |= bitboard.FromSquare(sniperSq)
			}
		}
	}

	return blockers, pinners
}

// Pinned returns the pieces of color c that are pinned against c's own
// king.
func (b *Board) Pinned(c piece.Color) bitboard.Board {
	return b.state.BlockersKing[c] & b.colors[c]
}

// GivesCheck reports whether playing m (assumed pseudo-legal in the
// current position) would give check to the opponent.
func (b *Board) GivesCheck(m move.Move) bool {
	from, to := m.Source(), m.Target()
	p := b.PieceAt(from)
	them := b.SideToMove.Other()
	theirKing := b.kings[them]

	if b.state.CheckSquares[p.Type()]&bitboard.FromSquare(to) != bitboard.Empty {
		return true
	}

	if b.state.BlockersKing[them]&bitboard.FromSquare(from) != bitboard.Empty &&
		!attacks.Aligned(from, to, theirKing) {
		return true
	}

	switch {
	case m.IsCastle():
		rookTo := castleRookTo(to)
		return attacks.Rook(rookTo, b.Occupied()&^bitboard.FromSquare(from))&bitboard.FromSquare(theirKing) != bitboard.Empty
	case m.IsEnPassant():
		capSq := square.New(to.File(), from.Rank())
		occ := b.Occupied() &^ bitboard.FromSquare(from) &^ bitboard.FromSquare(capSq) | bitboard.FromSquare(to)
		queensBishops := b.PiecesOf(b.SideToMove, piece.Bishop) | b.PiecesOf(b.SideToMove, piece.Queen)
		queensRooks := b.PiecesOf(b.SideToMove, piece.Rook) | b.PiecesOf(b.SideToMove, piece.Queen)
		return attacks.Bishop(theirKing, occ)&queensBishops != bitboard.Empty ||
			attacks.Rook(theirKing, occ)&queensRooks != bitboard.Empty
	case m.IsPromotion():
		occ := b.Occupied() &^ bitboard.FromSquare(from) | bitboard.FromSquare(to)
		promoted := promotionType(m)
		switch promoted {
		case piece.Bishop, piece.Queen:
			if attacks.Bishop(to, occ)&bitboard.FromSquare(theirKing) != bitboard.Empty {
				return true
			}
		}
		switch promoted {
		case piece.Rook, piece.Queen:
			if attacks.Rook(to, occ)&bitboard.FromSquare(theirKing) != bitboard.Empty {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (b *Board) String() string {
	s := ""
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f < square.FileN; f++ {
			s += b.squares[square.New(f, r)].String()
		}
		s += "\n"
	}
	return fmt.Sprintf("%sfen: %s\nkey: %016x\n", s, b.FEN(), b.ZobristKey())
}
