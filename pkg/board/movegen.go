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
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Legality selects whether GenerateMoves must filter out moves that
// leave the mover's own king in check.
type Legality int

const (
	Legal Legality = iota
	PseudoLegal
)

// GenType selects which subset of moves GenerateMoves produces.
type GenType int

const (
	All GenType = iota
	Captures
	Quiets
	QuietChecks
	Evasions
	NonEvasions
)

// GenerateMoves appends every move of the requested legality and kind
// to list and returns the extended slice. When the side to move is in
// check, every kind is answered with the evasion set. QuietChecks keeps
// only the quiet non-king moves that give check; it is undefined in
// check and must not be requested there.
func (b *Board) GenerateMoves(list []move.Move, legality Legality, kind GenType) []move.Move {
	inCheck := b.InCheck()
	if inCheck && kind == All {
		kind = Evasions
	}

	before := len(list)

	switch {
	case kind == Evasions || inCheck:
		list = b.generateEvasions(list)
	default:
		list = b.generatePieceMoves(list, kind)
	}

	if kind == QuietChecks && !inCheck {
		write := before
		for read := before; read < len(list); read++ {
			if b.GivesCheck(list[read]) {
				list[write] = list[read]
				write++
			}
		}
		list = list[:write]
	}

	if legality == Legal {
		list = b.filterLegal(list, before)
	}

	return list
}

// filterLegal removes, in place, every move in list[from:] that would
// leave the mover's own king in check.
func (b *Board) filterLegal(list []move.Move, from int) []move.Move {
	write := from
	for read := from; read < len(list); read++ {
		if b.legalGivenPins(list[read]) {
			list[write] = list[read]
			write++
		}
	}
	return list[:write]
}

// legalGivenPins tests a pseudo-legal move for legality using the
// current pin/checker data. Castles are accepted as generated (castle
// generation already checked the king's path), king moves get a full
// attackersTo probe, and en-passant captures get a bishop/rook probe of
// the king with both pawns moved; those are the cases whose legality
// isn't a simple pin lookup.
func (b *Board) legalGivenPins(m move.Move) bool {
	us := b.SideToMove
	from, to := m.Source(), m.Target()
	ksq := b.kings[us]

	if m.IsCastle() {
		return true // castle generation already checked the king's path
	}

	if from == ksq {
		occ := b.Occupied() &^ bitboard.FromSquare(from)
		return b.attackersTo(to, occ)&b.colors[us.Other()] == bitboard.Empty
	}

	if m.IsEnPassant() {
		capSq := square.New(to.File(), from.Rank())
		occ := b.Occupied() &^ bitboard.FromSquare(from) &^ bitboard.FromSquare(capSq) | bitboard.FromSquare(to)
		them := us.Other()
		queensBishops := b.PiecesOf(them, piece.Bishop) | b.PiecesOf(them, piece.Queen)
		queensRooks := b.PiecesOf(them, piece.Rook) | b.PiecesOf(them, piece.Queen)
		return attacks.Bishop(ksq, occ)&queensBishops == bitboard.Empty &&
			attacks.Rook(ksq, occ)&queensRooks == bitboard.Empty
	}

	if b.state.BlockersKing[us]&bitboard.FromSquare(from) == bitboard.Empty {
		return true // not pinned, free to move anywhere
	}

	return attacks.Aligned(from, to, ksq)
}

// generatePieceMoves generates moves for a side not currently in check.
func (b *Board) generatePieceMoves(list []move.Move, kind GenType) []move.Move {
	us, them := b.SideToMove, b.SideToMove.Other()
	occ := b.Occupied()

	var target bitboard.Board
	switch kind {
	case Captures:
		target = b.colors[them]
	case Quiets, QuietChecks:
		target = ^occ
	default: // All, NonEvasions
		target = ^b.colors[us]
	}

	list = b.generatePawnMoves(list, target, kind)
	list = b.generatePieceTypeMoves(list, piece.Knight, attacks.Knight, target)
	list = b.generateSliderMoves(list, piece.Bishop, target, occ)
	list = b.generateSliderMoves(list, piece.Rook, target, occ)
	list = b.generateSliderMoves(list, piece.Queen, target, occ)

	if kind != Captures && kind != QuietChecks {
		list = b.generateCastles(list)
	}

	if kind != QuietChecks {
		ksq := b.kings[us]
		kingMoves := attacks.King(ksq) & target
		list = serialize(list, ksq, kingMoves, move.FlagQuiet, b)
	}

	return list
}

// generateEvasions generates every legal-shaped response to check: king
// moves off the checked ray, and, if there is exactly one checker,
// captures or blocks of it.
func (b *Board) generateEvasions(list []move.Move) []move.Move {
	us, them := b.SideToMove, b.SideToMove.Other()
	ksq := b.kings[us]
	checkers := b.state.Checkers

	occWithoutKing := b.Occupied() &^ bitboard.FromSquare(ksq)

	var sliderRays bitboard.Board
	for c := checkers; c != bitboard.Empty; {
		sq := c.Pop()
		if b.PieceAt(sq).Is(piece.Bishop) || b.PieceAt(sq).Is(piece.Rook) || b.PieceAt(sq).Is(piece.Queen) {
			sliderRays |= attacks.Line(ksq, sq) &^ bitboard.FromSquare(sq)
		}
	}

	kingTarget := ^b.colors[us] &^ sliderRays
	kingMoves := attacks.King(ksq) & kingTarget
	for kmTo := kingMoves; kmTo != bitboard.Empty; {
		to := kmTo.Pop()
		if b.attackersTo(to, occWithoutKing)&b.colors[them] == bitboard.Empty {
			list = append(list, moveFor(b, ksq, to))
		}
	}

	if checkers.Count() != 1 {
		return list // double check: only king moves are legal
	}

	checkerSq := checkers.LSB()
	captureBlockTarget := (attacks.Between(ksq, checkerSq) | bitboard.FromSquare(checkerSq))

	list = b.generatePawnMoves(list, captureBlockTarget, NonEvasions)
	list = b.generatePieceTypeMoves(list, piece.Knight, attacks.Knight, captureBlockTarget)
	list = b.generateSliderMoves(list, piece.Bishop, captureBlockTarget, b.Occupied())
	list = b.generateSliderMoves(list, piece.Rook, captureBlockTarget, b.Occupied())
	list = b.generateSliderMoves(list, piece.Queen, captureBlockTarget, b.Occupied())

	return list
}

func (b *Board) generatePieceTypeMoves(list []move.Move, t piece.Type, steps func(square.Square) bitboard.Board, target bitboard.Board) []move.Move {
	for pieces := b.PiecesOf(b.SideToMove, t); pieces != bitboard.Empty; {
		from := pieces.Pop()
		moves := steps(from) & target
		list = serialize(list, from, moves, move.FlagQuiet, b)
	}
	return list
}

func (b *Board) generateSliderMoves(list []move.Move, t piece.Type, target, occ bitboard.Board) []move.Move {
	var attacksFn func(square.Square, bitboard.Board) bitboard.Board
	switch t {
	case piece.Bishop:
		attacksFn = attacks.Bishop
	case piece.Rook:
		attacksFn = attacks.Rook
	default:
		attacksFn = attacks.Queen
	}

	for pieces := b.PiecesOf(b.SideToMove, t); pieces != bitboard.Empty; {
		from := pieces.Pop()
		moves := attacksFn(from, occ) & target
		list = serialize(list, from, moves, move.FlagQuiet, b)
	}
	return list
}

func (b *Board) generateCastles(list []move.Move) []move.Move {
	if b.InCheck() {
		return list
	}

	us := b.SideToMove
	occ := b.Occupied()
	them := us.Other()

	try := func(right castling.Rights, kingTo square.Square, clearSquares, safeSquares bitboard.Board) {
		if b.state.Castling&right == 0 {
			return
		}
		if occ&clearSquares != bitboard.Empty {
			return
		}
		for s := safeSquares; s != bitboard.Empty; {
			sq := s.Pop()
			if b.attackersTo(sq, occ)&b.colors[them] != bitboard.Empty {
				return
			}
		}
		ksq := b.kings[us]
		list = append(list, move.New(ksq, kingTo, castleFlag(kingTo)))
	}

	if us == piece.White {
		try(castling.WhiteKing, square.G1,
			bitboard.Squares[square.F1]|bitboard.Squares[square.G1],
			bitboard.Squares[square.E1]|bitboard.Squares[square.F1]|bitboard.Squares[square.G1])
		try(castling.WhiteQueen, square.C1,
			bitboard.Squares[square.B1]|bitboard.Squares[square.C1]|bitboard.Squares[square.D1],
			bitboard.Squares[square.E1]|bitboard.Squares[square.D1]|bitboard.Squares[square.C1])
	} else {
		try(castling.BlackKing, square.G8,
			bitboard.Squares[square.F8]|bitboard.Squares[square.G8],
			bitboard.Squares[square.E8]|bitboard.Squares[square.F8]|bitboard.Squares[square.G8])
		try(castling.BlackQueen, square.C8,
			bitboard.Squares[square.B8]|bitboard.Squares[square.C8]|bitboard.Squares[square.D8],
			bitboard.Squares[square.E8]|bitboard.Squares[square.D8]|bitboard.Squares[square.C8])
	}

	return list
}

func castleFlag(kingTo square.Square) move.Flag {
	switch kingTo {
	case square.G1, square.G8:
		return move.FlagKingCastle
	default:
		return move.FlagQueenCastle
	}
}

func (b *Board) generatePawnMoves(list []move.Move, target bitboard.Board, kind GenType) []move.Move {
	us := b.SideToMove
	occ := b.Occupied()
	pawns := b.PiecesOf(us, piece.Pawn)

	var promoRank, thirdRank bitboard.Board
	if us == piece.White {
		promoRank, thirdRank = bitboard.Rank8, bitboard.RankBB[square.Rank3]
	} else {
		promoRank, thirdRank = bitboard.Rank1, bitboard.RankBB[square.Rank6]
	}

	up := func(bb bitboard.Board) bitboard.Board { return bb.Up(us == piece.White) }
	down := func(bb bitboard.Board) bitboard.Board { return bb.Down(us == piece.White) }

	if kind != Captures {
		single := up(pawns) &^ occ
		double := up(single&thirdRank) &^ occ

		quietTarget := target &^ b.colors[us.Other()]
		singleQuiet := single & quietTarget &^ promoRank
		doubleQuiet := double & quietTarget

		for t := singleQuiet; t != bitboard.Empty; {
			to := t.Pop()
			list = append(list, move.New(down(bitboard.FromSquare(to)).LSB(), to, move.FlagQuiet))
		}
		for t := doubleQuiet; t != bitboard.Empty; {
			to := t.Pop()
			from := down(down(bitboard.FromSquare(to))).LSB()
			list = append(list, move.New(from, to, move.FlagDoublePawnPush))
		}

		for t := single & promoRank & quietTarget; t != bitboard.Empty; {
			to := t.Pop()
			from := down(bitboard.FromSquare(to)).LSB()
			list = appendPromotions(list, from, to, false)
		}
	}

	if kind != Quiets && kind != QuietChecks {
		them := us.Other()
		enemies := b.colors[them] & target

		left := pawnCaptureLeft(pawns, us) & enemies
		right := pawnCaptureRight(pawns, us) & enemies

		for t := left &^ promoRank; t != bitboard.Empty; {
			to := t.Pop()
			from := pawnCaptureLeftOrigin(to, us)
			list = append(list, move.New(from, to, move.FlagCapture))
		}
		for t := right &^ promoRank; t != bitboard.Empty; {
			to := t.Pop()
			from := pawnCaptureRightOrigin(to, us)
			list = append(list, move.New(from, to, move.FlagCapture))
		}
		for t := left & promoRank; t != bitboard.Empty; {
			to := t.Pop()
			from := pawnCaptureLeftOrigin(to, us)
			list = appendPromotions(list, from, to, true)
		}
		for t := right & promoRank; t != bitboard.Empty; {
			to := t.Pop()
			from := pawnCaptureRightOrigin(to, us)
			list = appendPromotions(list, from, to, true)
		}

		if b.state.EnPassant != square.None {
			epTarget := bitboard.FromSquare(b.state.EnPassant)
			if epTarget&target != bitboard.Empty || kind == NonEvasions || kind == All {
				for from := attacks.Pawn(them, b.state.EnPassant) & pawns; from != bitboard.Empty; {
					sq := from.Pop()
					list = append(list, move.New(sq, b.state.EnPassant, move.FlagEnPassant))
				}
			}
		}
	}

	return list
}

func pawnCaptureLeft(pawns bitboard.Board, us piece.Color) bitboard.Board {
	if us == piece.White {
		return (pawns &^ bitboard.FileA).North().West()
	}
	return (pawns &^ bitboard.FileA).South().West()
}

func pawnCaptureRight(pawns bitboard.Board, us piece.Color) bitboard.Board {
	if us == piece.White {
		return (pawns &^ bitboard.FileH).North().East()
	}
	return (pawns &^ bitboard.FileH).South().East()
}

func pawnCaptureLeftOrigin(to square.Square, us piece.Color) square.Square {
	if us == piece.White {
		return bitboard.FromSquare(to).South().East().LSB()
	}
	return bitboard.FromSquare(to).North().East().LSB()
}

func pawnCaptureRightOrigin(to square.Square, us piece.Color) square.Square {
	if us == piece.White {
		return bitboard.FromSquare(to).South().West().LSB()
	}
	return bitboard.FromSquare(to).North().West().LSB()
}

func appendPromotions(list []move.Move, from, to square.Square, capture bool) []move.Move {
	flags := [4]move.Flag{move.FlagPromoQueen, move.FlagPromoRook, move.FlagPromoBishop, move.FlagPromoKnight}
	for _, f := range flags {
		if capture {
			f |= 0b0100
		}
		list = append(list, move.New(from, to, f))
	}
	return list
}

func serialize(list []move.Move, from square.Square, targets bitboard.Board, _ move.Flag, b *Board) []move.Move {
	them := b.SideToMove.Other()
	for t := targets; t != bitboard.Empty; {
		to := t.Pop()
		flag := move.FlagQuiet
		if b.colors[them].IsSet(to) {
			flag = move.FlagCapture
		}
		list = append(list, move.New(from, to, flag))
	}
	return list
}

func moveFor(b *Board, from, to square.Square) move.Move {
	them := b.SideToMove.Other()
	if b.colors[them].IsSet(to) {
		return move.New(from, to, move.FlagCapture)
	}
	return move.New(from, to, move.FlagQuiet)
}

// PseudoLegalMove reports whether m could be the result of pseudo-legal
// move generation in the current position, by generating the full
// pseudo-legal list and searching it; used when probing a
// transposition-table move.
func (b *Board) PseudoLegalMove(m move.Move) bool {
	list := b.GenerateMoves(make([]move.Move, 0, 64), PseudoLegal, All)
	for _, c := range list {
		if c == m {
			return true
		}
	}
	return false
}

// LegalMove reports whether m is legal in the current position.
func (b *Board) LegalMove(m move.Move) bool {
	if !b.PseudoLegalMove(m) {
		return false
	}
	return b.legalGivenPins(m)
}
