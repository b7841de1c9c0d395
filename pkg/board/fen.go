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
	"fmt"
	"strconv"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FenParseErrorKind identifies which of FEN's six fields, or which
// post-placement rule, rejected a parse.
type FenParseErrorKind int

const (
	NotEnoughSections FenParseErrorKind = iota
	IncorrectRankCount
	UnrecognizedTurn
	EPSquareUnreadable
	EPSquareInvalid
	UnrecognizedPiece
	IllegalNumCheckingPieces
	IllegalCheckState
	TooManyPawns
	PawnOnLastRow
	ParseIntFailure
)

func (k FenParseErrorKind) String() string {
	switch k {
	case NotEnoughSections:
		return "wrong number of fen sections"
	case IncorrectRankCount:
		return "wrong number of ranks"
	case UnrecognizedTurn:
		return "unrecognized side to move"
	case EPSquareUnreadable:
		return "unreadable en passant square"
	case EPSquareInvalid:
		return "en passant square not on rank 3 or 6"
	case UnrecognizedPiece:
		return "unrecognized piece letter"
	case IllegalNumCheckingPieces:
		return "too many simultaneous checkers"
	case IllegalCheckState:
		return "impossible double check"
	case TooManyPawns:
		return "too many pawns for one side"
	case PawnOnLastRow:
		return "pawn on first or last rank"
	case ParseIntFailure:
		return "unreadable integer field"
	default:
		return "unknown fen error"
	}
}

// FenParseError reports that a FEN string could not be parsed, along
// with which of its fields or post-placement rules was responsible.
type FenParseError struct {
	Kind  FenParseErrorKind
	Field string
	Value string
	Err   error
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("board: %s (field %s=%q): %v", e.Kind, e.Field, e.Value, e.Err)
}

func (e *FenParseError) Unwrap() error { return e.Err }

// NewFromFEN parses a Forsyth-Edwards Notation string into a Board.
func NewFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, &FenParseError{
			Kind: NotEnoughSections, Field: "fen", Value: fen,
			Err: fmt.Errorf("need 4 to 6 fields, got %d", len(fields)),
		}
	}
	for len(fields) < 6 {
		// halfmove clock and fullmove number default to "0" and "1"
		fields = append(fields, []string{"0", "1"}[len(fields)-4])
	}

	b := &Board{state: rootState()}
	for i := range b.squares {
		b.squares[i] = piece.NoPiece
	}

	if err := b.setPlacement(fields[0]); err != nil {
		return nil, err
	}

	side, err := piece.NewColor(fields[1])
	if err != nil {
		return nil, &FenParseError{Kind: UnrecognizedTurn, Field: "side", Value: fields[1], Err: err}
	}
	b.SideToMove = side

	b.state.Castling = castling.NewRights(fields[2])

	if fields[3] == "-" {
		b.state.EnPassant = square.None
	} else {
		ep, err := square.NewFromString(fields[3])
		if err != nil {
			return nil, &FenParseError{Kind: EPSquareUnreadable, Field: "en passant", Value: fields[3], Err: err}
		}
		if ep.Rank() != square.Rank3 && ep.Rank() != square.Rank6 {
			return nil, &FenParseError{
				Kind: EPSquareInvalid, Field: "en passant", Value: fields[3],
				Err: fmt.Errorf("square %s is on rank %s, must be rank 3 or 6", ep, ep.Rank()),
			}
		}
		b.state.EnPassant = ep
	}

	rule50, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &FenParseError{Kind: ParseIntFailure, Field: "halfmove clock", Value: fields[4], Err: err}
	}
	b.state.Rule50 = int16(rule50)

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, &FenParseError{Kind: ParseIntFailure, Field: "fullmove number", Value: fields[5], Err: err}
	}
	b.FullMoves = fullMoves

	b.computeZobrist()
	b.updateCheckInfo()

	if err := b.checkInvariants(); err != nil {
		return nil, err
	}
	if err := b.checkCheckers(); err != nil {
		return nil, err
	}

	return b, nil
}

// checkCheckers rejects positions with more checking pieces than a
// legal game can produce: more than two simultaneous checkers, or two
// checkers where neither is a slider (two pawns or knights can never
// check the same king at once, since neither attacks along a line a
// second non-slider could share).
func (b *Board) checkCheckers() error {
	checkers := b.Checkers()
	switch n := checkers.Count(); {
	case n > 2:
		return &FenParseError{
			Kind: IllegalNumCheckingPieces, Field: "placement", Value: fmt.Sprint(n),
			Err: fmt.Errorf("%d pieces check the king at once, at most 2 is legal", n),
		}
	case n == 2:
		var sawSlider bool
		var types [2]piece.Type
		for i := 0; checkers != 0; i++ {
			sq := checkers.Pop()
			t := b.PieceAt(sq).Type()
			types[i] = t
			if t == piece.Bishop || t == piece.Rook || t == piece.Queen {
				sawSlider = true
			}
		}
		if !sawSlider {
			return &FenParseError{
				Kind: IllegalCheckState, Field: "placement",
				Value: fmt.Sprintf("%s+%s", types[0], types[1]),
				Err:   fmt.Errorf("%s and %s cannot check the king simultaneously", types[0], types[1]),
			}
		}
	}
	return nil
}

func (b *Board) setPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &FenParseError{
			Kind: IncorrectRankCount, Field: "placement", Value: placement,
			Err: fmt.Errorf("need 8 ranks, got %d", len(ranks)),
		}
	}

	var pawns [piece.ColorN]int

	for i, rankStr := range ranks {
		rank := square.Rank(7 - i)
		file := square.FileA

		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += square.File(c - '0')
			default:
				p, err := piece.NewFromString(string(c))
				if err != nil {
					return &FenParseError{Kind: UnrecognizedPiece, Field: "placement", Value: string(c), Err: err}
				}
				if file >= square.FileN {
					return &FenParseError{
						Kind: IncorrectRankCount, Field: "placement", Value: placement,
						Err: fmt.Errorf("rank %d overflows past the h-file", i),
					}
				}
				if p.Type() == piece.Pawn {
					if rank == square.Rank1 || rank == square.Rank8 {
						return &FenParseError{
							Kind: PawnOnLastRow, Field: "placement", Value: placement,
							Err: fmt.Errorf("pawn on rank %s", rank),
						}
					}
					pawns[p.Color()]++
					if pawns[p.Color()] > 8 {
						return &FenParseError{
							Kind: TooManyPawns, Field: "placement", Value: placement,
							Err: fmt.Errorf("%s has more than 8 pawns", p.Color()),
						}
					}
				}
				b.put(square.New(file, rank), p)
				file++
			}
		}

		if file != square.FileN {
			return &FenParseError{
				Kind: IncorrectRankCount, Field: "placement", Value: placement,
				Err: fmt.Errorf("rank %d has %d files, need 8", i, file),
			}
		}
	}

	return nil
}

// put places p on sq without touching the Zobrist hash; used only
// during FEN parsing, before computeZobrist runs once over the final
// position.
func (b *Board) put(sq square.Square, p piece.Piece) {
	b.squares[sq] = p
	b.pieces[p.Type()].Set(sq)
	b.colors[p.Color()].Set(sq)
	if p.Type() == piece.King {
		b.kings[p.Color()] = sq
	}
}

// FEN renders the current position as a Forsyth-Edwards Notation
// string.
func (b *Board) FEN() string {
	var sb strings.Builder

	for r := square.Rank8; r >= square.Rank1; r-- {
		empty := 0
		for f := square.FileA; f < square.FileN; f++ {
			p := b.squares[square.New(f, r)]
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > square.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove.String())

	sb.WriteByte(' ')
	sb.WriteString(b.state.Castling.String())

	sb.WriteByte(' ')
	if b.state.EnPassant == square.None {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.state.EnPassant.String())
	}

	fmt.Fprintf(&sb, " %d %d", b.state.Rule50, b.FullMoves)

	return sb.String()
}

// computeZobrist recomputes the full Zobrist, pawn, and material hashes
// from the current placement, overwriting whatever the state chain
// held. Used once after FEN parsing and by the testing oracle that
// cross-checks incremental updates.
func (b *Board) computeZobrist() {
	var key, pawnKey, materialKey zobrist.Key
	var nonPawn [piece.ColorN]int32

	for sq := square.Square(0); sq < square.N; sq++ {
		p := b.squares[sq]
		if p == piece.NoPiece {
			continue
		}

		key ^= zobrist.PieceSquare[p][sq]
		if p.Type() == piece.Pawn {
			pawnKey ^= zobrist.PieceSquare[p][sq]
		} else if p.Type() != piece.King {
			nonPawn[p.Color()] += nonPawnValue[p.Type()]
		}
	}

	for t := piece.Pawn; t <= piece.King; t++ {
		for c := piece.White; c <= piece.Black; c++ {
			count := b.PiecesOf(c, t).Count()
			materialKey ^= zobrist.MaterialKeyTerm(piece.New(t, c), count)
		}
	}

	if b.SideToMove == piece.Black {
		key ^= zobrist.SideToMove
	}
	key ^= zobrist.Castling[b.state.Castling]
	if b.state.EnPassant != square.None {
		key ^= zobrist.EnPassantFile[b.state.EnPassant.File()]
	}

	b.state.Zobrist = key
	b.state.PawnKey = pawnKey
	b.state.MaterialKey = materialKey
	b.state.NonPawnMaterial = nonPawn
}
