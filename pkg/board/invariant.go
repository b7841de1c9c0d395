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

	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// BoardInvariantErrorKind identifies which structural invariant a Board
// failed, independent of the FEN text that produced it.
type BoardInvariantErrorKind int

const (
	IncorrectKingCount BoardInvariantErrorKind = iota
	KingSquareMismatch
	BadEPSquare
)

func (k BoardInvariantErrorKind) String() string {
	switch k {
	case IncorrectKingCount:
		return "incorrect king count"
	case KingSquareMismatch:
		return "king square mismatch"
	case BadEPSquare:
		return "bad en passant square"
	default:
		return "unknown board invariant"
	}
}

// BoardInvariantError reports that a Board violates a structural
// invariant that placement and side-to-move alone cannot enforce, most
// often surfaced right after a FEN parse.
type BoardInvariantError struct {
	Kind BoardInvariantErrorKind
	Err  error
}

func (e *BoardInvariantError) Error() string {
	return fmt.Sprintf("board: %s: %v", e.Kind, e.Err)
}

func (e *BoardInvariantError) Unwrap() error { return e.Err }

// checkInvariants validates a freshly built Board against the
// invariants NewFromFEN must reject: exactly one king per side, the
// king-square cache agreeing with the king bitboard, and, if an en
// passant square is set, that it actually rests behind a pawn that
// could just have played the double push it implies.
func (b *Board) checkInvariants() error {
	for c := piece.White; c <= piece.Black; c++ {
		kings := b.PiecesOf(c, piece.King)
		if kings.Count() != 1 {
			return &BoardInvariantError{
				Kind: IncorrectKingCount,
				Err:  fmt.Errorf("%s has %d kings, want exactly 1", c, kings.Count()),
			}
		}
		if ksq := kings.LSB(); ksq != b.kings[c] {
			return &BoardInvariantError{
				Kind: KingSquareMismatch,
				Err:  fmt.Errorf("%s king cache holds %s, bitboard has %s", c, b.kings[c], ksq),
			}
		}
	}

	if ep := b.state.EnPassant; ep != square.None {
		var behind square.Square
		var mover piece.Color
		switch ep.Rank() {
		case square.Rank3:
			behind, mover = square.New(ep.File(), square.Rank4), piece.White
		case square.Rank6:
			behind, mover = square.New(ep.File(), square.Rank5), piece.Black
		default:
			return &BoardInvariantError{
				Kind: BadEPSquare,
				Err:  fmt.Errorf("en passant square %s is not on rank 3 or 6", ep),
			}
		}
		if want := piece.New(piece.Pawn, mover); b.PieceAt(behind) != want {
			return &BoardInvariantError{
				Kind: BadEPSquare,
				Err:  fmt.Errorf("no %s pawn behind en passant square %s", mover, ep),
			}
		}
	}

	return nil
}
