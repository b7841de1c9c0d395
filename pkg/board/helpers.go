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
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// promotionType maps a promoting move's flag to the piece type it
// promotes to.
func promotionType(m move.Move) piece.Type {
	switch m.Flag() &^ 0b0100 { // clear the capture bit, keep the promo-piece bits
	case move.FlagPromoKnight:
		return piece.Knight
	case move.FlagPromoBishop:
		return piece.Bishop
	case move.FlagPromoRook:
		return piece.Rook
	default:
		return piece.Queen
	}
}

// castleRookTo returns the square the rook lands on for a castle whose
// king lands on kingTo.
func castleRookTo(kingTo square.Square) square.Square {
	return castling.RookSquares[kingTo].To
}

// castleRookFrom returns the rook's origin square for a castle whose
// king lands on kingTo.
func castleRookFrom(kingTo square.Square) square.Square {
	return castling.RookSquares[kingTo].From
}
