// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

// Package castling implements the 4-bit castling-rights aggregate and
// the per-square masks used to clear rights when a king or rook moves
// or is captured.
package castling

import "github.com/kestrelchess/kestrel/pkg/square"

// Rights is a 4-bit set of castling rights: WK, WQ, BK, BQ.
type Rights uint8

const (
	WhiteKing Rights = 1 << iota
	WhiteQueen
	BlackKing
	BlackQueen

	None  Rights = 0
	White Rights = WhiteKing | WhiteQueen
	Black Rights = BlackKing | BlackQueen
	All   Rights = White | Black

	N = 16
)

// NewRights parses a FEN castling field ("KQkq", "Kq", "-").
func NewRights(s string) Rights {
	var r Rights
	if s == "-" {
		return None
	}
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKing
		case 'Q':
			r |= WhiteQueen
		case 'k':
			r |= BlackKing
		case 'q':
			r |= BlackQueen
		}
	}
	return r
}

func (r Rights) String() string {
	var s string
	if r&WhiteKing != 0 {
		s += "K"
	}
	if r&WhiteQueen != 0 {
		s += "Q"
	}
	if r&BlackKing != 0 {
		s += "k"
	}
	if r&BlackQueen != 0 {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// RightsLost holds, for every square, the rights mask that is cleared
// when a move's source or destination touches that square. Moving a
// rook off a1/h1/a8/h8, or a king off/to e1/e8, or capturing a rook on
// its home square all clear rights through this single table.
var RightsLost [square.N]Rights

func init() {
	for s := square.Square(0); s < square.N; s++ {
		RightsLost[s] = None
	}
	RightsLost[square.A1] = WhiteQueen
	RightsLost[square.H1] = WhiteKing
	RightsLost[square.E1] = White
	RightsLost[square.A8] = BlackQueen
	RightsLost[square.H8] = BlackKing
	RightsLost[square.E8] = Black
}

// RookSquares describes where the rook starts and ends up for each of
// the four castling moves, indexed by the king's destination square.
type RookMove struct {
	From, To square.Square
}

var RookSquares = map[square.Square]RookMove{
	square.G1: {From: square.H1, To: square.F1},
	square.C1: {From: square.A1, To: square.D1},
	square.G8: {From: square.H8, To: square.F8},
	square.C8: {From: square.A8, To: square.D8},
}
