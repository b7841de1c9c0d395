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

// Package attacks precomputes every attack table the move generator and
// search need: non-sliding knight/king/pawn steps, magic-bitboard
// sliding attacks for bishops/rooks/queens, and the geometric helper
// tables (between, line, distance rings) used by pin/check detection.
package attacks

import (
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

var (
	knightSteps [square.N]bitboard.Board
	kingSteps   [square.N]bitboard.Board
	pawnSteps   [piece.ColorN][square.N]bitboard.Board
)

// Knight returns the knight attack set from the given square.
func Knight(s square.Square) bitboard.Board { return knightSteps[s] }

// King returns the king attack set from the given square.
func King(s square.Square) bitboard.Board { return kingSteps[s] }

// Pawn returns the pawn attack set (its two diagonal capture squares)
// from the given square for the given color.
func Pawn(c piece.Color, s square.Square) bitboard.Board { return pawnSteps[c][s] }

func init() {
	for s := square.Square(0); s < square.N; s++ {
		from := bitboard.Squares[s]

		notGH := ^(bitboard.FileBB[square.FileG] | bitboard.FileH)
		notAB := ^(bitboard.FileA | bitboard.FileBB[square.FileB])

		knightSteps[s] = shift(from, 17, ^bitboard.FileH) |
			shift(from, 15, ^bitboard.FileA) |
			shift(from, 10, notGH) |
			shift(from, 6, notAB) |
			shift(from, -17, ^bitboard.FileA) |
			shift(from, -15, ^bitboard.FileH) |
			shift(from, -10, notAB) |
			shift(from, -6, notGH)

		kingSteps[s] = from.East() | from.West() |
			from.North() | from.South() |
			from.North().East() | from.North().West() |
			from.South().East() | from.South().West()

		pawnSteps[piece.White][s] = shift(from, 9, ^bitboard.FileH) | shift(from, 7, ^bitboard.FileA)
		pawnSteps[piece.Black][s] = shift(from, -9, ^bitboard.FileA) | shift(from, -7, ^bitboard.FileH)
	}
}

// shift moves bb by n bits (positive = toward H8/up the board in our
// a1=0 layout), masking away anything that would have wrapped around
// the given edge file(s) before the shift.
func shift(bb bitboard.Board, n int, edgeMask bitboard.Board) bitboard.Board {
	bb &= edgeMask
	if n >= 0 {
		return bb << uint(n)
	}
	return bb >> uint(-n)
}
