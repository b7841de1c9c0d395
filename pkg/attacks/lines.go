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

package attacks

import (
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/square"
)

var (
	betweenBB [square.N][square.N]bitboard.Board
	lineBB    [square.N][square.N]bitboard.Board
	ringBB    [square.N][8]bitboard.Board
)

func init() {
	for a := square.Square(0); a < square.N; a++ {
		for b := square.Square(0); b < square.N; b++ {
			if a == b {
				continue
			}

			if onRookLine(a, b) {
				betweenBB[a][b] = rookSlide(a, bitboard.Squares[b], false) & rookSlide(b, bitboard.Squares[a], false)
				lineBB[a][b] = (rookSlide(a, bitboard.Empty, false) & rookSlide(b, bitboard.Empty, false)) |
					bitboard.Squares[a] | bitboard.Squares[b]
			} else if onBishopLine(a, b) {
				betweenBB[a][b] = bishopSlide(a, bitboard.Squares[b], false) & bishopSlide(b, bitboard.Squares[a], false)
				lineBB[a][b] = (bishopSlide(a, bitboard.Empty, false) & bishopSlide(b, bitboard.Empty, false)) |
					bitboard.Squares[a] | bitboard.Squares[b]
			}
		}

		for d := 0; d < 8; d++ {
			var ring bitboard.Board
			for s := square.Square(0); s < square.N; s++ {
				if square.Distance(a, s) == d {
					ring.Set(s)
				}
			}
			ringBB[a][d] = ring
		}
	}
}

func onRookLine(a, b square.Square) bool {
	return a.File() == b.File() || a.Rank() == b.Rank()
}

func onBishopLine(a, b square.Square) bool {
	return a.Diagonal() == b.Diagonal() || a.AntiDiagonal() == b.AntiDiagonal()
}

// Between returns the squares strictly between a and b when they are
// aligned on a rook or bishop ray; otherwise it returns Empty.
func Between(a, b square.Square) bitboard.Board {
	return betweenBB[a][b]
}

// Line returns every square on the infinite rook/bishop ray through a
// and b when they are aligned; otherwise it returns Empty.
func Line(a, b square.Square) bitboard.Board {
	return lineBB[a][b]
}

// Aligned reports whether c lies on the line through a and b.
func Aligned(a, b, c square.Square) bool {
	return lineBB[a][b]&bitboard.Squares[c] != 0
}

// Ring returns the squares at exactly the given Chebyshev distance from
// sq (distance 0 is sq itself, the maximum useful distance is 7).
func Ring(sq square.Square, distance int) bitboard.Board {
	if distance < 0 || distance > 7 {
		return bitboard.Empty
	}
	return ringBB[sq][distance]
}
