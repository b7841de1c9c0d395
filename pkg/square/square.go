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

// Package square declares constants representing every square on a
// chessboard and related algebra: files, ranks, and distance helpers.
//
// Squares are numbered a1=0 ... h8=63, so file = index & 7 and
// rank = index >> 3, matching the little-endian rank-file mapping used
// throughout the bitboard and magic tables.
package square

import "fmt"

// Square represents a square on a chessboard, or the sentinel None.
type Square int8

// None is the sentinel for "no square", used for an unset en-passant
// target or an absent piece-location entry.
const None Square = 64

// N is the number of real squares on the board.
const N = 64

// constants representing every square, a1 .. h8.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

// New creates a Square from the given file and rank.
func New(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// NewFromString parses an algebraic square identifier such as "e4", or
// the null-square marker "-".
func NewFromString(id string) (Square, error) {
	if id == "-" {
		return None, nil
	}
	if len(id) != 2 {
		return None, fmt.Errorf("square: bad identifier %q", id)
	}

	file := FileFromChar(id[0])
	rank := RankFromChar(id[1])
	if file == FileNone || rank == RankNone {
		return None, fmt.Errorf("square: bad identifier %q", id)
	}

	return New(file, rank), nil
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s & 7)
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

// String converts a square into its algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return string([]byte{byte('a') + byte(s.File()), byte('1') + byte(s.Rank())})
}

// Diagonal returns the a1-h8 diagonal index of the square, used by
// pkg/attacks to test whether two squares share a diagonal.
func (s Square) Diagonal() int {
	return int(s.Rank()) - int(s.File()) + 7
}

// AntiDiagonal returns the a8-h1 diagonal index of the square.
func (s Square) AntiDiagonal() int {
	return int(s.Rank()) + int(s.File())
}

// File represents a file (column) on a chessboard.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
	FileN = 8
)

// FileFromChar parses a file character ('a'..'h').
func FileFromChar(c byte) File {
	if c < 'a' || c > 'h' {
		return FileNone
	}
	return File(c - 'a')
}

func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return string([]byte{byte('a') + byte(f)})
}

// Rank represents a rank (row) on a chessboard.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
	RankN = 8
)

// RankFromChar parses a rank character ('1'..'8').
func RankFromChar(c byte) Rank {
	if c < '1' || c > '8' {
		return RankNone
	}
	return Rank(c - '1')
}

func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "-"
	}
	return string([]byte{byte('1') + byte(r)})
}

// Relative returns the rank as seen by the given color: White's ranks
// are unchanged, Black's are mirrored (Rank1 <-> Rank8, etc).
func (r Rank) Relative(white bool) Rank {
	if white {
		return r
	}
	return Rank7 + 1 - r
}

// Distance returns the Chebyshev distance (max of file/rank deltas)
// between two squares.
func Distance(a, b Square) int {
	df := int(a.File()) - int(b.File())
	if df < 0 {
		df = -df
	}
	dr := int(a.Rank()) - int(b.Rank())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
