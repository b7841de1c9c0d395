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

// rookDirs and bishopDirs list the (file delta, rank delta) steps for a
// rook and a bishop respectively, used by both the true-attack and blocker-mask
// generators that feed magic-number search.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// slide walks from sq in every direction of dirs, stopping after the
// first occupied square on each ray (inclusive of that square, since
// the slider attacks/could capture whatever sits there). If edgeOnly is
// true, the final square of each ray is excluded instead, producing the
// "blocker mask" used to size a magic table (edge squares can never
// hide a relevant blocker since the ray always terminates there anyway).
func slide(sq square.Square, occ bitboard.Board, dirs [4][2]int, edgeOnly bool) bitboard.Board {
	var attacks bitboard.Board
	startFile, startRank := int(sq.File()), int(sq.Rank())

	for _, d := range dirs {
		f, r := startFile+d[0], startRank+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			to := square.New(square.File(f), square.Rank(r))
			atEdge := f+d[0] < 0 || f+d[0] >= 8 || r+d[1] < 0 || r+d[1] >= 8

			if edgeOnly && atEdge {
				break
			}

			attacks.Set(to)

			if occ.IsSet(to) {
				break
			}

			f += d[0]
			r += d[1]
		}
	}

	return attacks
}

func rookSlide(sq square.Square, occ bitboard.Board, maskOnly bool) bitboard.Board {
	return slide(sq, occ, rookDirs, maskOnly)
}

func bishopSlide(sq square.Square, occ bitboard.Board, maskOnly bool) bitboard.Board {
	return slide(sq, occ, bishopDirs, maskOnly)
}

// Magic holds the parameters of a single square's magic-bitboard index.
type Magic struct {
	Mask   bitboard.Board
	Number uint64
	Shift  uint
	offset int // index into the shared attack table below
}

// index computes the table offset for a given occupancy.
func (m *Magic) index(occ bitboard.Board) int {
	return m.offset + int((uint64(occ&m.Mask)*m.Number)>>m.Shift)
}

var (
	rookMagics   [square.N]Magic
	bishopMagics [square.N]Magic

	// table is the single flat attack array both piece types slice into,
	// matching the pack's convention of one allocation instead of a
	// per-square fixed-size array (rook blocker sets vary from 2^6 to
	// 2^12 entries, so a flat table with per-square offsets avoids
	// wasting memory on a worst-case-sized 2D array).
	table []bitboard.Board
)

// magicSeeds are sparse-candidate PRNG seeds, one per rank, picked large
// enough that every square's magic search terminates quickly; any fixed
// seed set works; these are carried over unmodified from the pack.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

func init() {
	initMagics(&rookMagics, rookSlide)
	initMagics(&bishopMagics, bishopSlide)
}

func initMagics(magics *[square.N]Magic, slideFn func(square.Square, bitboard.Board, bool) bitboard.Board) {
	offset := len(table)
	for s := square.Square(0); s < square.N; s++ {
		m := &magics[s]
		m.Mask = slideFn(s, bitboard.Empty, true)
		bits := m.Mask.Count()
		m.Shift = uint(64 - bits)
		m.offset = offset
		offset += 1 << bits
	}

	if len(table) < offset {
		table = append(table, make([]bitboard.Board, offset-len(table))...)
	}

	for s := square.Square(0); s < square.N; s++ {
		m := &magics[s]
		size := 1 << (64 - m.Shift)

		var rng = prngFor(s)

	search:
		for {
			candidate := rng.SparseUint64()
			m.Number = candidate

			for i := 0; i < size; i++ {
				table[m.offset+i] = bitboard.Empty
			}

			m.Mask.Subsets(func(occ bitboard.Board) bool {
				idx := m.index(occ)
				attack := slideFn(s, occ, false)

				if table[idx] != bitboard.Empty && table[idx] != attack {
					candidate = 0 // signal collision
					return false
				}

				table[idx] = attack
				return true
			})

			if candidate != 0 {
				break search
			}
		}
	}
}

// sparsePRNG is a xorshift64star generator duplicated from pkg/zobrist
// rather than imported, since magic-number search and key generation
// are conceptually unrelated consumers of "a seedable PRNG".
type sparsePRNG struct{ seed uint64 }

func (p *sparsePRNG) Seed(s uint64) { p.seed = s }

func (p *sparsePRNG) Uint64() uint64 {
	p.seed ^= p.seed >> 12
	p.seed ^= p.seed << 25
	p.seed ^= p.seed >> 27
	return p.seed * 2685821657736338717
}

func (p *sparsePRNG) SparseUint64() uint64 {
	//nolint:staticcheck // Uint64 is intentionally impure
	return p.Uint64() & p.Uint64() & p.Uint64()
}

func prngFor(s square.Square) sparsePRNG {
	var rng sparsePRNG
	rng.Seed(magicSeeds[s.Rank()])
	return rng
}

// Bishop returns the bishop attack set from sq given the full-board
// occupancy bitboard.
func Bishop(sq square.Square, occ bitboard.Board) bitboard.Board {
	m := &bishopMagics[sq]
	return table[m.index(occ)]
}

// Rook returns the rook attack set from sq given the full-board
// occupancy bitboard.
func Rook(sq square.Square, occ bitboard.Board) bitboard.Board {
	m := &rookMagics[sq]
	return table[m.index(occ)]
}

// Queen returns the queen attack set from sq given the full-board
// occupancy bitboard.
func Queen(sq square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop(sq, occ) | Rook(sq, occ)
}
