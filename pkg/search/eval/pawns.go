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

package eval

import (
	"github.com/kestrelchess/kestrel/pkg/attacks"
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// pawnTableBits sizes the direct-mapped pawn hash table at 2^14
// entries; a pawn-key collision just costs a stale evaluation on a
// later access, not an incorrect search result.
const pawnTableBits = 14
const pawnTableSize = 1 << pawnTableBits
const pawnTableMask = pawnTableSize - 1

var (
	isolated = S(-5, -5)
	doubled  = S(-11, -25)
	passed   = [square.RankN]Score{
		S(0, 0), S(5, 10), S(10, 18), S(15, 30),
		S(30, 50), S(55, 85), S(90, 130), S(0, 0),
	}
	semiOpenFile = S(5, 5)
)

// pawnEntry is one direct-mapped slot of the pawn hash table, keyed by
// Board.PawnKey(). It caches the pawn-only term of the evaluation along
// with bitboards of each side's passed pawns and semi-open files;
// Evaluate reads only the score.
type pawnEntry struct {
	key     uint64
	score   Score
	passed  [piece.ColorN]bitboard.Board
	semiOpen [piece.ColorN]bitboard.Board
}

// PawnTable is a per-search direct-mapped cache of pawnEntry, analogous
// to pkg/search/tt.Table but private to one search worker: it is never
// shared between goroutines, so no synchronization is needed.
type PawnTable struct {
	entries [pawnTableSize]pawnEntry
}

// NewPawnTable allocates an empty pawn table.
func NewPawnTable() *PawnTable {
	return &PawnTable{}
}

// Probe returns the cached pawn evaluation for key's pawn structure,
// computing and storing it first if the slot doesn't already hold it.
func (pt *PawnTable) Probe(whitePawns, blackPawns bitboard.Board, key uint64) *pawnEntry {
	e := &pt.entries[key&pawnTableMask]
	if e.key == key {
		return e
	}

	*e = pawnEntry{key: key}
	e.score = evaluatePawns(whitePawns, blackPawns, piece.White, &e.passed[piece.White], &e.semiOpen[piece.White])
	e.score -= evaluatePawns(blackPawns, whitePawns, piece.Black, &e.passed[piece.Black], &e.semiOpen[piece.Black])
	return e
}

// evaluatePawns scores us's pawns (on own bitboard) against them's
// (the opponent's), from us's point of view, and fills passed/semiOpen
// with the bitboards of us's passed pawns and us's semi-open files.
func evaluatePawns(own, their bitboard.Board, us piece.Color, passedOut, semiOpenOut *bitboard.Board) Score {
	var score Score

	for file := square.FileA; file < square.FileN; file++ {
		fileBB := bitboard.FileBB[file]
		if own&fileBB == 0 {
			*semiOpenOut |= fileBB
		}
		if (own&fileBB).Count() > 1 {
			score += doubled
		}
	}

	remaining := own
	for remaining != 0 {
		sq := remaining.Pop()

		if attacks.AdjacentFiles(sq.File())&own == 0 {
			score += isolated
		}

		if attacks.PassedPawnMask(us, sq)&their == 0 {
			*passedOut |= bitboard.FromSquare(sq)
			rank := relativeRank(us, sq.Rank())
			score += passed[rank]
		}
	}

	return score
}

// relativeRank flips r so rank 0 is always c's own back rank.
func relativeRank(c piece.Color, r square.Rank) square.Rank {
	if c == piece.White {
		return r
	}
	return square.Rank8 - r
}
