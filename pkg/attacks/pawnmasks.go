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
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

var (
	adjacentFilesBB   [square.FileN]bitboard.Board
	forwardRanksBB    [piece.ColorN][square.RankN]bitboard.Board
	forwardFileBB     [piece.ColorN][square.N]bitboard.Board
	passedPawnMaskBB  [piece.ColorN][square.N]bitboard.Board
	pawnAttackSpanBB  [piece.ColorN][square.N]bitboard.Board
)

func init() {
	for f := square.FileA; f < square.FileN; f++ {
		var mask bitboard.Board
		if f > square.FileA {
			mask |= bitboard.FileBB[f-1]
		}
		if f < square.FileH {
			mask |= bitboard.FileBB[f+1]
		}
		adjacentFilesBB[f] = mask
	}

	for r := square.Rank1; r < square.RankN; r++ {
		var white, black bitboard.Board
		for rr := square.Rank1; rr < square.RankN; rr++ {
			if rr > r {
				white |= bitboard.RankBB[rr]
			}
			if rr < r {
				black |= bitboard.RankBB[rr]
			}
		}
		forwardRanksBB[piece.White][r] = white
		forwardRanksBB[piece.Black][r] = black
	}

	for s := square.Square(0); s < square.N; s++ {
		file := bitboard.FileBB[s.File()]
		forwardFileBB[piece.White][s] = file & forwardRanksBB[piece.White][s.Rank()]
		forwardFileBB[piece.Black][s] = file & forwardRanksBB[piece.Black][s.Rank()]

		span := file | adjacentFilesBB[s.File()]
		passedPawnMaskBB[piece.White][s] = span & forwardRanksBB[piece.White][s.Rank()]
		passedPawnMaskBB[piece.Black][s] = span & forwardRanksBB[piece.Black][s.Rank()]

		adjSpan := adjacentFilesBB[s.File()]
		pawnAttackSpanBB[piece.White][s] = adjSpan & forwardRanksBB[piece.White][s.Rank()]
		pawnAttackSpanBB[piece.Black][s] = adjSpan & forwardRanksBB[piece.Black][s.Rank()]
	}
}

// AdjacentFiles returns the bitboard of the files directly left/right of
// the given file (used to test isolated/passed pawns).
func AdjacentFiles(f square.File) bitboard.Board {
	return adjacentFilesBB[f]
}

// ForwardRanks returns every rank strictly ahead of r from c's point of
// view.
func ForwardRanks(c piece.Color, r square.Rank) bitboard.Board {
	return forwardRanksBB[c][r]
}

// ForwardFile returns the file of sq, restricted to ranks strictly ahead
// of sq from c's point of view (used for "rook behind passed pawn" and
// blocked-pawn tests).
func ForwardFile(c piece.Color, sq square.Square) bitboard.Board {
	return forwardFileBB[c][sq]
}

// PassedPawnMask returns the span of squares (sq's file and both
// adjacent files, ahead of sq) that must be clear of enemy pawns for a
// pawn on sq to be passed.
func PassedPawnMask(c piece.Color, sq square.Square) bitboard.Board {
	return passedPawnMaskBB[c][sq]
}

// PawnAttackSpan returns the squares from which an enemy pawn could ever
// attack a pawn advancing from sq (the adjacent files, ahead of sq).
func PawnAttackSpan(c piece.Color, sq square.Square) bitboard.Board {
	return pawnAttackSpanBB[c][sq]
}
