// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package zobrist precomputes the random keys used to maintain an
// incremental Zobrist hash of a chess position.
package zobrist

import (
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
)

// Key is a Zobrist hash value.
type Key uint64

// PieceSquare holds the key for every (piece, square) pair. The material
// sub-hash reuses the same table indexed by a piece count instead of a
// square; see MaterialKeyTerm.
var PieceSquare [piece.N][square.N]Key

// EnPassantFile holds the key for each possible en-passant file.
var EnPassantFile [square.FileN]Key

// Castling holds the key for every castling-rights value (0..15).
var Castling [castling.N]Key

// SideToMove is XORed in whenever Black is to move.
var SideToMove Key

// seed matches the constant Stockfish-derived seed used throughout the
// pack's engines, chosen for no reason other than reproducibility.
const seed = 1070372

func init() {
	var rng PRNG
	rng.Seed(seed)

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f < square.FileN; f++ {
		EnPassantFile[f] = Key(rng.Uint64())
	}

	for r := castling.Rights(0); r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}

// MaterialKeyTerm returns a key usable to incrementally hash "count
// pieces of type t present" into a small material signature, by XORing
// in MaterialKeyTerm(t, n) each time the count of t changes to n. Reuses
// the piece-square key at (piece, count); those keys also hash square
// placement, but the material key is a separate hash, so they never mix.
func MaterialKeyTerm(p piece.Piece, count int) Key {
	return PieceSquare[p][count&63]
}
