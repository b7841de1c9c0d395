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

package board_test

import (
	"testing"

	"github.com/notnil/chess"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
)

// oraclePositions is a handful of tactically dense FENs (castling rights,
// en-passant, pending promotions) where a legal-move-set divergence
// between the generator and an independent oracle is most likely to
// surface.
var oraclePositions = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

// TestLegalMovesMatchOracle cross-checks the legal move set generated for
// each position against github.com/notnil/chess's own move generator,
// catching a generator divergence that perft's self-referential node
// counts alone would not: a bug that swaps two equally-numbered move sets
// can still hit the right total.
func TestLegalMovesMatchOracle(t *testing.T) {
	for _, fen := range oraclePositions {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			b, err := board.NewFromFEN(fen)
			if err != nil {
				t.Fatalf("NewFromFEN: %v", err)
			}

			var ours []move.Move
			ours = b.GenerateMoves(ours, board.Legal, board.All)

			got := make(map[string]bool, len(ours))
			for _, m := range ours {
				got[m.String()] = true
			}

			fenFn, err := chess.FEN(fen)
			if err != nil {
				t.Fatalf("chess.FEN: %v", err)
			}
			game := chess.NewGame(fenFn)

			want := make(map[string]bool)
			for _, m := range game.ValidMoves() {
				want[m.String()] = true
			}

			if len(got) != len(want) {
				t.Errorf("move count = %d, oracle says %d", len(got), len(want))
			}

			for s := range want {
				if !got[s] {
					t.Errorf("oracle move %s missing from our legal move set", s)
				}
			}
			for s := range got {
				if !want[s] {
					t.Errorf("our move %s not recognized by the oracle", s)
				}
			}
		})
	}
}
