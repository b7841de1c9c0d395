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

	"github.com/kestrelchess/kestrel/pkg/board"
)

func TestPerftStartPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft in -short mode")
	}

	want := []uint64{1, 20, 400, 8902, 197281, 4865609}

	b := board.New()
	for depth, w := range want {
		if got := b.Perft(depth); got != w {
			t.Errorf("perft(%d) = %d, want %d", depth, got, w)
		}
	}
}

// Kiwipete: the standard second perft-suite position, exercising
// castling, en-passant, and promotions that TestPerftStartPosition
// never reaches.
func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft in -short mode")
	}

	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	want := []uint64{1, 48, 2039, 97862}

	b, err := board.NewFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}

	for depth, w := range want {
		if got := b.Perft(depth); got != w {
			t.Errorf("perft(%d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftEnPassantPin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft in -short mode")
	}

	// the classic "en passant would expose the king to a rook" position
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	want := []uint64{1, 14, 191, 2812, 43238}

	b, err := board.NewFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}

	for depth, w := range want {
		if got := b.Perft(depth); got != w {
			t.Errorf("perft(%d) = %d, want %d", depth, got, w)
		}
	}
}
