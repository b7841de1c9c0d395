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

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
	}

	for _, fen := range fens {
		b, err := board.NewFromFEN(fen)
		if err != nil {
			t.Fatalf("NewFromFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestBadFEN(t *testing.T) {
	bad := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
	}
	for _, fen := range bad {
		if _, err := board.NewFromFEN(fen); err == nil {
			t.Errorf("NewFromFEN(%q): expected an error", fen)
		}
	}
}

func TestMakeUnmakeRestoresState(t *testing.T) {
	b := board.New()
	before := b.FEN()
	beforeKey := b.ZobristKey()

	moves := b.GenerateMoves(nil, board.Legal, board.All)
	if len(moves) != 20 {
		t.Fatalf("expected 20 legal moves from the start position, got %d", len(moves))
	}

	for _, m := range moves {
		b.MakeMove(m)
		if err := b.UnmakeMove(m); err != nil {
			t.Fatalf("UnmakeMove(%s): %v", m, err)
		}
		if got := b.FEN(); got != before {
			t.Fatalf("after make/unmake %s: FEN = %q, want %q", m, got, before)
		}
		if got := b.ZobristKey(); got != beforeKey {
			t.Fatalf("after make/unmake %s: zobrist = %x, want %x", m, got, beforeKey)
		}
	}
}

func TestIncrementalZobristMatchesRecompute(t *testing.T) {
	b := board.New()

	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		for _, m := range b.GenerateMoves(nil, board.Legal, board.All) {
			b.MakeMove(m)

			want := b.ZobristKey()
			fromFEN, err := board.NewFromFEN(b.FEN())
			if err != nil {
				t.Fatalf("NewFromFEN(%q): %v", b.FEN(), err)
			}
			if got := fromFEN.ZobristKey(); got != want {
				t.Errorf("after %s: incremental zobrist %x != recomputed %x (fen %s)", m, want, got, b.FEN())
			}

			walk(depth - 1)
			_ = b.UnmakeMove(m)
		}
	}
	walk(2)
}

func TestLegalIsSubsetOfPseudoLegal(t *testing.T) {
	positions := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	}

	for _, fen := range positions {
		b, err := board.NewFromFEN(fen)
		if err != nil {
			t.Fatalf("NewFromFEN(%q): %v", fen, err)
		}

		legal := b.GenerateMoves(nil, board.Legal, board.All)
		pseudo := b.GenerateMoves(nil, board.PseudoLegal, board.All)

		pseudoSet := make(map[string]bool, len(pseudo))
		for _, m := range pseudo {
			pseudoSet[m.String()] = true
		}

		for _, m := range legal {
			if !pseudoSet[m.String()] {
				t.Errorf("fen %q: legal move %s missing from pseudo-legal list", fen, m)
			}
			if !b.LegalMove(m) {
				t.Errorf("fen %q: generated legal move %s fails LegalMove", fen, m)
			}
		}
	}
}

func TestInCheckAgreesWithGivesCheck(t *testing.T) {
	// fool's-mate position where black's Qh4 gives check
	b, err := board.NewFromFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range b.GenerateMoves(nil, board.Legal, board.All) {
		claims := b.GivesCheck(m)

		b.MakeMove(m)
		actual := b.InCheck()
		_ = b.UnmakeMove(m)

		if claims != actual {
			t.Errorf("move %s: GivesCheck=%v but resulting InCheck=%v", m, claims, actual)
		}
	}
}
