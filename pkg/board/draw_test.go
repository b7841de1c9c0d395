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

func mustMove(t *testing.T, b *board.Board, uci string) {
	t.Helper()
	m, err := b.MoveFromUCI(uci)
	if err != nil {
		t.Fatalf("MoveFromUCI(%q): %v", uci, err)
	}
	b.MakeMove(m)
}

func TestRepetitionNotFlaggedAtSecondOccurrence(t *testing.T) {
	b, err := board.NewFromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}

	// One knight-shuffle cycle returns to the starting position for the
	// second time: only one prior occurrence, not a threefold yet.
	moves := []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
	}
	for _, m := range moves {
		mustMove(t, b, m)
	}

	if b.IsRepetition() {
		t.Error("IsRepetition() = true after only one prior occurrence of the position")
	}
}

func TestRepetitionFlaggedAtThirdOccurrence(t *testing.T) {
	b, err := board.NewFromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}

	// Two knight-shuffle cycles return to the starting position for the
	// third time: two prior occurrences, which is a threefold.
	moves := []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1", "f6g8",
	}
	for _, m := range moves {
		mustMove(t, b, m)
	}

	if !b.IsRepetition() {
		t.Error("IsRepetition() = false after the starting position recurred a third time")
	}
}

func TestFiftyMoveDrawNotClaimedEarly(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 49 60")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if b.IsFiftyMoveDraw() {
		t.Error("IsFiftyMoveDraw() = true at rule_50 = 49")
	}

	mustMove(t, b, "e1d1")
	if !b.IsFiftyMoveDraw() {
		t.Error("IsFiftyMoveDraw() = false at rule_50 = 50")
	}
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if !b.IsInsufficientMaterial() {
		t.Error("IsInsufficientMaterial() = false for bare kings")
	}
}

func TestInsufficientMaterialKingAndMinor(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if !b.IsInsufficientMaterial() {
		t.Error("IsInsufficientMaterial() = false for king+knight vs king")
	}
}

func TestSufficientMaterialWithRook(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if b.IsInsufficientMaterial() {
		t.Error("IsInsufficientMaterial() = true with a rook on the board")
	}
}

func TestSameColoredBishopsAreInsufficient(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/2b5/8/2B1K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if !b.IsInsufficientMaterial() {
		t.Error("IsInsufficientMaterial() = false for same-colored bishops on each side")
	}
}

func TestOppositeColoredBishopsAreSufficient(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/1b6/8/2B1K3 w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if b.IsInsufficientMaterial() {
		t.Error("IsInsufficientMaterial() = true for opposite-colored bishops")
	}
}

func TestQueenDeliversCheckmate(t *testing.T) {
	// White king cornered on a1, black king on c2 guards b2 so the white
	// king cannot escape to b1 or a2 (both swept by the queen's rank/file)
	// or capture the queen on b2.
	b, err := board.NewFromFEN("8/8/8/8/1q6/8/2k5/K7 b - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}

	mustMove(t, b, "b4b2")

	if !b.InCheck() {
		t.Error("InCheck() = false after Qb4-b2")
	}
	if !b.Checkmate() {
		t.Error("Checkmate() = false after Qb4-b2 delivers mate")
	}
	if b.Stalemate() {
		t.Error("Stalemate() = true for a position in check")
	}
}

func TestStalemateWithNoCheck(t *testing.T) {
	// The textbook king-and-queen stalemate: white to move, the king has
	// no legal move, and none of black's pieces attack h1.
	b, err := board.NewFromFEN("8/8/8/8/8/6q1/5k2/7K w - - 0 1")
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}

	if b.InCheck() {
		t.Error("InCheck() = true in the textbook stalemate position")
	}
	if !b.Stalemate() {
		t.Error("Stalemate() = false in the textbook stalemate position")
	}
	if b.Checkmate() {
		t.Error("Checkmate() = true for a position with no check")
	}
}
