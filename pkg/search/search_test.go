// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
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

package search_test

import (
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/eval"
	"github.com/kestrelchess/kestrel/pkg/search/tt"
)

func newContext(t *testing.T, fen string) *search.Context {
	t.Helper()
	b, err := board.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q): %v", fen, err)
	}
	return search.NewContext(b, tt.New(4))
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Black's king is boxed in by its own pawns; Re1-e8 is a back-rank
	// mate.
	c := newContext(t, "6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")

	pv, score, err := c.Search(search.Limits{Depth: 4})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if pv.Len() == 0 {
		t.Fatal("Search returned an empty principal variation")
	}
	if got, want := pv.Move(0).String(), "e1e8"; got != want {
		t.Errorf("best move = %s, want %s", got, want)
	}
	if score < eval.MateIn(2) {
		t.Errorf("score = %v, want a mate-in-one score", score)
	}
}

func TestSearchPrefersMateInOneOverMaterialGain(t *testing.T) {
	// Capturing the queen on a1 gains material, but Re1-e8 mates
	// immediately and must be preferred.
	c := newContext(t, "6k1/5ppp/8/8/8/8/7K/q3R3 w - - 0 1")

	pv, _, err := c.Search(search.Limits{Depth: 6})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if pv.Len() == 0 {
		t.Fatal("Search returned an empty principal variation")
	}
	if got, want := pv.Move(0).String(), "e1e8"; got != want {
		t.Errorf("best move = %s, want mating move %s", got, want)
	}
}

func TestSearchRejectsIllegalPosition(t *testing.T) {
	// Both kings adjacent with white to move: black's king is attacked
	// by white's, meaning black just made an illegal move.
	c := newContext(t, "8/8/8/3k4/3K4/8/8/8 w - - 0 1")

	if _, _, err := c.Search(search.Limits{Depth: 1}); err == nil {
		t.Fatal("expected an error searching an illegal position")
	}
}

func TestSearchStopsAtRequestedDepth(t *testing.T) {
	c := newContext(t, board.StartFEN)

	if _, _, err := c.Search(search.Limits{Depth: 3}); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if c.InProgress() {
		t.Error("InProgress() = true after Search returned")
	}
	if c.Nodes() == 0 {
		t.Error("Nodes() = 0 after a depth-3 search")
	}
}

func TestStopEndsSearchEarly(t *testing.T) {
	c := newContext(t, board.StartFEN)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, _, err := c.Search(search.Limits{Infinite: true}); err != nil {
			t.Errorf("Search: %v", err)
		}
	}()

	for !c.InProgress() {
		// wait for startSearch to flip c.stopped before racing Stop
		// against it.
		time.Sleep(time.Millisecond)
	}
	c.Stop()
	<-done

	if c.InProgress() {
		t.Error("InProgress() = true after Stop ended the search")
	}
}
