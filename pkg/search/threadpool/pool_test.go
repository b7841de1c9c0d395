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

package threadpool_test

import (
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/threadpool"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

func TestGoFixedDepth(t *testing.T) {
	pool := threadpool.New(4, 16)
	b := board.New()

	pv, _, err := pool.Go(b, search.Limits{Depth: 5}, nil)
	if err != nil {
		t.Fatalf("Go: %v", err)
	}
	if pv.Len() == 0 {
		t.Fatal("Go: empty principal variation at startpos")
	}
}

func TestGoNoWorkersConfigured(t *testing.T) {
	pool := threadpool.New(1, 16)
	pool.Resize(0)

	b := board.New()
	if _, _, err := pool.Go(b, search.Limits{Depth: 1}, nil); err == nil {
		t.Fatal("Go: expected an error with zero workers")
	}
}

func TestStopEndsInfiniteSearch(t *testing.T) {
	pool := threadpool.New(2, 16)
	b := board.New()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = pool.Go(b, search.Limits{Infinite: true}, nil)
	}()

	time.Sleep(20 * time.Millisecond)
	pool.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Go: search did not stop after Stop")
	}
}

func TestStatsReflectSearch(t *testing.T) {
	pool := threadpool.New(3, 16)
	b := board.New()

	if _, _, err := pool.Go(b, search.Limits{Depth: 4}, nil); err != nil {
		t.Fatalf("Go: %v", err)
	}

	stats := pool.Stats()
	if len(stats) != 3 {
		t.Fatalf("Stats: got %d workers, want 3", len(stats))
	}
	for _, s := range stats {
		if s.Nodes <= 0 {
			t.Errorf("worker %d: nodes = %d, want > 0", s.Index, s.Nodes)
		}
	}
	if pool.TotalNodes() <= 0 {
		t.Error("TotalNodes: want > 0 after a search")
	}
}

type stubBook struct {
	move move.Move
}

func (s stubBook) Probe(zobrist.Key) (move.Move, bool) {
	return s.move, s.move != move.Null
}

func TestBookProbeShortCircuitsSearch(t *testing.T) {
	pool := threadpool.New(2, 16)
	b := board.New()

	var root []move.Move
	root = b.GenerateMoves(root, board.Legal, board.All)
	if len(root) == 0 {
		t.Fatal("no legal moves at startpos")
	}

	pool.SetBook(stubBook{move: root[0]})

	pv, _, err := pool.Go(b, search.Limits{Infinite: true}, nil)
	if err != nil {
		t.Fatalf("Go: %v", err)
	}
	if pv.Move(0) != root[0] {
		t.Errorf("Go: book move %s ignored, got %s", root[0], pv.Move(0))
	}
}

func TestResizeChangesThreadCount(t *testing.T) {
	pool := threadpool.New(1, 16)
	pool.Resize(6)
	if got := pool.Threads(); got != 6 {
		t.Errorf("Threads: got %d, want 6", got)
	}
}
