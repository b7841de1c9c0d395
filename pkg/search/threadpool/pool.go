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

// Package threadpool implements lazy-SMP: N independent search.Context
// workers searching the same position, all reading and writing one
// shared transposition table. Workers agree with each other only
// through that table and a shared stop flag; there is no work
// distribution or result merging beyond picking the best worker's line
// once every worker has stopped.
//
// The pool uses goroutines and a sync.WaitGroup rather than the
// OS-thread condition-variable pair a native implementation would use:
// Go's scheduler multiplexes goroutines onto OS threads on its own, and
// a shared stop flag plus a WaitGroup give the same start/stop/rendezvous
// protocol without hand-rolled condition variables.
package threadpool

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/eval"
	"github.com/kestrelchess/kestrel/pkg/search/tt"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// randomSeedWorkersUpto bounds the 1-based range of worker indices that
// shuffle their root move order instead of using the natural
// generation-order MVV-LVA ranking: worker 0 (main) and workers past
// this index fall back to the unshuffled order.
const randomSeedWorkersUpto = 19

// Pool runs a lazy-SMP search: one search.Context per worker, all
// sharing a *tt.Table. The zero Pool is not usable; build one with New.
type Pool struct {
	mu       sync.Mutex
	tt       *tt.Table
	contexts []*search.Context

	// stopFlag is allocated once and shared by every worker for the
	// pool's whole lifetime: Stop and Go only ever toggle its value,
	// never replace the pointer, so a "stop" racing a "go" can never
	// land on a flag no worker is reading yet.
	stopFlag *atomic.Bool

	// runMu serializes Go calls: a Pool runs one search at a time, so a
	// "ponderhit" that stops and immediately restarts a search can't
	// race the previous call's still-exiting workers over stopFlag and
	// the contexts slice.
	runMu sync.Mutex

	// book is consulted by Go before spawning any worker. It is nil by
	// default, which disables the seam entirely.
	book search.BookProbe
}

// SetBook installs (or, passed nil, removes) the opening book probe that
// Go consults before starting a search.
func (p *Pool) SetBook(book search.BookProbe) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.book = book
}

// New creates a Pool with threads workers and a shared transposition
// table sized hashMB megabytes.
func New(threads, hashMB int) *Pool {
	p := &Pool{tt: tt.New(hashMB), stopFlag: new(atomic.Bool)}
	p.Resize(threads)
	return p
}

// Resize changes the worker count. Any search in progress is unaffected
// until the next Go call picks up the new count. A count of zero (or
// less) leaves the pool with no workers, and Go then returns an error.
func (p *Pool) Resize(threads int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if threads < 0 {
		threads = 0
	}
	p.contexts = make([]*search.Context, threads)
}

// ResizeHash resizes the shared transposition table.
func (p *Pool) ResizeHash(hashMB int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tt.Resize(hashMB)
}

// Clear wipes the transposition table, used on "ucinewgame".
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tt.Clear()
}

// Threads returns the current worker count.
func (p *Pool) Threads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.contexts)
}

// Stop requests every running worker to end its search at its next
// node-count poll.
func (p *Pool) Stop() {
	p.stopFlag.Store(true)
}

// WorkerStats is one worker's progress, as read by cmd/kestrel-watch.
type WorkerStats struct {
	Index int
	Depth int
	Nodes int
}

// Stats snapshots every worker's node count and depth reached so far in
// the current (or most recent) search. It is safe to call concurrently
// with Go.
func (p *Pool) Stats() []WorkerStats {
	p.mu.Lock()
	contexts := append([]*search.Context(nil), p.contexts...)
	p.mu.Unlock()

	stats := make([]WorkerStats, len(contexts))
	for i, c := range contexts {
		if c == nil {
			continue
		}
		report := c.Report()
		stats[i] = WorkerStats{Index: i, Depth: report.Depth, Nodes: c.Nodes()}
	}
	return stats
}

// TotalNodes sums every worker's node count, for a pool-wide nps figure.
func (p *Pool) TotalNodes() int {
	total := 0
	for _, s := range p.Stats() {
		total += s.Nodes
	}
	return total
}

// workerResult is one worker's finished search, collected by Go before
// picking the winner.
type workerResult struct {
	pv    move.Variation
	score eval.Eval
	depth int
	err   error
}

// Go runs the lazy-SMP search on b under limits: every worker searches
// its own ShallowClone of b independently, sharing only the
// transposition table and a stop flag, until every worker stops; it
// then returns the best worker's principal variation, per betterWorker's
// tie-break.
//
// onMainIteration, if non-nil, is called after every completed
// iteration of the main worker (worker 0), the same one a UCI driver
// would forward as "info" lines.
func (p *Pool) Go(b *board.Board, limits search.Limits, onMainIteration search.Reporter) (move.Variation, eval.Eval, error) {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	p.mu.Lock()
	threads := len(p.contexts)
	book := p.book
	p.mu.Unlock()

	if threads < 1 {
		return move.Variation{}, eval.Draw, errors.New("threadpool: no workers configured")
	}

	if book != nil {
		if m, ok := book.Probe(zobrist.Key(b.ZobristKey())); ok {
			var pv move.Variation
			pv.Update(m, move.Variation{})
			return pv, eval.Draw, nil
		}
	}

	p.stopFlag.Store(false)

	var wg sync.WaitGroup
	results := make([]workerResult, threads)

	for i := 0; i < threads; i++ {
		ctx := search.NewContext(b.ShallowClone(), p.tt)
		ctx.StopSearch = p.stopFlag

		switch {
		case i == 0, i > randomSeedWorkersUpto:
			// main and high-index workers keep the natural, fully
			// MVV-LVA-ranked root order
		default:
			ctx.SetRootShuffle(b.ZobristKey() ^ uint64(i)*0x9e3779b97f4a7c15)
		}

		p.mu.Lock()
		p.contexts[i] = ctx
		p.mu.Unlock()

		if i == 0 && onMainIteration != nil {
			ctx.OnIteration(onMainIteration)
		}

		wg.Add(1)
		go func(i int, ctx *search.Context) {
			defer wg.Done()
			pv, score, err := ctx.Search(limits)
			results[i] = workerResult{pv: pv, score: score, depth: ctx.Report().Depth, err: err}
		}(i, ctx)
	}

	wg.Wait()

	best := -1
	for i, r := range results {
		if r.err != nil {
			continue
		}
		if best == -1 || betterWorker(r, results[best]) {
			best = i
		}
	}

	if best == -1 {
		return move.Variation{}, eval.Draw, errors.New("threadpool: every worker failed")
	}

	return results[best].pv, results[best].score, nil
}

// betterWorker is the root tie-break: a candidate beats the current best
// if it scored higher, unless it did so at a strictly lower depth, in
// which case the deeper result is kept.
func betterWorker(candidate, best workerResult) bool {
	if candidate.depth < best.depth {
		return false
	}
	return candidate.score > best.score || candidate.depth > best.depth
}
