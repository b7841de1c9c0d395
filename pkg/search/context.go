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

// Package search implements the engine's single-thread search
// algorithm: iterative deepening driving a principal-variation
// negamax, aspiration windows, quiescence search, and the move-ordering
// and pruning heuristics layered on top of them. pkg/search/threadpool
// runs many Contexts concurrently over the same transposition table to
// form the lazy-SMP parallel search.
package search

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/eval"
	searchtime "github.com/kestrelchess/kestrel/pkg/search/time"
	"github.com/kestrelchess/kestrel/pkg/search/tt"
)

// MaxDepth is the deepest ply the search will ever recurse to; arrays
// indexed by ply (killers) or by depth (reductions) are sized off this
// constant.
const MaxDepth = 256

// NewContext creates a Context searching on board, sharing tt (every
// worker in a lazy-SMP pool probes and writes the same table).
func NewContext(b *board.Board, table *tt.Table) *Context {
	return &Context{
		Board:    b,
		tt:       table,
		pawns:    eval.NewPawnTable(),
		stopped:  true,
	}
}

// Context holds all per-worker search state: the board being searched,
// move-ordering heuristics, and bookkeeping for the current search. A
// lazy-SMP pool runs one Context per goroutine, all sharing one *tt.Table.
type Context struct {
	Board *board.Board

	tt    *tt.Table
	pawns *eval.PawnTable

	killers [MaxDepth + 1][2]move.Move
	history [2][64][64]eval.MoveScore

	limits  Limits
	time    searchtime.Manager
	stopped bool

	nodes    int
	seldepth int

	depth   int
	pv      move.Variation
	pvScore eval.Eval

	// rootShuffleSeed, when non-zero, makes negamax shuffle the root
	// move list before the usual MVV-LVA/hash-move ordering instead of
	// leaving it in generation order, so a lazy-SMP worker explores
	// root moves in a different sequence than its siblings. See
	// pkg/search/threadpool, which assigns one seed per worker.
	rootShuffleSeed uint64

	start time.Time

	report Reporter

	// StopSearch, if set, is polled once every 2048 nodes in addition
	// to the time/node limits, letting a thread pool broadcast a "stop"
	// UCI command to every worker without touching their Limits.
	StopSearch *atomic.Bool
}

// Search runs iterative deepening on the Context's board until limits
// (or an external Stop) ends it, returning the best line found and its
// evaluation from the side-to-move's perspective.
func (c *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	them := c.Board.SideToMove.Other()
	if c.Board.IsAttacked(c.Board.KingSquare(them), c.Board.SideToMove) {
		// the side not to move is in check, which means a king could be
		// captured: the position was reached by an illegal move.
		return move.Variation{}, eval.Draw, errors.New("search: position is illegal, king capturable")
	}

	c.startSearch(limits)
	defer c.Stop()

	var root []move.Move
	root = c.Board.GenerateMoves(root, board.Legal, board.All)
	if len(root) == 0 {
		return move.Variation{}, eval.Draw, errors.New("search: no legal moves in root position")
	}

	pv, score := c.iterativeDeepening()
	return pv, score, nil
}

// startSearch resets per-search counters and arms the time manager.
func (c *Context) startSearch(limits Limits) {
	limits.Depth = util.Min(orMaxDepth(limits.Depth), MaxDepth)
	c.limits = limits
	c.time = limits.manager(c.Board.SideToMove)

	c.nodes = 0
	c.seldepth = 0
	c.killers = [MaxDepth + 1][2]move.Move{}

	c.stopped = false
	c.time.GetDeadline()
}

func orMaxDepth(d int) int {
	if d <= 0 {
		return MaxDepth
	}
	return d
}

// InProgress reports whether a search is currently running.
func (c *Context) InProgress() bool {
	return !c.stopped
}

// Stop ends any in-progress search at its next node-count check.
func (c *Context) Stop() {
	c.stopped = true
}

// shouldStop is polled throughout the tree; it is cheap on the hot path
// (only the node-count's low bits) and only touches the clock or the
// shared stop flag once every 2048 nodes.
func (c *Context) shouldStop() bool {
	switch {
	case c.stopped:
		return true

	case c.nodes&2047 != 0:
		return false

	case c.StopSearch != nil && c.StopSearch.Load():
		c.Stop()
		return true

	case c.limits.Infinite:
		return false

	case c.limits.Nodes != 0 && c.nodes > c.limits.Nodes, c.time.Expired():
		c.Stop()
		return true

	default:
		return false
	}
}

// evaluate returns the static evaluation of the context's board from
// the side-to-move's perspective.
func (c *Context) evaluate() eval.Eval {
	return eval.Evaluate(c.Board, c.pawns)
}

// drawScore returns a search-node-seeded draw score so repeated draws
// during a search don't all evaluate identically and blind the search
// to a line that avoids them against a weaker opponent.
func (c *Context) drawScore() eval.Eval {
	return eval.RandDraw(c.nodes)
}

// Nodes returns the number of nodes visited by the most recent (or
// in-progress) search.
func (c *Context) Nodes() int {
	return c.nodes
}

// SetRootShuffle arms (seed != 0) or disarms (seed == 0) root move
// shuffling for lazy-SMP worker diversity; see rootShuffleSeed.
func (c *Context) SetRootShuffle(seed uint64) {
	c.rootShuffleSeed = seed
}
