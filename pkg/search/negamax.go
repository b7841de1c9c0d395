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

package search

import (
	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/eval"
	"github.com/kestrelchess/kestrel/pkg/search/tt"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// shuffleMoves Fisher-Yates shuffles list in place using a PRNG seeded
// with seed, so every lazy-SMP worker with a distinct seed searches the
// root's move list in a different order.
func shuffleMoves(list []move.Move, seed uint64) {
	var rng zobrist.PRNG
	rng.Seed(seed)
	for i := len(list) - 1; i > 0; i-- {
		j := int(rng.Uint64() % uint64(i+1))
		list[i], list[j] = list[j], list[i]
	}
}

// ttScoreToStore converts score, which is "plies till mate from root",
// to "plies till mate from this node" before writing it to the shared
// transposition table, so the same entry stays valid when reused at a
// different distance from the root.
func ttScoreToStore(score eval.Eval, ply int) int16 {
	switch {
	case score > eval.MateThreshold:
		score += eval.Eval(ply)
	case score < -eval.MateThreshold:
		score -= eval.Eval(ply)
	}
	return int16(score)
}

// ttScoreFromStored is ttScoreToStore's inverse, applied on probe.
func ttScoreFromStored(score int16, ply int) eval.Eval {
	e := eval.Eval(score)
	switch {
	case e > eval.MateThreshold:
		e -= eval.Eval(ply)
	case e < -eval.MateThreshold:
		e += eval.Eval(ply)
	}
	return e
}

// negamax is a principal-variation alpha-beta search: the zero-sum
// property of chess lets one function serve both the maximizing and
// minimizing side by negating scores and swapping bounds at each ply.
// https://www.chessprogramming.org/Negamax
// https://www.chessprogramming.org/Alpha-Beta
func (c *Context) negamax(ply, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	c.nodes++
	if ply > c.seldepth {
		c.seldepth = ply
	}

	isPVNode := beta-alpha != 1

	switch {
	case c.shouldStop():
		return 0

	case ply > 0 && c.Board.IsDraw():
		return c.drawScore()

	case depth <= 0 || ply >= MaxDepth:
		return c.quiescence(ply, alpha, beta)
	}

	hash := c.Board.ZobristKey()
	hashMove := move.Null
	if hit, ok := c.tt.Probe(hash); ok {
		hashMove = hit.Move

		if !isPVNode && int(hit.Depth) >= depth {
			value := ttScoreFromStored(hit.Score, ply)
			switch hit.Bound {
			case tt.BoundExact:
				return value
			case tt.BoundLower:
				alpha = util.Max(alpha, value)
			case tt.BoundUpper:
				beta = util.Min(beta, value)
			}
			if alpha >= beta {
				return value
			}
		}
	}

	var list []move.Move
	list = c.Board.GenerateMoves(list, board.Legal, board.All)
	if len(list) == 0 {
		if c.Board.InCheck() {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}

	if ply == 0 && c.rootShuffleSeed != 0 {
		shuffleMoves(list, c.rootShuffleSeed)
	}

	originalAlpha := alpha
	bestMove := hashMove
	bestEval := -eval.Infinite

	staticEval := c.evaluate()

	// reverse futility pruning: if we're already comfortably above beta
	// by a depth-scaled margin and not in check, assume a null move
	// would hold and cut here rather than searching further.
	if !isPVNode && !c.Board.InCheck() && depth < 7 &&
		staticEval-eval.Eval(depth)*150 >= beta {
		return staticEval
	}

	ordered := move.ScoreMoves(list, eval.OrderingFunc(c.Board, hashMove))
	quietsSearched := 0

	for i := 0; i < ordered.Len(); i++ {
		m := ordered.PickMove(i)

		givesCheck := c.Board.GivesCheck(m)
		isQuiet := m.IsQuiet()

		c.Board.MakeMove(m)

		childDepth := depth - 1
		if i > 3 && depth >= 4 && isQuiet && !isPVNode && !givesCheck && !c.Board.InCheck() {
			r := reductions[util.Min(depth, MaxDepth)][util.Min(i+1, 127)]
			childDepth = util.Max(1, depth-1-r)
		}

		var childPV move.Variation
		var score eval.Eval

		if i == 0 {
			score = -c.negamax(ply+1, childDepth, -beta, -alpha, &childPV)
		} else {
			score = -c.negamax(ply+1, childDepth, -alpha-1, -alpha, &childPV)
			if score > alpha && (childDepth < depth-1 || isPVNode) {
				// either the reduced search beat alpha (re-search at
				// full depth to confirm) or this is a pv node and the
				// null-window probe wasn't conclusive
				score = -c.negamax(ply+1, depth-1, -beta, -alpha, &childPV)
			}
		}

		c.Board.UnmakeMove(m)

		if isQuiet {
			quietsSearched++
		}

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					if isQuiet {
						c.storeKiller(ply, m)
						c.updateHistory(m, depth)
					}
					break
				}
			}
		}
	}

	if !c.stopped {
		var bound tt.Bound
		switch {
		case bestEval <= originalAlpha:
			bound = tt.BoundUpper
		case bestEval >= beta:
			bound = tt.BoundLower
		default:
			bound = tt.BoundExact
		}

		c.tt.Place(hash, bestMove, ttScoreToStore(bestEval, ply), int16(staticEval), int8(util.Min(depth, 127)), bound)
	}

	return bestEval
}
