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
)

// quiescence extends the search past the leaves of the main tree along
// tactical lines only (captures, promotions, and every move while in
// check), so the static evaluation of a "quiet" position at the horizon
// isn't corrupted by an overlooked hanging piece.
// https://www.chessprogramming.org/Quiescence_Search
func (c *Context) quiescence(ply int, alpha, beta eval.Eval) eval.Eval {
	c.nodes++
	if ply > c.seldepth {
		c.seldepth = ply
	}

	if c.shouldStop() {
		return 0
	}
	if c.Board.IsDraw() {
		return c.drawScore()
	}

	inCheck := c.Board.InCheck()

	var best eval.Eval
	if !inCheck {
		best = c.evaluate() // standing pat
		alpha = util.Max(alpha, best)
		if alpha >= beta {
			return best
		}
	} else {
		best = -eval.Infinite
	}

	var list []move.Move
	kind := board.Captures
	if inCheck {
		kind = board.Evasions
	}
	list = c.Board.GenerateMoves(list, board.Legal, kind)

	if inCheck && len(list) == 0 {
		return eval.MatedIn(ply)
	}

	ordered := move.ScoreMoves(list, eval.OrderingFunc(c.Board, move.Null))
	for i := 0; i < ordered.Len(); i++ {
		m := ordered.PickMove(i)

		// skip captures/promotions that lose material even after every
		// recapture, unless we're escaping check (every evasion is
		// considered there since there may be no alternative)
		if !inCheck && !c.Board.SeeGE(m, 0) {
			continue
		}

		c.Board.MakeMove(m)
		score := -c.quiescence(ply+1, -beta, -alpha)
		c.Board.UnmakeMove(m)

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return best
}
