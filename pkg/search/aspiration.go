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

package search

import (
	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/eval"
)

// aspirationWindowSize is the initial half-width of the search window
// around the previous iteration's score.
const aspirationWindowSize eval.Eval = 18

// aspirationWindow searches depth with a window narrowed around
// prevScore rather than (-inf, +inf): most of the time the true score
// lands inside the window and far more beta cutoffs are achieved, at
// the cost of a re-search on the rare iteration where it doesn't.
// https://www.chessprogramming.org/Aspiration_Windows
func (c *Context) aspirationWindow(depth int, prevScore eval.Eval) (eval.Eval, move.Variation) {
	alpha, beta := -eval.Infinite, eval.Infinite
	delta := aspirationWindowSize

	searchDepth := depth
	if depth >= 5 {
		alpha = prevScore - delta
		beta = prevScore + delta
	}

	for {
		if c.shouldStop() {
			return 0, move.Variation{}
		}

		var pv move.Variation
		score := c.negamax(0, searchDepth, alpha, beta, &pv)

		switch {
		case score <= alpha:
			beta = (alpha + beta) / 2
			alpha = util.Max(score-delta, -eval.Infinite)
			searchDepth = depth

		case score >= beta:
			beta = util.Min(score+delta, eval.Infinite)
			if searchDepth > 1 {
				searchDepth--
			}

		default:
			return score, pv
		}

		delta += delta/4 + 5
	}
}
