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
	"time"

	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/eval"
)

// Reporter is notified after every completed iteration, so a UCI driver
// or a pool's main worker can print "info depth ..." progress without
// this package depending on any output format.
type Reporter func(Report)

// OnIteration installs (or clears, with nil) the Context's Reporter.
func (c *Context) OnIteration(r Reporter) {
	c.report = r
}

// iterativeDeepening is the main search loop: it calls negamax at
// increasing depths until the depth limit or a time/node limit ends the
// search. Shallower iterations are not wasted effort: they populate the
// transposition table and move-ordering heuristics that make the next,
// deeper iteration much faster than searching that depth cold would be.
// https://www.chessprogramming.org/Iterative_Deepening
func (c *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	c.start = time.Now()

	var pv move.Variation
	var score eval.Eval

	for c.depth = 1; c.depth <= c.limits.Depth; c.depth++ {
		iterScore, iterPV := c.aspirationWindow(c.depth, score)

		if c.stopped && c.depth > 1 {
			break
		}

		score, pv = iterScore, iterPV
		c.pv, c.pvScore = pv, score

		if c.report != nil {
			c.report(c.Report())
		}

		if score > eval.MateThreshold && eval.Mate-score <= eval.Eval(c.depth) {
			// a mate shorter than or equal to the current depth has
			// been found and proven; searching deeper can't improve it
			break
		}
	}

	return pv, score
}
