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

// storeKiller remembers a quiet move that caused a beta cutoff at ply,
// so sibling nodes at the same ply try it early even without a capture
// or hash-move hint.
func (c *Context) storeKiller(ply int, m move.Move) {
	if m.IsCapture() || m == c.killers[ply][0] {
		return
	}
	c.killers[ply][1] = c.killers[ply][0]
	c.killers[ply][0] = m
}

// updateHistory applies the quiet-move history score adjustment for a
// beta cutoff found at depth, using the gravity formula so scores settle
// instead of growing without bound.
func (c *Context) updateHistory(m move.Move, depth int) {
	if m.IsCapture() {
		return
	}
	bonus := eval.MoveScore(util.Min(2000, depth*155))
	entry := &c.history[c.Board.SideToMove][m.Source()][m.Target()]
	*entry += bonus - *entry*util.Abs(bonus)/32768
}

// seeMargins returns the static-exchange pruning thresholds used at
// depth for quiet and noisy (capture/promotion) moves respectively.
func seeMargins(depth int) (quiet, noisy int32) {
	return -64 * int32(depth), -19 * int32(depth) * int32(depth)
}
