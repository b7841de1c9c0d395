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

package board

import "github.com/kestrelchess/kestrel/pkg/move"

// Perft counts the number of leaf nodes reachable from the current
// position at the given depth, generating only legal moves at every
// ply. It's the standard move-generator correctness/performance probe.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	moves := b.GenerateMoves(make([]move.Move, 0, 48), Legal, All)

	for _, m := range moves {
		b.MakeMove(m)
		nodes += b.Perft(depth - 1)
		b.UnmakeMove(m)
	}

	return nodes
}

// Divide returns a per-root-move perft breakdown, useful for bisecting a
// move generator bug against a reference engine's numbers.
func (b *Board) Divide(depth int) map[string]uint64 {
	out := make(map[string]uint64)
	moves := b.GenerateMoves(make([]move.Move, 0, 48), Legal, All)

	for _, m := range moves {
		b.MakeMove(m)
		var n uint64
		if depth <= 1 {
			n = 1
		} else {
			n = b.Perft(depth - 1)
		}
		out[m.String()] = n
		b.UnmakeMove(m)
	}

	return out
}
