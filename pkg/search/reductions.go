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

import "math/bits"

// reductions[depth][moveIndex] is the late-move-reduction table: moves
// searched later in a node's move list, at greater remaining depth, are
// reduced more aggressively before a full-depth re-search.
var reductions [MaxDepth + 1][128]int

func init() {
	log2 := func(n int) int {
		if n < 1 {
			n = 1
		}
		return 63 - bits.LeadingZeros64(uint64(n))
	}

	for depth := 1; depth <= MaxDepth; depth++ {
		for moves := 1; moves < 128; moves++ {
			reductions[depth][moves] = 1 + log2(depth)*log2(moves)/2
		}
	}
}
