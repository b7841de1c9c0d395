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

package move

import "strings"

// Variation is a principal variation: a line of moves that can be
// played one after the other from the position it was computed at.
type Variation struct {
	moves []Move
}

// Move returns the variation's ith move, or Null if it has no ith move.
func (v *Variation) Move(i int) Move {
	if i < 0 || i >= len(v.moves) {
		return Null
	}
	return v.moves[i]
}

// Len returns the number of moves in the variation.
func (v *Variation) Len() int {
	return len(v.moves)
}

// Clear empties the variation without releasing its backing array.
func (v *Variation) Clear() {
	v.moves = v.moves[:0]
}

// Update replaces the variation with pvMove followed by line, the
// pattern every negamax node uses to bubble its best line up to its
// parent.
func (v *Variation) Update(pvMove Move, line Variation) {
	v.moves = append(v.moves[:0], pvMove)
	v.moves = append(v.moves, line.moves...)
}

// String renders the variation as space-separated UCI move strings.
func (v Variation) String() string {
	strs := make([]string, len(v.moves))
	for i, m := range v.moves {
		strs[i] = m.String()
	}
	return strings.Join(strs, " ")
}
