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

// score is the set of types usable as a move-ordering score; uint64
// is excluded so a score and a move always fit a single OrderedMove
// word without ambiguity.
type score interface {
	~int | ~int8 | ~int16 | ~int32 |
		~uint | ~uint8 | ~uint16 | ~uint32
}

// ScoreMoves scores every move in list with scorer and returns them as
// an OrderedMoveList ready for PickMove-driven selection sort.
func ScoreMoves[T score](list []Move, scorer func(Move) T) OrderedMoveList[T] {
	ordered := make([]OrderedMove[T], len(list))
	for i, m := range list {
		ordered[i] = NewOrdered(m, scorer(m))
	}
	return OrderedMoveList[T]{moves: ordered}
}

// OrderedMoveList is a move list paired with per-move ordering scores.
type OrderedMoveList[T score] struct {
	moves []OrderedMove[T]
}

// Len returns the number of moves in the list.
func (list *OrderedMoveList[T]) Len() int {
	return len(list.moves)
}

// PickMove selection-sorts the best remaining move (by score) into
// index and returns it. Only a prefix of the list need ever be sorted,
// since alpha-beta usually stops searching long before the tail.
func (list *OrderedMoveList[T]) PickMove(index int) Move {
	best := index
	bestScore := list.moves[index].Score()

	for i := index + 1; i < len(list.moves); i++ {
		if s := list.moves[i].Score(); s > bestScore {
			best = i
			bestScore = s
		}
	}

	list.moves[index], list.moves[best] = list.moves[best], list.moves[index]
	return list.moves[index].Move()
}

// NewOrdered packs m and its score into a single OrderedMove.
func NewOrdered[T score](m Move, s T) OrderedMove[T] {
	return OrderedMove[T](uint64(uint32(s))<<32 | uint64(uint16(m)))
}

// OrderedMove packs a Move and its ordering score:
// [score:32][unused:16][move:16].
type OrderedMove[T score] uint64

// Score returns the move's ordering score.
func (m OrderedMove[T]) Score() T {
	return T(m >> 32)
}

// Move returns the packed move.
func (m OrderedMove[T]) Move() Move {
	return Move(m & 0xFFFF)
}
