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

import (
	"github.com/kestrelchess/kestrel/pkg/bitboard"
	"github.com/kestrelchess/kestrel/pkg/castling"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/square"
	"github.com/kestrelchess/kestrel/pkg/zobrist"
)

// State is a per-ply snapshot of everything make/unmake needs to reverse
// a move, plus the derived tactical data (checkers, pinners, blockers)
// the legality tests and search depend on. A State is never mutated
// after it is built by MakeMove; instead each move links a fresh State
// to the one it replaces. This makes ShallowClone a pointer copy
// (sharing the whole chain) and lets the Go garbage collector play the
// role a reference count would in a language without one: a frame stays
// alive exactly as long as something still points at it.
type State struct {
	Castling       castling.Rights
	Rule50         int16
	Ply            uint16
	EnPassant      square.Square
	Zobrist        zobrist.Key
	PawnKey        zobrist.Key
	MaterialKey    zobrist.Key
	NonPawnMaterial [piece.ColorN]int32

	Captured piece.Type

	Checkers      bitboard.Board
	BlockersKing  [piece.ColorN]bitboard.Board
	PinnersKing   [piece.ColorN]bitboard.Board
	CheckSquares  [piece.TypeN]bitboard.Board

	PrevMove move.Move
	Prev     *State
}

// rootState creates the initial State for a freshly parsed position; Prev is
// nil and Rule50/Ply start at zero.
func rootState() *State {
	return &State{EnPassant: square.None}
}

// clone links a new State to s, copying every field that MakeMove
// doesn't independently recompute. The two are never the same pointer
// afterward, so mutating the result can never be observed through s.
func (s *State) clone() *State {
	n := *s
	n.Prev = s
	n.PrevMove = move.Null
	return &n
}
