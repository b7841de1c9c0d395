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

// Package time implements the search's clock: the strategies that turn
// UCI "go" time controls into a concrete deadline for the current move.
package time

import (
	"time"

	"github.com/kestrelchess/kestrel/pkg/piece"
)

// Manager decides when the current iterative-deepening search should
// stop based on a wall-clock deadline.
type Manager interface {
	// GetDeadline computes and stores the internal deadline for this
	// search.
	GetDeadline()

	// ExtendDeadline is called when a completed iteration suggests the
	// position needs more time (e.g. an unstable best move). Not every
	// Manager can honor this.
	ExtendDeadline()

	// Expired reports whether the deadline has passed.
	Expired() bool
}

// NormalManager is used for GUI-driven games: it splits the remaining
// clock time roughly evenly across the moves left to the next time
// control.
type NormalManager struct {
	Us piece.Color

	Time, Increment [piece.ColorN]int
	MovesToGo       int

	deadline time.Time
}

var _ Manager = (*NormalManager)(nil)

// movesToGoDefault is used when the GUI doesn't specify movestogo (sudden
// death time control); it assumes the game lasts at most this many more
// moves so the engine doesn't spend its whole clock on one move.
const movesToGoDefault = 30

func (m *NormalManager) GetDeadline() {
	mtg := m.MovesToGo
	if mtg == 0 {
		mtg = movesToGoDefault
	}

	budget := time.Duration(m.Time[m.Us])*time.Millisecond/time.Duration(mtg) +
		time.Duration(m.Increment[m.Us])*time.Millisecond/2

	m.deadline = time.Now().Add(budget)
}

func (m *NormalManager) ExtendDeadline() {
	m.deadline = m.deadline.Add(time.Duration(m.Time[m.Us]) * time.Millisecond / 30)
}

func (m *NormalManager) Expired() bool {
	return time.Now().After(m.deadline)
}

// MoveManager enforces a single fixed movetime; it cannot be extended.
type MoveManager struct {
	Duration int // milliseconds

	deadline time.Time
}

var _ Manager = (*MoveManager)(nil)

func (m *MoveManager) GetDeadline() {
	m.deadline = time.Now().Add(time.Duration(m.Duration) * time.Millisecond)
}

func (m *MoveManager) ExtendDeadline() {
	// fixed movetime search: nothing to extend
}

func (m *MoveManager) Expired() bool {
	return time.Now().After(m.deadline)
}

// InfiniteManager never expires; the search is stopped only by an
// explicit "stop" command or a node/depth limit.
type InfiniteManager struct{}

var _ Manager = InfiniteManager{}

func (InfiniteManager) GetDeadline()    {}
func (InfiniteManager) ExtendDeadline() {}
func (InfiniteManager) Expired() bool   { return false }
