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
	"github.com/kestrelchess/kestrel/pkg/piece"
	searchtime "github.com/kestrelchess/kestrel/pkg/search/time"
)

// Limits bounds how long and how deep a single search may run. It is
// supplied fresh to every Context.Search call.
type Limits struct {
	Nodes int // 0 means unbounded
	Depth int // 0 means MaxDepth

	Infinite bool // run until Stop is called
	MoveTime int  // fixed milliseconds for this move; 0 means unset

	Time, Increment [piece.ColorN]int
	MovesToGo       int
}

// manager builds the time.Manager matching limits, given the side to
// move (needed to index Time/Increment).
func (l Limits) manager(us piece.Color) searchtime.Manager {
	switch {
	case l.Infinite:
		return searchtime.InfiniteManager{}

	case l.MoveTime != 0:
		return &searchtime.MoveManager{Duration: l.MoveTime}

	case l.Time[us] == 0 && l.Increment[us] == 0:
		// no clock for the side to move: only depth/node limits or Stop
		return searchtime.InfiniteManager{}

	default:
		return &searchtime.NormalManager{
			Us:        us,
			Time:      l.Time,
			Increment: l.Increment,
			MovesToGo: l.MovesToGo,
		}
	}
}
