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
	"fmt"
	"time"

	"github.com/kestrelchess/kestrel/internal/util"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/eval"
)

// Report is a snapshot of one completed iteration, in the shape a UCI
// "info" line or a dashboard wants it.
type Report struct {
	Depth    int
	SelDepth int

	Nodes int
	Nps   float64

	Time time.Duration

	Score eval.Eval
	PV    move.Variation
}

// Report builds a Report from the Context's current search state.
func (c *Context) Report() Report {
	elapsed := time.Since(c.start)
	return Report{
		Depth:    c.depth,
		SelDepth: c.seldepth,
		Nodes:    c.nodes,
		Nps:      float64(c.nodes) / util.Max(0.001, elapsed.Seconds()),
		Time:     elapsed,
		Score:    c.pvScore,
		PV:       c.pv,
	}
}

// String renders a Report as a UCI-compliant "info" line.
func (r Report) String() string {
	return fmt.Sprintf(
		"info depth %d seldepth %d score %s nodes %d nps %.0f time %d pv %s",
		r.Depth, r.SelDepth, r.Score, r.Nodes, r.Nps, r.Time.Milliseconds(), r.PV,
	)
}
