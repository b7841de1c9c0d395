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

package cmd

import (
	"errors"

	"github.com/kestrelchess/kestrel/internal/engine/context"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
)

// NewPonderHit builds the UCI "ponderhit" command: the move the engine
// was pondering on was actually played, so its infinite ponder search
// should end and continue as a normal search under the limits that were
// deferred when pondering started.
//
// threadpool.Pool.Go runs a whole search to completion as one blocking call
// rather than accepting a mid-flight limit change, so "ponderhit" stops
// the ponder search and restarts a fresh one with the stored limits
// instead of converting the running search in place.
func NewPonderHit(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "ponderhit",
		Run: func(interaction cmd.Interaction) error {
			if !engine.Pondering {
				return errors.New("ponderhit: no ponder search in progress")
			}

			limits := engine.PonderLimits
			engine.Pool.Stop()
			engine.Pondering = false

			engine.Searching = true
			go func() {
				defer func() { engine.Searching = false }()

				report := func(r search.Report) {
					if engine.Config.UseStdout {
						interaction.Reply(r)
					}
				}

				pv, _, err := engine.Pool.Go(engine.Board, limits, report)
				if err != nil {
					interaction.Reply(err)
					return
				}
				interaction.Replyf("bestmove %s", pv.Move(0))
			}()

			return nil
		},
	}
}
