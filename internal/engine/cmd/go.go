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
	"strconv"

	"github.com/kestrelchess/kestrel/internal/engine/context"
	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/piece"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

// NewGo builds the UCI "go" command: start searching the position set up
// by the last "position" command under the given limits.
//
// Supported flags: wtime, btime, winc, binc, movestogo, depth, nodes,
// movetime, infinite, ponder. searchmoves and mate-in-x are not
// implemented.
func NewGo(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Button("ponder")
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("movestogo")
	schema.Single("depth")
	schema.Single("nodes")
	schema.Single("movetime")
	schema.Button("infinite")

	return cmd.Command{
		Name:     "go",
		Parallel: true,
		Run: func(interaction cmd.Interaction) error {
			if engine.Searching {
				return errors.New("go: search already in progress")
			}

			limits, err := parseSearchLimits(engine, interaction.Values)
			if err != nil {
				return err
			}

			if interaction.Values["ponder"].Set {
				if !engine.Ponder {
					return errors.New("go ponder: pondering is disabled")
				}

				engine.Pondering = true
				engine.PonderLimits = limits
				limits = search.Limits{Infinite: true}
			}

			engine.Searching = true
			go func() {
				defer func() {
					engine.Searching = false
					engine.Pondering = false
				}()

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

				best, ponder := pv.Move(0), pv.Move(1)
				if ponder == move.Null {
					interaction.Replyf("bestmove %s", best)
				} else {
					interaction.Replyf("bestmove %s ponder %s", best, ponder)
				}
			}()

			return nil
		},
		Flags: schema,
	}
}

// parseSearchLimits builds search.Limits from a "go" command's flags.
func parseSearchLimits(engine *context.Engine, values flag.Values) (search.Limits, error) {
	var limits search.Limits

	if depth := values["depth"]; depth.Set {
		d, err := strconv.Atoi(depth.Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Depth = d
	}

	if nodes := values["nodes"]; nodes.Set {
		n, err := strconv.Atoi(nodes.Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Nodes = n
	}

	timeSet := values["wtime"].Set || values["btime"].Set
	if timeSet && (!values["wtime"].Set || !values["btime"].Set) {
		return limits, errors.New("go: both wtime and btime must be set")
	}

	switch {
	case values["movetime"].Set && values["infinite"].Set,
		values["infinite"].Set && timeSet,
		timeSet && values["movetime"].Set:
		return limits, errors.New("go: multiple time controls set")

	case values["movetime"].Set:
		t, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, err
		}
		limits.MoveTime = t

	case timeSet:
		var err error

		limits.Time[piece.White], err = strconv.Atoi(values["wtime"].Value.(string))
		if err != nil {
			return limits, err
		}
		limits.Time[piece.Black], err = strconv.Atoi(values["btime"].Value.(string))
		if err != nil {
			return limits, err
		}

		incSet := values["winc"].Set || values["binc"].Set
		if incSet && (!values["winc"].Set || !values["binc"].Set) {
			return limits, errors.New("go: both winc and binc must be set")
		}
		if incSet {
			limits.Increment[piece.White], err = strconv.Atoi(values["winc"].Value.(string))
			if err != nil {
				return limits, err
			}
			limits.Increment[piece.Black], err = strconv.Atoi(values["binc"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

		if values["movestogo"].Set {
			limits.MovesToGo, err = strconv.Atoi(values["movestogo"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

	case values["infinite"].Set:
		limits.Infinite = true

	default:
		limits.Infinite = true
	}

	if ceiling := engine.Config.MaxPly; ceiling > 0 && (limits.Depth <= 0 || limits.Depth > ceiling) {
		limits.Depth = ceiling
	}

	return limits, nil
}
