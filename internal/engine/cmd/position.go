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
	"strings"

	"github.com/kestrelchess/kestrel/internal/engine/context"
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

// NewPosition builds the UCI "position [fen <fenstring> | startpos]
// [moves <move>...]" command.
func NewPosition(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()

	// A FEN string is always six whitespace-separated fields; reading it
	// as a fixed-size array (rather than a variadic one, like "moves")
	// is what lets the schema tell where the FEN ends and "moves" begins.
	schema.Array("fen", 6)
	schema.Button("startpos")
	schema.Variadic("moves")

	return cmd.Command{
		Name: "position",
		Run: func(interaction cmd.Interaction) error {
			if engine.Searching {
				return errors.New("position: a search is in progress")
			}

			b, err := parsePositionFlags(interaction.Values)
			if err != nil {
				return err
			}

			engine.Board = b
			return nil
		},
		Flags: schema,
	}
}

// parsePositionFlags rebuilds a board.Board from a "position" command's
// flags: a base position (fen or startpos) plus moves played on it.
//
// "fen" is declared as a fixed six-token array rather than a variadic
// flag because a FEN string is always exactly six whitespace-separated
// fields; that fixed width is what lets the schema find where the FEN
// ends and the following "moves" keyword begins.
func parsePositionFlags(values flag.Values) (*board.Board, error) {
	var b *board.Board

	switch {
	case values["startpos"].Set && values["fen"].Set:
		return nil, errors.New("position: both startpos and fen given")

	case values["startpos"].Set:
		b = board.New()

	case values["fen"].Set:
		fen := strings.Join(values["fen"].Value.([]string), " ")
		var err error
		b, err = board.NewFromFEN(fen)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.New("position: no startpos or fen given")
	}

	if values["moves"].Set {
		for _, s := range values["moves"].Value.([]string) {
			m, err := b.MoveFromUCI(s)
			if err != nil {
				return nil, err
			}
			b.MakeMove(m)
		}
	}

	return b, nil
}
