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
	"github.com/kestrelchess/kestrel/internal/engine/context"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
)

// NewD builds the custom "d" command: print the current position as
// ascii art, along with its FEN and Zobrist key.
func NewD(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "d",
		Run: func(interaction cmd.Interaction) error {
			interaction.Reply(engine.Board.String())
			interaction.Replyf("Fen: %s", engine.Board.FEN())
			interaction.Replyf("Key: %x", engine.Board.ZobristKey())
			return nil
		},
	}
}
