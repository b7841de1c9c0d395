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
	"github.com/kestrelchess/kestrel/internal/build"
	"github.com/kestrelchess/kestrel/internal/engine/context"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
)

// NewUci builds the UCI "uci" command: identify the engine and its
// options, then declare UCI support.
func NewUci(engine *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "uci",
		Run: func(interaction cmd.Interaction) error {
			interaction.Replyf("id name Kestrel %s", build.Version)
			interaction.Reply("id author the Kestrel authors")

			interaction.Reply(engine.OptionSchema.String())
			interaction.Reply("uciok")

			return nil
		},
	}
}
