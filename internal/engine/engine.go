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

// Package engine wires the UCI command schema to a lazy-SMP thread pool,
// assembling the options (Threads, Hash, Ponder) a GUI can set and the
// commands (position, go, stop, setoption, ucinewgame, d) that drive it.
package engine

import (
	"github.com/kestrelchess/kestrel/internal/engine/cmd"
	"github.com/kestrelchess/kestrel/internal/engine/context"
	"github.com/kestrelchess/kestrel/pkg/engine/config"
	"github.com/kestrelchess/kestrel/pkg/uci"
	"github.com/kestrelchess/kestrel/pkg/uci/option"
)

// NewClient builds a ready-to-run uci.Client backed by a fresh Engine
// configured with cfg.
func NewClient(cfg config.Config) uci.Client {
	client := uci.NewClient()

	engine := context.NewEngine(cfg)
	engine.Client = client
	engine.OptionSchema = newOptionSchema(engine)
	_ = engine.OptionSchema.SetDefaults()

	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewPonderHit(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewD(engine))

	return client
}

// newOptionSchema declares the UCI options backed by engine's config and
// thread pool: Hash and Threads resize the pool live, Ponder is a plain
// flag consulted by the "go"/"ponderhit" handlers.
func newOptionSchema(engine *context.Engine) option.Schema {
	schema := option.NewSchema()

	schema.AddOption("Threads", &option.Spin{
		Default: engine.Config.Threads,
		Min:     1,
		Max:     256,
		Storage: func(n int) error {
			engine.Config.Threads = n
			engine.Pool.Resize(n)
			return nil
		},
	})

	schema.AddOption("Hash", &option.Spin{
		Default: engine.Config.HashMB,
		Min:     1,
		Max:     1 << 16,
		Storage: func(n int) error {
			engine.Config.HashMB = n
			engine.Pool.ResizeHash(n)
			return nil
		},
	})

	schema.AddOption("Ponder", &option.Check{
		Default: false,
		Storage: func(b bool) error {
			engine.Ponder = b
			return nil
		},
	})

	return schema
}
