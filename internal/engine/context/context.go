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

// Package context holds the state shared between every UCI command
// handler in internal/engine/cmd: the position being searched, the
// lazy-SMP pool searching it, and the option schema backing setoption.
package context

import (
	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/engine/config"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/threadpool"
	"github.com/kestrelchess/kestrel/pkg/uci"
	"github.com/kestrelchess/kestrel/pkg/uci/option"
)

// Engine is the shared context every UCI command handler closes over.
type Engine struct {
	// Client is the UCI REPL this engine is attached to. The command
	// handlers reply through their own Interaction ("go" included, from
	// its search goroutine) and do not read this field.
	Client uci.Client

	// Board is the position set up by the most recent "position"
	// command.
	Board *board.Board

	// Pool is the lazy-SMP thread pool searching Board.
	Pool *threadpool.Pool

	Searching bool

	Pondering    bool
	PonderLimits search.Limits

	// Ponder mirrors the UCI "Ponder" option: pondering is only honored
	// by the "go ponder" flag when this is true.
	Ponder bool

	Config config.Config

	OptionSchema option.Schema
}

// NewEngine creates an Engine at the standard starting position, with a
// thread pool sized off cfg.
func NewEngine(cfg config.Config) *Engine {
	cfg.Clamp()
	return &Engine{
		Board:  board.New(),
		Pool:   threadpool.New(cfg.Threads, cfg.HashMB),
		Config: cfg,
	}
}
