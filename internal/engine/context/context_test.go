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

package context_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/internal/engine/context"
	"github.com/kestrelchess/kestrel/pkg/engine/config"
)

func TestNewEngineStartsAtStandardPosition(t *testing.T) {
	engine := context.NewEngine(config.Config{Threads: 2, HashMB: 4})

	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if got := engine.Board.FEN(); got != want {
		t.Errorf("Board.FEN() = %q, want %q", got, want)
	}
	if got := engine.Pool.Threads(); got != 2 {
		t.Errorf("Pool.Threads() = %d, want 2", got)
	}
}

func TestNewEngineClampsInvalidConfig(t *testing.T) {
	engine := context.NewEngine(config.Config{Threads: 0, HashMB: -5})

	if got := engine.Pool.Threads(); got != 1 {
		t.Errorf("Pool.Threads() = %d, want 1 after clamping", got)
	}
}
