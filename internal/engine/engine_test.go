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

package engine_test

import (
	"strings"
	"testing"

	"github.com/kestrelchess/kestrel/internal/engine"
	"github.com/kestrelchess/kestrel/pkg/engine/config"
)

func TestNewClientRegistersCommands(t *testing.T) {
	cfg := config.Default
	cfg.Threads = 1
	cfg.HashMB = 1

	client := engine.NewClient(cfg)

	for _, name := range []string{"uci", "ucinewgame", "position", "go", "stop", "ponderhit", "setoption", "d", "isready", "quit"} {
		if err := client.Run(name, "__nonexistent_flag_probe__"); err != nil && strings.Contains(err.Error(), "command not found") {
			t.Errorf("command %q was not registered", name)
		}
	}
}

func TestNewClientThreadsOptionResizesPool(t *testing.T) {
	cfg := config.Default
	cfg.Threads = 1
	cfg.HashMB = 1

	client := engine.NewClient(cfg)
	if err := client.Run("setoption", "name", "Threads", "value", "4"); err != nil {
		t.Fatalf("setoption Threads: %v", err)
	}
}
