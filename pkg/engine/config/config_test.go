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

package config_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/engine/config"
)

func TestClampNormalizesOutOfRangeFields(t *testing.T) {
	c := config.Config{Threads: -3, HashMB: 0, MaxPly: -1}
	c.Clamp()

	if c.Threads != 1 {
		t.Errorf("Threads = %d, want 1", c.Threads)
	}
	if c.HashMB != 1 {
		t.Errorf("HashMB = %d, want 1", c.HashMB)
	}
	if c.MaxPly != config.Default.MaxPly {
		t.Errorf("MaxPly = %d, want %d", c.MaxPly, config.Default.MaxPly)
	}
}

func TestClampLeavesValidFieldsAlone(t *testing.T) {
	c := config.Config{Threads: 8, HashMB: 256, MaxPly: 64}
	c.Clamp()

	if c.Threads != 8 || c.HashMB != 256 || c.MaxPly != 64 {
		t.Errorf("Clamp altered valid fields: %+v", c)
	}
}

func TestDefaultIsUsable(t *testing.T) {
	c := config.Default
	c.Clamp()
	if c.Threads != config.Default.Threads ||
		c.HashMB != config.Default.HashMB ||
		c.MaxPly != config.Default.MaxPly ||
		c.UseStdout != config.Default.UseStdout {
		t.Errorf("Clamp changed Default: got %+v, want %+v", c, config.Default)
	}
}
