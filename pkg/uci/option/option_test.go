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

package option_test

import (
	"strings"
	"testing"

	"github.com/kestrelchess/kestrel/pkg/uci/option"
)

func TestSpinStoresWithinBounds(t *testing.T) {
	var got int
	schema := option.NewSchema()
	schema.AddOption("Threads", &option.Spin{
		Default: 1, Min: 1, Max: 256,
		Storage: func(n int) error { got = n; return nil },
	})

	if err := schema.SetDefaults(); err != nil {
		t.Fatalf("SetDefaults: %v", err)
	}
	if got != 1 {
		t.Errorf("after SetDefaults, got = %d, want 1", got)
	}

	if err := schema.SetOption("Threads", []string{"8"}); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if got != 8 {
		t.Errorf("after SetOption, got = %d, want 8", got)
	}
}

func TestSpinRejectsOutOfBounds(t *testing.T) {
	schema := option.NewSchema()
	schema.AddOption("Threads", &option.Spin{
		Default: 1, Min: 1, Max: 256,
		Storage: func(int) error { return nil },
	})

	if err := schema.SetOption("Threads", []string{"1000"}); err == nil {
		t.Fatal("expected an error for an out-of-bounds spin value")
	}
}

func TestCheckParsesBool(t *testing.T) {
	var got bool
	schema := option.NewSchema()
	schema.AddOption("Ponder", &option.Check{
		Default: false,
		Storage: func(b bool) error { got = b; return nil },
	})

	if err := schema.SetOption("Ponder", []string{"true"}); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if !got {
		t.Error("Ponder not set to true")
	}
}

func TestButtonPings(t *testing.T) {
	pinged := false
	schema := option.NewSchema()
	schema.AddOption("Clear Hash", &option.Button{
		Ping: func() error { pinged = true; return nil },
	})

	if err := schema.SetOption("Clear Hash", nil); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if !pinged {
		t.Error("button's Ping was not called")
	}
}

func TestSetOptionUnknownNameErrors(t *testing.T) {
	schema := option.NewSchema()
	if err := schema.SetOption("NoSuchOption", []string{"1"}); err == nil {
		t.Fatal("expected an error for an unknown option")
	}
}

func TestStringRendersOptionLines(t *testing.T) {
	schema := option.NewSchema()
	schema.AddOption("Threads", &option.Spin{Default: 1, Min: 1, Max: 256, Storage: func(int) error { return nil }})
	schema.AddOption("Ponder", &option.Check{Default: false, Storage: func(bool) error { return nil }})

	out := schema.String()
	if !strings.Contains(out, "option name Threads type spin default 1 min 1 max 256") {
		t.Errorf("missing Threads option line: %q", out)
	}
	if !strings.Contains(out, "option name Ponder type check default false") {
		t.Errorf("missing Ponder option line: %q", out)
	}
}
