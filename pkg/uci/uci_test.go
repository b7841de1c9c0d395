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

package uci_test

import (
	"io"
	"os"
	"testing"

	"github.com/kestrelchess/kestrel/pkg/uci"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. uci.Client writes to os.Stdout by
// construction, with no exported way to substitute a writer, so tests
// that check its replies capture the real file descriptor.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out)
}

func TestIsReadyRepliesReadyOK(t *testing.T) {
	out := captureStdout(t, func() {
		client := uci.NewClient()
		if err := client.Run("isready"); err != nil {
			t.Fatalf("Run: %v", err)
		}
	})

	if out != "readyok\n" {
		t.Errorf("isready reply = %q, want %q", out, "readyok\n")
	}
}

func TestUnknownCommandErrors(t *testing.T) {
	client := uci.NewClient()
	if err := client.Run("nosuchcommand"); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}

func TestQuitEndsStart(t *testing.T) {
	// Start reads its input via an unexported field set only by
	// NewClient, so this exercises quit through Run instead, which is
	// what Start itself dispatches to internally.
	client := uci.NewClient()
	if err := client.Run("quit"); err == nil {
		t.Fatal("expected quit's sentinel error from Run")
	}
}

func TestAddCommandOverridesDefault(t *testing.T) {
	client := uci.NewClient()

	called := false
	client.AddCommand(cmd.Command{
		Name: "isready",
		Run: func(cmd.Interaction) error {
			called = true
			return nil
		},
	})

	if err := client.Run("isready"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !called {
		t.Error("custom isready command was not invoked")
	}
}
