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

package cmd_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	engcmd "github.com/kestrelchess/kestrel/internal/engine/cmd"
	"github.com/kestrelchess/kestrel/internal/engine/context"
	"github.com/kestrelchess/kestrel/pkg/engine/config"
	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
	"github.com/kestrelchess/kestrel/pkg/uci/option"
)

func newTestEngine() *context.Engine {
	cfg := config.Default
	cfg.Threads = 1
	cfg.HashMB = 1
	return context.NewEngine(cfg)
}

func run(t *testing.T, c cmd.Command, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	schema := cmd.NewSchema(&buf)
	err := c.RunWith(args, false, schema)
	return buf.String(), err
}

func TestPositionStartpos(t *testing.T) {
	engine := newTestEngine()
	c := engcmd.NewPosition(engine)

	if _, err := run(t, c, []string{"startpos"}); err != nil {
		t.Fatalf("position startpos: %v", err)
	}
	if got, want := engine.Board.FEN(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"; got != want {
		t.Errorf("Board.FEN() = %q, want %q", got, want)
	}
}

func TestPositionFenWithMoves(t *testing.T) {
	engine := newTestEngine()
	c := engcmd.NewPosition(engine)

	args := append([]string{"fen"}, strings.Fields("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")...)
	args = append(args, "moves", "e2e4")

	if _, err := run(t, c, args); err != nil {
		t.Fatalf("position fen ... moves e2e4: %v", err)
	}
	if engine.Board.SideToMove.String() != "b" {
		t.Errorf("side to move = %s, want b after one move", engine.Board.SideToMove)
	}
}

func TestPositionRejectsBothStartposAndFen(t *testing.T) {
	engine := newTestEngine()
	c := engcmd.NewPosition(engine)

	args := append([]string{"startpos", "fen"}, strings.Fields("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")...)
	if _, err := run(t, c, args); err == nil {
		t.Fatal("expected an error when both startpos and fen are given")
	}
}

func TestPositionRejectsWhileSearching(t *testing.T) {
	engine := newTestEngine()
	engine.Searching = true
	c := engcmd.NewPosition(engine)

	if _, err := run(t, c, []string{"startpos"}); err == nil {
		t.Fatal("expected an error while a search is in progress")
	}
}

func TestStopRequiresActiveSearch(t *testing.T) {
	engine := newTestEngine()
	c := engcmd.NewStop(engine)

	if _, err := run(t, c, nil); err == nil {
		t.Fatal("expected an error when no search is in progress")
	}
}

func TestUciNewGameClearsBoard(t *testing.T) {
	engine := newTestEngine()
	m, err := engine.Board.MoveFromUCI("e2e4")
	if err != nil {
		t.Fatalf("MoveFromUCI: %v", err)
	}
	engine.Board.MakeMove(m)

	c := engcmd.NewUciNewGame(engine)
	if _, err := run(t, c, nil); err != nil {
		t.Fatalf("ucinewgame: %v", err)
	}

	if got, want := engine.Board.FEN(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"; got != want {
		t.Errorf("Board.FEN() after ucinewgame = %q, want %q", got, want)
	}
}

func TestDRepliesFenAndKey(t *testing.T) {
	engine := newTestEngine()
	c := engcmd.NewD(engine)

	out, err := run(t, c, nil)
	if err != nil {
		t.Fatalf("d: %v", err)
	}
	if !strings.Contains(out, "Fen:") || !strings.Contains(out, "Key:") {
		t.Errorf("d output missing Fen/Key lines: %q", out)
	}
}

func TestUciCommandAdvertisesOptions(t *testing.T) {
	engine := newTestEngine()

	engine.OptionSchema = option.NewSchema()
	engine.OptionSchema.AddOption("Threads", &option.Spin{
		Default: 1, Min: 1, Max: 256,
		Storage: func(int) error { return nil },
	})

	c := engcmd.NewUci(engine)
	out, err := run(t, c, nil)
	if err != nil {
		t.Fatalf("uci: %v", err)
	}
	if !strings.Contains(out, "uciok") {
		t.Errorf("uci output missing uciok: %q", out)
	}
	if !strings.Contains(out, "id name Kestrel") {
		t.Errorf("uci output missing id name line: %q", out)
	}
	if !strings.Contains(out, "option name Threads") {
		t.Errorf("uci output missing option line: %q", out)
	}
}

func TestGoRejectsConcurrentSearch(t *testing.T) {
	engine := newTestEngine()
	engine.Searching = true
	c := engcmd.NewGo(engine)

	if _, err := run(t, c, []string{"depth", "1"}); err == nil {
		t.Fatal("expected an error when a search is already in progress")
	}
}

func TestGoPonderRejectedWhenPonderDisabled(t *testing.T) {
	engine := newTestEngine()
	engine.Ponder = false
	c := engcmd.NewGo(engine)

	if _, err := run(t, c, []string{"ponder", "infinite"}); err == nil {
		t.Fatal("expected an error for go ponder with pondering disabled")
	}
}

// syncBuffer guards a bytes.Buffer with a mutex: the "go" command's Run
// replies from its own goroutine while the test polls the same buffer,
// which a plain bytes.Buffer does not allow safely.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestGoRunsToBestmove(t *testing.T) {
	engine := newTestEngine()
	c := engcmd.NewGo(engine)

	var buf syncBuffer
	schema := cmd.NewSchema(&buf)
	if err := c.RunWith([]string{"depth", "3"}, true, schema); err != nil {
		t.Fatalf("go depth 3: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		if strings.Contains(buf.String(), "bestmove") {
			return
		}
		select {
		case <-deadline:
			t.Fatal("go depth 3 did not reply with bestmove in time")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
