// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package eval_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search/eval"
)

func TestStartPositionIsBalanced(t *testing.T) {
	b := board.New()
	pt := eval.NewPawnTable()
	if got := eval.Evaluate(b, pt); got != 0 {
		t.Errorf("Evaluate(start) = %d, want 0 (symmetric position)", got)
	}
}

func TestExtraQueenIsWinning(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/8/8/QQQQK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pt := eval.NewPawnTable()
	if got := eval.Evaluate(b, pt); got <= 0 {
		t.Errorf("Evaluate(four queens vs bare king) = %d, want a large positive score", got)
	}
}

func TestEvaluateIsSideRelative(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	white, err := board.NewFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}

	flipped := fen[:len(fen)-len("w KQkq - 0 1")] + "b KQkq - 0 1"
	black, err := board.NewFromFEN(flipped)
	if err != nil {
		t.Fatal(err)
	}

	pt := eval.NewPawnTable()
	ws := eval.Evaluate(white, pt)
	bs := eval.Evaluate(black, pt)
	if ws != -bs {
		t.Errorf("same placement, opposite side to move: white-to-move eval %d, black-to-move eval %d, want negatives of each other", ws, bs)
	}
}

func TestScorePackUnpack(t *testing.T) {
	s := eval.S(123, -456)
	if s.MG() != 123 || s.EG() != -456 {
		t.Errorf("got MG=%d EG=%d, want MG=123 EG=-456", s.MG(), s.EG())
	}
}

func TestTaperClampsPhase(t *testing.T) {
	s := eval.S(100, -100)
	if got := eval.Taper(s, -5); got != eval.Taper(s, 0) {
		t.Errorf("Taper(-5) = %d, want same as Taper(0) = %d", got, eval.Taper(s, 0))
	}
	if got := eval.Taper(s, eval.MaxPhase+100); got != eval.Taper(s, eval.MaxPhase) {
		t.Errorf("Taper(MaxPhase+100) = %d, want same as Taper(MaxPhase) = %d", got, eval.Taper(s, eval.MaxPhase))
	}
}
