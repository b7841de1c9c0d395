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

package tt_test

import (
	"testing"

	"github.com/kestrelchess/kestrel/pkg/move"
	"github.com/kestrelchess/kestrel/pkg/search/tt"
)

func TestProbeMiss(t *testing.T) {
	table := tt.New(1)
	if _, hit := table.Probe(0xdeadbeef); hit {
		t.Fatal("expected a miss on an empty table")
	}
}

func TestPlaceThenProbe(t *testing.T) {
	table := tt.New(1)
	const hash = 0x0123456789abcdef
	m := move.New(8, 16, move.FlagQuiet)

	table.Place(hash, m, 55, 40, 6, tt.BoundExact)

	hit, ok := table.Probe(hash)
	if !ok {
		t.Fatal("expected a hit after Place")
	}
	if hit.Move != m || hit.Score != 55 || hit.Depth != 6 || hit.Bound != tt.BoundExact {
		t.Errorf("got %+v", hit)
	}
}

func TestPlacePreservesMoveAcrossNonExactUpdate(t *testing.T) {
	table := tt.New(1)
	const hash = 0x1111222233334444
	m := move.New(8, 16, move.FlagQuiet)

	table.Place(hash, m, 10, 5, 4, tt.BoundExact)
	table.Place(hash, move.Null, 12, 5, 5, tt.BoundLower)

	hit, ok := table.Probe(hash)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Move != m {
		t.Errorf("expected prior move %s to be preserved, got %s", m, hit.Move)
	}
}

func TestNewSearchAgesGeneration(t *testing.T) {
	table := tt.New(1)
	table.NewSearch()
	table.NewSearch()
	// generation is internal; this just exercises that repeated calls
	// don't panic and a subsequent Place/Probe still round-trips.
	const hash = 0xaaaaaaaaaaaaaaaa
	m := move.New(1, 2, move.FlagQuiet)
	table.Place(hash, m, 1, 1, 1, tt.BoundExact)
	if hit, ok := table.Probe(hash); !ok || hit.Move != m {
		t.Fatalf("got %+v, %v", hit, ok)
	}
}
