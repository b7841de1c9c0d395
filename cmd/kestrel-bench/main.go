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

// Command kestrel-bench runs a perft suite and a fixed-depth search
// benchmark suite over a list of positions, reporting nodes/sec and
// rendering an HTML nodes/sec report.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/threadpool"
)

// benchPosition is one fixed-depth search benchmark entry: a FEN and the
// perft depth/node count used to cross-check move generation before
// timing the search on the same position.
type benchPosition struct {
	name       string
	fen        string
	perftDepth int
	perftNodes uint64
}

// suite is a small, well-known perft/search benchmark set; the perft
// counts are the textbook Kiwipete/position-N totals used throughout
// the engine-testing literature.
var suite = []benchPosition{
	{"startpos", board.StartFEN, 5, 4865609},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083},
	{"tricky", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 1", 4, 3894594},
}

func main() {
	searchDepth := flag.Int("depth", 10, "fixed search depth per position")
	threads := flag.Int("threads", 1, "lazy-SMP worker count")
	hashMB := flag.Int("hash", 16, "transposition table size in MB")
	report := flag.String("report", "bench-report.html", "nodes/sec HTML report path")
	flag.Parse()

	var names []string
	var nps []opts.LineData

	for _, p := range suite {
		fmt.Printf("position: %s\n", p.name)

		b, err := board.NewFromFEN(p.fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if !runPerft(b, p) {
			os.Exit(1)
		}

		rate := runSearchBench(p.fen, *searchDepth, *threads, *hashMB)
		names = append(names, p.name)
		nps = append(nps, opts.LineData{Value: rate})
	}

	plot := charts.NewLine()
	plot.SetXAxis(names).AddSeries("nodes/sec", nps)

	f, err := os.Create(*report)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := plot.Render(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("report written to %s\n", *report)
}

// runPerft drives p.perftDepth through Divide, reporting progress with a
// progress bar over the root moves, and checks the total against the
// known-good perft count.
func runPerft(b *board.Board, p benchPosition) bool {
	divide := b.Divide(p.perftDepth)

	bar := progressbar.NewOptions(
		len(divide),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("move"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	var total uint64
	for _, n := range divide {
		total += n
		_ = bar.Add(1)
	}
	_ = bar.Close()

	if total != p.perftNodes {
		fmt.Fprintf(os.Stderr, "perft %s: expected %d nodes, got %d\n", p.name, p.perftNodes, total)
		return false
	}

	fmt.Printf("perft %d: %d nodes (ok)\n", p.perftDepth, total)
	return true
}

// runSearchBench runs a single-position fixed-depth search through a
// freshly built thread pool and returns its aggregate nodes/sec.
func runSearchBench(fen string, depth, threads, hashMB int) float64 {
	b, err := board.NewFromFEN(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pool := threadpool.New(threads, hashMB)

	start := time.Now()
	_, _, err = pool.Go(b, search.Limits{Depth: depth}, nil)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	nodes := pool.TotalNodes()
	rate := float64(nodes) / elapsed.Seconds()
	fmt.Printf("search depth %d: %d nodes in %s (%.0f nodes/sec)\n", depth, nodes, elapsed, rate)
	return rate
}
