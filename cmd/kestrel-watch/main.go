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

// Command kestrel-watch is a read-only terminal dashboard: it starts a
// thread-pool search on a given position and redraws a gauge of
// aggregate node throughput and a sparkline of per-worker depth reached,
// polling threadpool.Pool.Stats once a second. It never changes search
// behavior; the core runs identically with or without it attached.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/search"
	"github.com/kestrelchess/kestrel/pkg/search/threadpool"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "position to search, in FEN")
	threads := flag.Int("threads", 4, "lazy-SMP worker count")
	hashMB := flag.Int("hash", 64, "transposition table size in MB")
	depth := flag.Int("depth", 0, "search depth (0 means run until q/Ctrl-C)")
	flag.Parse()

	b, err := board.NewFromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pool := threadpool.New(*threads, *hashMB)

	if err := ui.Init(); err != nil {
		log.Fatalf("kestrel-watch: termui init failed: %v", err)
	}
	defer ui.Close()

	nodeGauge := widgets.NewGauge()
	nodeGauge.Title = "node throughput"
	nodeGauge.SetRect(0, 0, 60, 3)
	nodeGauge.BarColor = ui.ColorGreen

	depths := make([]*widgets.Sparkline, *threads)
	for i := range depths {
		sl := widgets.NewSparkline()
		sl.LineColor = ui.ColorCyan
		sl.Title = fmt.Sprintf("worker %d depth", i)
		depths[i] = sl
	}
	depthGroup := widgets.NewSparklineGroup(depths...)
	depthGroup.Title = "per-worker depth reached"
	depthGroup.SetRect(0, 3, 60, 3+2*len(depths))

	limits := search.Limits{Depth: *depth, Infinite: *depth == 0}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = pool.Go(b, limits, nil)
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	uiEvents := ui.PollEvents()

	var lastNodes int
	lastTick := time.Now()

	render := func() {
		stats := pool.Stats()
		total := pool.TotalNodes()

		now := time.Now()
		rate := float64(total-lastNodes) / now.Sub(lastTick).Seconds()
		lastNodes, lastTick = total, now

		nodeGauge.Percent = clampPercent(int(rate / 1000))
		nodeGauge.Label = fmt.Sprintf("%.0f knodes/sec (total %d)", rate/1000, total)

		for i, sl := range depths {
			if i >= len(stats) {
				continue
			}
			sl.Data = append(sl.Data, float64(stats[i].Depth))
			if len(sl.Data) > 60 {
				sl.Data = sl.Data[len(sl.Data)-60:]
			}
		}

		ui.Render(nodeGauge, depthGroup)
	}

	render()
	for {
		select {
		case <-done:
			render()
			return

		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				pool.Stop()
				<-done
				return
			}

		case <-ticker.C:
			render()
		}
	}
}

func clampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
