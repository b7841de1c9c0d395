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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/kestrelchess/kestrel/internal/build"
	"github.com/kestrelchess/kestrel/internal/engine"
	"github.com/kestrelchess/kestrel/pkg/engine/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	threads := flag.Int("threads", runtime.NumCPU(), "lazy-SMP worker count")
	hashMB := flag.Int("hash", config.Default.HashMB, "transposition table size in MB")
	flag.Parse()

	cfg := config.Default
	cfg.Threads = *threads
	cfg.HashMB = *hashMB
	cfg.Clamp()

	client := engine.NewClient(cfg)

	fmt.Printf("Kestrel %s\n", build.Version)

	if args := flag.Args(); len(args) > 0 {
		return client.RunWith(args, false)
	}

	return client.Start()
}
