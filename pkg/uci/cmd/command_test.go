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

package cmd_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

func TestRunWithCallsRunAndReplies(t *testing.T) {
	var buf bytes.Buffer
	schema := cmd.NewSchema(&buf)

	isready := cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	}
	schema.Add(isready)

	c, ok := schema.Get("isready")
	if !ok {
		t.Fatal("isready not found after Add")
	}
	if err := c.RunWith(nil, true, schema); err != nil {
		t.Fatalf("RunWith: %v", err)
	}

	if got := buf.String(); !strings.Contains(got, "readyok") {
		t.Errorf("output = %q, want to contain readyok", got)
	}
}

func TestRunWithParsesFlags(t *testing.T) {
	var buf bytes.Buffer
	schema := cmd.NewSchema(&buf)

	flags := flag.NewSchema()
	flags.Single("depth")

	var got string
	c := cmd.Command{
		Name:  "go",
		Flags: flags,
		Run: func(i cmd.Interaction) error {
			got = i.Values["depth"].Value.(string)
			return nil
		},
	}

	if err := c.RunWith([]string{"depth", "6"}, true, schema); err != nil {
		t.Fatalf("RunWith: %v", err)
	}
	if got != "6" {
		t.Errorf("depth = %q, want 6", got)
	}
}

func TestRunWithParallelDoesNotBlock(t *testing.T) {
	var buf bytes.Buffer
	schema := cmd.NewSchema(&buf)

	started := make(chan struct{})
	release := make(chan struct{})

	c := cmd.Command{
		Name:     "go",
		Parallel: true,
		Run: func(cmd.Interaction) error {
			close(started)
			<-release
			return nil
		},
	}

	done := make(chan error, 1)
	go func() { done <- c.RunWith(nil, true, schema) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunWith did not return while Run was blocked")
	}

	close(release)
	<-started
}

func TestRunWithNonParallelBlocks(t *testing.T) {
	var buf bytes.Buffer
	schema := cmd.NewSchema(&buf)

	ran := false
	c := cmd.Command{
		Name: "stop",
		Run: func(cmd.Interaction) error {
			ran = true
			return nil
		},
	}

	if err := c.RunWith(nil, true, schema); err != nil {
		t.Fatalf("RunWith: %v", err)
	}
	if !ran {
		t.Error("non-parallel command's Run did not execute synchronously")
	}
}
