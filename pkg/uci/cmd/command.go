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

// Package cmd implements the schema and dispatch machinery for UCI
// commands: flag parsing, optional parallel execution, and the
// Interaction a Command's Run function uses to reply to the GUI.
package cmd

import (
	"fmt"
	"io"

	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

// NewSchema initializes a new command schema replying on replyWriter.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema contains the set of commands a client accepts.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add adds the given command to the Schema, replacing any command with
// the same name.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is the schema of a single GUI-to-engine command.
type Command struct {
	// Name is the command's token, e.g. "go" or "setoption".
	Name string

	// Parallel, if true, lets the REPL keep reading further commands
	// while this one is still running (used by "go", so "stop" can be
	// read and acted on while a search is in progress).
	Parallel bool

	// Run does the command's actual work, given the flags parsed from
	// its arguments.
	Run func(Interaction) error

	// Flags is this command's flag schema, parsed from its arguments
	// before Run is called.
	Flags flag.Schema
}

// RunWith parses args against the command's flag schema and calls Run,
// in a new goroutine if parallelize and the command allows it.
func (c Command) RunWith(args []string, parallelize bool, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	interaction := Interaction{
		stdout:  schema.replyWriter,
		Command: c,
		Values:  values,
	}

	if parallelize && c.Parallel {
		go func() {
			if err := c.Run(interaction); err != nil {
				interaction.Reply(err)
			}
		}()
		return nil
	}

	return c.Run(interaction)
}

// Interaction carries the information a Command's Run function needs to
// read its flags and reply to the GUI.
type Interaction struct {
	stdout io.Writer

	Command

	Values flag.Values
}

// Reply writes a reply line to the GUI, like fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a reply line to the GUI, like fmt.Printf with a
// newline terminator appended.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
