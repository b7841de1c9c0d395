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

// Package uci implements a command-schema driven REPL for the Universal
// Chess Interface wire protocol.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/uci/cmd"
)

// NewClient creates a Client reading from stdin and writing to stdout,
// with the default isready and quit commands preloaded.
func NewClient() Client {
	client := Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	client.commands = cmd.NewSchema(client.stdout)

	client.AddCommand(cmdQuit)
	client.AddCommand(cmdIsReady)

	return client
}

// Client is a UCI client: a REPL dispatching lines of input to a
// Schema of Commands.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema
}

// AddCommand registers c in the client's schema.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs the read-eval-print loop against the client's stdin until
// quit is received or a read error ends it.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		prompt, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		args := strings.Fields(prompt)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args, true); err {
		case nil:
			// no error: continue the loop

		case errQuit:
			return nil

		default:
			c.Println(err)
		}
	}
}

// Run runs args as a single command, without parallelization.
func (c *Client) Run(args ...string) error {
	return c.RunWith(args, false)
}

// RunWith looks up args[0] in the command schema and runs it with the
// remaining arguments, honouring cmd.Command.Parallel if parallelize.
func (c *Client) RunWith(args []string, parallelize bool) error {
	name, args := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	return command.RunWith(args, parallelize, c.commands)
}

// Print writes to the client's stdout like fmt.Print.
func (c *Client) Print(a ...any) (int, error) {
	return fmt.Fprint(c.stdout, a...)
}

// Printf writes to the client's stdout like fmt.Printf.
func (c *Client) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(c.stdout, format, a...)
}

// Println writes to the client's stdout like fmt.Println.
func (c *Client) Println(a ...any) (int, error) {
	return fmt.Fprintln(c.stdout, a...)
}
