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

// Package option implements functionality for declaring and storing UCI
// options.
package option

import (
	"fmt"
	"strconv"
	"strings"
)

// NewSchema returns a new, empty option schema.
func NewSchema() Schema {
	return Schema{options: make(map[string]Option)}
}

// Schema maps an option's name to its Option.
type Schema struct {
	options map[string]Option
}

// AddOption adds an option with the given name to the schema.
func (s *Schema) AddOption(name string, option Option) {
	s.options[name] = option
}

// SetDefaults stores every option's default value.
func (s *Schema) SetDefaults() error {
	for _, option := range s.options {
		if err := option.Initialize(); err != nil {
			return err
		}
	}
	return nil
}

// SetOption stores value for the named option.
func (s *Schema) SetOption(name string, value []string) error {
	option, found := s.options[name]
	if !found {
		return fmt.Errorf("set option: %q is not a valid option", name)
	}
	return option.Store(value)
}

// String renders the schema as the "option name ... type ..." lines the
// uci command replies with.
func (s *Schema) String() string {
	var str strings.Builder
	for name, option := range s.options {
		fmt.Fprintf(&str, "option name %s type %s\n", name, option.Type())
	}
	return str.String()
}

// Option is implemented by every supported UCI option kind.
type Option interface {
	Type() string

	Store(value []string) error // storage from a setoption command
	Initialize() error          // storage of the default value
}

// Check is a boolean UCI option (a checkbox).
type Check struct {
	Default bool
	Storage func(bool) error
}

var _ Option = (*Check)(nil)

func (o *Check) Type() string { return fmt.Sprintf("check default %v", o.Default) }

func (o *Check) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("option check: expected 1 value, received %d", len(value))
	}
	b, err := strconv.ParseBool(value[0])
	if err != nil {
		return err
	}
	return o.Storage(b)
}

func (o *Check) Initialize() error { return o.Storage(o.Default) }

// Spin is an integer UCI option bounded by [Min, Max].
type Spin struct {
	Default  int
	Min, Max int
	Storage  func(int) error
}

var _ Option = (*Spin)(nil)

func (o *Spin) Type() string {
	return fmt.Sprintf("spin default %v min %d max %d", o.Default, o.Min, o.Max)
}

func (o *Spin) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("option spin: expected 1 value, received %d", len(value))
	}
	n, err := strconv.Atoi(value[0])
	if err != nil {
		return err
	}
	if n < o.Min || n > o.Max {
		return fmt.Errorf("option spin: value out of bounds [%d, %d]", o.Min, o.Max)
	}
	return o.Storage(n)
}

func (o *Spin) Initialize() error { return o.Storage(o.Default) }

// Button is a UCI option with no value; setoption pings it.
type Button struct {
	Ping func() error
}

var _ Option = (*Button)(nil)

func (o *Button) Type() string { return "button" }

func (o *Button) Store(value []string) error {
	if len(value) > 0 {
		return fmt.Errorf("option button: expected 0 values, received %d", len(value))
	}
	return o.Ping()
}

func (o *Button) Initialize() error { return nil }

// String is a free-text UCI option.
type String struct {
	Default string
	Storage func(string) error
}

var _ Option = (*String)(nil)

func (o *String) Type() string { return fmt.Sprintf("string default %s", o.Default) }

func (o *String) Store(value []string) error { return o.Storage(strings.Join(value, " ")) }

func (o *String) Initialize() error { return o.Storage(o.Default) }
