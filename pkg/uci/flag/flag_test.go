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

package flag_test

import (
	"reflect"
	"testing"

	"github.com/kestrelchess/kestrel/pkg/uci/flag"
)

func TestParseButtonAndSingle(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("infinite")
	schema.Single("depth")

	values, err := schema.Parse([]string{"depth", "6", "infinite"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !values["depth"].Set || values["depth"].Value != "6" {
		t.Errorf("depth = %+v, want set to \"6\"", values["depth"])
	}
	if !values["infinite"].Set {
		t.Error("infinite flag not set")
	}
}

func TestParseArrayFixedCount(t *testing.T) {
	schema := flag.NewSchema()
	schema.Array("fen", 6)

	values, err := schema.Parse([]string{"fen", "a", "b", "c", "d", "e", "f"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"a", "b", "c", "d", "e", "f"}
	if got := values["fen"].Value; !reflect.DeepEqual(got, want) {
		t.Errorf("fen = %v, want %v", got, want)
	}
}

func TestParseArrayTooFewArgsErrors(t *testing.T) {
	schema := flag.NewSchema()
	schema.Array("fen", 6)

	if _, err := schema.Parse([]string{"fen", "a", "b"}); err == nil {
		t.Fatal("expected an error for a short array flag")
	}
}

func TestParseVariadicConsumesRest(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("startpos")
	schema.Variadic("moves")

	values, err := schema.Parse([]string{"startpos", "moves", "e2e4", "e7e5", "g1f3"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"e2e4", "e7e5", "g1f3"}
	if got := values["moves"].Value; !reflect.DeepEqual(got, want) {
		t.Errorf("moves = %v, want %v", got, want)
	}
}

func TestParseUnknownFlagErrors(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("infinite")

	if _, err := schema.Parse([]string{"bogus"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestParseDuplicateFlagErrors(t *testing.T) {
	schema := flag.NewSchema()
	schema.Button("infinite")

	if _, err := schema.Parse([]string{"infinite", "infinite"}); err == nil {
		t.Fatal("expected an error for a repeated flag")
	}
}

func TestParseEmptyArgsOnZeroSchema(t *testing.T) {
	var schema flag.Schema
	values, err := schema.Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected no values, got %v", values)
	}
}
