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

package log_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/kestrelchess/kestrel/internal/log"
)

func TestLogWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)

	l.Infof("hash resized to %d MB", 64)

	out := buf.String()
	if !strings.Contains(out, "hash resized to 64 MB") {
		t.Errorf("Log output missing message: %q", out)
	}
	if !strings.Contains(out, "info") {
		t.Errorf("Log output missing level: %q", out)
	}
}

func TestSetLevelHidesLowerSeverity(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.Warn)

	l.Debugf("quiet")
	l.Infof("still quiet")
	if buf.Len() != 0 {
		t.Errorf("expected no output below min level, got %q", buf.String())
	}

	l.Warnf("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("expected warn-level message, got %q", buf.String())
	}
}

func TestLogIsConcurrencySafe(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Infof("worker %d", i)
		}(i)
	}
	wg.Wait()

	lines := strings.Count(buf.String(), "\n")
	if lines != 16 {
		t.Errorf("expected 16 log lines, got %d", lines)
	}
}
