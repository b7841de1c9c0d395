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

// Package log is a leveled diagnostic logger that writes to stderr by
// default, so its output can't interleave with UCI protocol lines,
// which stay on uci.Client.Printf/Println. No other package in this
// repository imports it; the engine, options and thread pool do not
// log through it.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"
)

// Level is a log message's severity.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) color() string {
	switch l {
	case Debug:
		return "[dim]debug[reset]"
	case Warn:
		return "[yellow]warn[reset]"
	case Error:
		return "[red]error[reset]"
	default:
		return "[cyan]info[reset]"
	}
}

// wrapWidth is the terminal width diagnostic lines are wrapped to; wide
// enough for a typical terminal, narrow enough to stay readable when
// one is not.
const wrapWidth = 100

// Default is the package-level Logger used by the Debug/Info/Warn/Error
// convenience functions, writing to stderr.
var Default = New(os.Stderr)

// New creates a Logger writing colorized, word-wrapped lines to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Logger writes leveled, colorized diagnostic lines. It is safe for
// concurrent use by multiple lazy-SMP workers.
type Logger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
}

// SetLevel hides messages below level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// Log writes a formatted message at the given level.
func (l *Logger) Log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.minLevel {
		return
	}

	msg := fmt.Sprintf(format, args...)
	msg = wordwrap.WrapString(msg, wrapWidth)

	prefix := colorstring.Color(fmt.Sprintf("[%s] %s:", time.Now().Format("15:04:05"), level.color()))
	fmt.Fprintf(l.w, "%s %s\n", prefix, msg)
}

func (l *Logger) Debugf(format string, args ...any) { l.Log(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.Log(Info, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.Log(Warn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.Log(Error, format, args...) }

// Debugf logs to the Default logger.
func Debugf(format string, args ...any) { Default.Debugf(format, args...) }

// Infof logs to the Default logger.
func Infof(format string, args ...any) { Default.Infof(format, args...) }

// Warnf logs to the Default logger.
func Warnf(format string, args ...any) { Default.Warnf(format, args...) }

// Errorf logs to the Default logger.
func Errorf(format string, args ...any) { Default.Errorf(format, args...) }
