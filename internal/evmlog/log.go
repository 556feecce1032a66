// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package evmlog is a small leveled, key-value logger in the shape of
// go-ethereum's own log package: call-site capture via go-stack/stack,
// colorized level tags via fatih/color when writing to a terminal
// (detected with mattn/go-isatty), through a Windows-safe writer from
// mattn/go-colorable.
package evmlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Lvl is a log level, ordered from most to least severe.
type Lvl int

const (
	LvlError Lvl = iota
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlError:
		return "ERROR"
	case LvlWarn:
		return "WARN "
	case LvlInfo:
		return "INFO "
	case LvlDebug:
		return "DEBUG"
	case LvlTrace:
		return "TRACE"
	default:
		return "?????"
	}
}

func (l Lvl) color() *color.Color {
	switch l {
	case LvlError:
		return color.New(color.FgRed, color.Bold)
	case LvlWarn:
		return color.New(color.FgYellow)
	case LvlInfo:
		return color.New(color.FgGreen)
	case LvlDebug:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgWhite)
	}
}

// Logger emits leveled, key-value formatted lines.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
	ctx      []interface{}
}

var root = New()

// New returns a Logger writing to stderr, colorized when stderr is a
// terminal.
func New(ctx ...interface{}) *Logger {
	w := colorable.NewColorableStderr()
	return &Logger{
		out:      w,
		colorize: isatty.IsTerminal(os.Stderr.Fd()),
		ctx:      ctx,
	}
}

// Root returns the package-level default logger, mirroring go-ethereum's
// log.Root().
func Root() *Logger { return root }

// New returns a child logger with additional context key-values appended to
// every line it emits.
func (l *Logger) New(ctx ...interface{}) *Logger {
	child := &Logger{out: l.out, colorize: l.colorize}
	child.ctx = append(append([]interface{}{}, l.ctx...), ctx...)
	return child
}

func (l *Logger) write(lvl Lvl, msg string, kv []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tag := lvl.String()
	if l.colorize {
		tag = lvl.color().Sprint(tag)
	}
	line := fmt.Sprintf("%s[%s] %s", tag, time.Now().Format("15:04:05.000"), msg)
	for i := 0; i+1 < len(l.ctx); i += 2 {
		line += fmt.Sprintf(" %v=%v", l.ctx[i], l.ctx[i+1])
	}
	for i := 0; i+1 < len(kv); i += 2 {
		line += fmt.Sprintf(" %v=%v", kv[i], kv[i+1])
	}
	if lvl <= LvlWarn {
		// Errors and warnings also record the call site two frames above
		// write, i.e. the caller of the Logger method.
		line += fmt.Sprintf(" caller=%v", stack.Caller(2))
	}
	fmt.Fprintln(l.out, line)
}

func (l *Logger) Trace(msg string, ctx ...interface{}) { l.write(LvlTrace, msg, ctx) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *Logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }

// Package-level convenience wrappers over Root(), with the call shape
// evmlog.Warn("msg", "k", v).
func Trace(msg string, ctx ...interface{}) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
