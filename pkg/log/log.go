// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/plan"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent plan entries
	nameWidth   = 35 // base width for the source name
	statusWidth = 18 // width for status text
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatPlanEntry formats one plan entry for display
func formatPlanEntry(e plan.Entry) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case e.Status == plan.StatusSkipped:
		symbol = '✗'
		symbolColor = color.FgRed
	case e.Status == plan.StatusSuffixed:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case e.Changed:
		symbol = '✓'
		symbolColor = color.FgGreen
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	arrow := "→"
	target := e.Proposed
	if !e.Changed || e.Status == plan.StatusSkipped {
		arrow = " "
		target = ""
	}

	return fmt.Sprintf("%s%s %s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, e.Source),
		arrow,
		fmt.Sprintf("%-*s", nameWidth, target),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", statusWidth, string(e.Status))))
}

// 📝 LogPlanEntry logs one plan entry
func (l *Logger) LogPlanEntry(ctx context.Context, e plan.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, formatPlanEntry(e))

	l.zlog.Info().
		Str("source", e.Source).
		Str("proposed", e.Proposed).
		Str("status", string(e.Status)).
		Bool("changed", e.Changed).
		Int("ordinal", e.Ordinal).
		Msg("plan entry")
}

// 📝 StartPlan prints the header for one directory's plan
func (l *Logger) StartPlan(ctx context.Context, dir, template string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "[planning %s]\n",
		color.New(color.FgCyan).Sprint(dir))
	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(template))

	l.zlog.Info().
		Str("dir", dir).
		Str("template", template).
		Msg("starting plan")
}

// 📝 LogPlan prints the plan preview: entries up to limit (0 means all),
// a truncation marker when the plan is longer, the count summary, and
// any ordering warnings.
func (l *Logger) LogPlan(ctx context.Context, p *plan.Plan, limit int) {
	shown := len(p.Entries)
	if limit > 0 && limit < shown {
		shown = limit
	}
	for _, e := range p.Entries[:shown] {
		l.LogPlanEntry(ctx, e)
	}
	if hidden := len(p.Entries) - shown; hidden > 0 {
		l.Infof("… %d more entries (preview truncated)", hidden)
	}
	for _, w := range p.Warnings {
		l.Warning(w)
	}
	changed, unchanged, skipped := p.Counts()
	l.Infof("%d to rename, %d unchanged, %d skipped", changed, unchanged, skipped)
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("renamerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
