// Package logging provides the leveled logger used by the fql CLI and render
// service. Entries are written as JSON lines, or pretty printed with colors
// when the output is a terminal.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/term"
)

const traceIDKey = "__trace_id__"

// PrettyPrint is implemented by values that know how to print themselves on a terminal.
type PrettyPrint interface {
	PrettyPrint(writer io.Writer)
}

// Logger represents a logger interface.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Log(args ...any)
	Logf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Notice(args ...any)
	Noticef(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	ChangeLevel(level Level)
}

type logger struct {
	level      Level
	normalOut  io.Writer
	errorOut   io.Writer
	isTerminal bool
	lock       chan struct{}
}

type logEntry struct {
	Level   Level     `json:"level"`
	Time    time.Time `json:"time"`
	Message any       `json:"message"`
	TraceID string    `json:"trace_id,omitempty"`
	Caller  string    `json:"caller,omitempty"`
}

// exit is replaced in tests.
var exit = os.Exit

// NewLogger creates a logger writing to stdout, with ERROR and FATAL entries going to stderr.
func NewLogger(level Level) Logger {
	return New(level, os.Stdout, os.Stderr)
}

// New creates a logger with explicit outputs.
func New(level Level, normalOut, errorOut io.Writer) Logger {
	return &logger{
		level:      level,
		normalOut:  normalOut,
		errorOut:   errorOut,
		isTerminal: checkIfTerminal(normalOut),
		lock:       make(chan struct{}, 1),
	}
}

func (l *logger) logf(level Level, format string, args ...any) {
	// skip=3: runtime.Caller(0) -> logfWithSkip(1) -> logf(2) -> Debug/Info(3) -> user code
	l.logfWithSkip(3, level, format, args...)
}

func (l *logger) logfWithSkip(skip int, level Level, format string, args ...any) {
	if level < l.level {
		return
	}

	out := l.normalOut
	if level >= ERROR {
		out = l.errorOut
	}

	entry := logEntry{Level: level, Time: time.Now()}

	if _, file, line, ok := runtime.Caller(skip); ok {
		entry.Caller = filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	traceID, filtered := extractTraceID(args)
	entry.TraceID = traceID

	switch {
	case len(filtered) == 1 && format == "":
		entry.Message = filtered[0]
	case format == "":
		entry.Message = filtered
	default:
		entry.Message = fmt.Sprintf(format, filtered...)
	}

	if l.isTerminal {
		l.prettyPrint(entry, out)
	} else {
		_ = json.NewEncoder(out).Encode(entry)
	}

	if level == FATAL {
		exit(1)
	}
}

// extractTraceID removes the trace marker appended by ContextLogger.
func extractTraceID(args []any) (string, []any) {
	var traceID string

	filtered := make([]any, 0, len(args))

	for _, a := range args {
		if m, ok := a.(map[string]any); ok {
			if id, ok := m[traceIDKey].(string); ok && len(m) == 1 {
				traceID = id
				continue
			}
		}

		filtered = append(filtered, a)
	}

	return traceID, filtered
}

func (l *logger) prettyPrint(e logEntry, out io.Writer) {
	// terminal writes from several goroutines would interleave
	l.lock <- struct{}{}
	defer func() { <-l.lock }()

	fmt.Fprintf(out, "\u001B[38;5;%dm%s\u001B[0m [%s]", e.Level.color(), e.Level.String()[0:4], e.Time.Format(time.TimeOnly))

	if e.TraceID != "" {
		fmt.Fprintf(out, " \u001B[38;5;8m%s\u001B[0m", e.TraceID)
	}

	fmt.Fprint(out, " ")

	if fn, ok := e.Message.(PrettyPrint); ok {
		fn.PrettyPrint(out)
	} else {
		fmt.Fprintf(out, "%v\n", e.Message)
	}
}

func (l *logger) Debug(args ...any)                  { l.logf(DEBUG, "", args...) }
func (l *logger) Debugf(format string, args ...any)  { l.logf(DEBUG, format, args...) }
func (l *logger) Log(args ...any)                    { l.logf(INFO, "", args...) }
func (l *logger) Logf(format string, args ...any)    { l.logf(INFO, format, args...) }
func (l *logger) Info(args ...any)                   { l.logf(INFO, "", args...) }
func (l *logger) Infof(format string, args ...any)   { l.logf(INFO, format, args...) }
func (l *logger) Notice(args ...any)                 { l.logf(NOTICE, "", args...) }
func (l *logger) Noticef(format string, args ...any) { l.logf(NOTICE, format, args...) }
func (l *logger) Warn(args ...any)                   { l.logf(WARN, "", args...) }
func (l *logger) Warnf(format string, args ...any)   { l.logf(WARN, format, args...) }
func (l *logger) Error(args ...any)                  { l.logf(ERROR, "", args...) }
func (l *logger) Errorf(format string, args ...any)  { l.logf(ERROR, format, args...) }
func (l *logger) Fatal(args ...any)                  { l.logf(FATAL, "", args...) }
func (l *logger) Fatalf(format string, args ...any)  { l.logf(FATAL, format, args...) }

// ChangeLevel changes the log level of the logger.
func (l *logger) ChangeLevel(level Level) {
	l.level = level
}

func checkIfTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return term.IsTerminal(int(v.Fd()))
	default:
		return false
	}
}
