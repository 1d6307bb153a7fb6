// Package logx is a small leveled logger that writes whole lines to a
// line sink such as hal.Logger (stdout on host, UART on the board).
package logx

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Level orders log lines by severity.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// Levels lists every level in increasing severity.
var Levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts level names case-insensitively.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("logx: unknown level %q", s)
}

// Sink receives formatted lines without a trailing newline.
type Sink interface {
	WriteLineString(s string)
}

// Logger filters by level and prefixes each line with a millisecond
// timestamp, the level and an optional component name.
//
// Loggers derived with With share their parent's level. A nil *Logger
// discards everything.
type Logger struct {
	sink      Sink
	level     *atomic.Uint32
	clock     func() uint64
	component string
}

// New returns a logger writing to sink. clock returns milliseconds since
// boot and may be nil.
func New(sink Sink, level Level, clock func() uint64) *Logger {
	l := &Logger{sink: sink, level: new(atomic.Uint32), clock: clock}
	l.level.Store(uint32(level))
	return l
}

// With returns a logger tagging lines with component.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	cp := *l
	cp.component = component
	return &cp
}

// SetLevel changes the minimum level for this logger and every logger
// sharing its level.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.level.Store(uint32(level))
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelError
	}
	return Level(l.level.Load())
}

// Enabled reports whether lines at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && l.sink != nil && level >= l.Level()
}

func (l *Logger) Tracef(format string, args ...any) { l.logf(LevelTrace, format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	var ms uint64
	if l.clock != nil {
		ms = l.clock()
	}
	msg := fmt.Sprintf(format, args...)
	if l.component != "" {
		l.sink.WriteLineString(fmt.Sprintf("%d [%s] %s: %s", ms, level, l.component, msg))
		return
	}
	l.sink.WriteLineString(fmt.Sprintf("%d [%s] %s", ms, level, msg))
}
