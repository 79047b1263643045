package orbitals

import (
	"fmt"

	kitlog "github.com/go-kit/log"
)

// Level is the severity of a log entry.
type Level uint8

const (
	// LevelInfo marks notable events (ignitions, separations).
	LevelInfo Level = iota + 1
	// LevelError marks collisions and failures.
	LevelError
	// LevelTrace marks per-tick details.
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	case LevelTrace:
		return "trace"
	}
	panic("cannot stringify unknown log level")
}

// Entry is a single simulation log record.
type Entry struct {
	Time    float64 // Simulation time (s)
	Level   Level
	Message string
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] t=%gs %s", e.Level, e.Time, e.Message)
}

// Log is the ordered record of what happened during a run.
// It is only written from the solver's goroutine.
type Log struct {
	entries []Entry
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

func (l *Log) put(t float64, lvl Level, format string, args ...interface{}) {
	l.entries = append(l.entries, Entry{t, lvl, fmt.Sprintf(format, args...)})
}

// Info appends an info entry.
func (l *Log) Info(t float64, format string, args ...interface{}) {
	l.put(t, LevelInfo, format, args...)
}

// Error appends an error entry.
func (l *Log) Error(t float64, format string, args ...interface{}) {
	l.put(t, LevelError, format, args...)
}

// Trace appends a trace entry.
func (l *Log) Trace(t float64, format string, args ...interface{}) {
	l.put(t, LevelTrace, format, args...)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of all entries in order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Filter returns the entries of the provided levels, in order.
func (l *Log) Filter(levels ...Level) []Entry {
	var out []Entry
	for _, e := range l.entries {
		for _, lvl := range levels {
			if e.Level == lvl {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Replay writes every entry to the provided logger, skipping trace entries unless withTrace is set.
func (l *Log) Replay(logger kitlog.Logger, withTrace bool) error {
	for _, e := range l.entries {
		if e.Level == LevelTrace && !withTrace {
			continue
		}
		if err := logger.Log("level", e.Level, "subsys", "sim", "t", e.Time, "message", e.Message); err != nil {
			return err
		}
	}
	return nil
}
