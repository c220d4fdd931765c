// Package log provides functionality for logging commands and errors
package log

import "log/slog"

// LogLevel selects both the severity and the target log file: LevelCommand
// goes to the command log, LevelError and LevelWarn to the error log, the
// rest to the info log.
type LogLevel int

const (
	LevelCommand LogLevel = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelCommand: "COMMAND",
	LevelError:   "ERROR",
	LevelWarn:    "WARN",
	LevelInfo:    "INFO",
	LevelDebug:   "DEBUG",
}

// String returns the string representation of the LogLevel
func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// toSlogLevel maps a LogLevel onto the nearest slog.Level. Commands are
// recorded at info severity; they are routed by file, not by level.
func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
