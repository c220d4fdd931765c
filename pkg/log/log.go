// Package log provides functionality for logging commands and errors
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"mindcanvas/app/pkg/model"
)

// Fields carries structured key/value pairs attached to a log message
type Fields map[string]interface{}

// LogMessage represents a message to be logged
type LogMessage struct {
	Level   LogLevel
	Content string
	Fields  Fields
	Context context.Context
}

// Logger represents a logging instance that can write to command, error, and info log files
type Logger struct {
	commandLogger *slog.Logger
	errorLogger   *slog.Logger
	infoLogger    *slog.Logger
	commandFile   *os.File
	errorFile     *os.File
	infoFile      *os.File
	logChan       chan LogMessage
	done          chan struct{}
	wg            sync.WaitGroup
	maxLevel      LogLevel
}

// NewLogger creates a new Logger instance with the log folder and file names
// taken from the configuration. Messages above maxLevel are dropped.
func NewLogger(cfg *model.Config, maxLevel LogLevel) (*Logger, error) {
	// Create log directory if it doesn't exist
	if err := os.MkdirAll(cfg.LogFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open command log file
	commandFilePath := filepath.Join(cfg.LogFolder, cfg.CommandLog)
	commandFile, err := os.OpenFile(commandFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open command log file: %w", err)
	}

	// Open error log file
	errorFilePath := filepath.Join(cfg.LogFolder, cfg.ErrorLog)
	errorFile, err := os.OpenFile(errorFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		commandFile.Close()
		return nil, fmt.Errorf("failed to open error log file: %w", err)
	}

	// Open info log file
	infoFilePath := filepath.Join(cfg.LogFolder, cfg.InfoLog)
	infoFile, err := os.OpenFile(infoFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		commandFile.Close()
		errorFile.Close()
		return nil, fmt.Errorf("failed to open info log file: %w", err)
	}

	// Create slog loggers
	commandLogger := slog.New(slog.NewJSONHandler(commandFile, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	errorLogger := slog.New(slog.NewJSONHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	infoLogger := slog.New(slog.NewJSONHandler(infoFile, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	logger := &Logger{
		commandLogger: commandLogger,
		errorLogger:   errorLogger,
		infoLogger:    infoLogger,
		commandFile:   commandFile,
		errorFile:     errorFile,
		infoFile:      infoFile,
		logChan:       make(chan LogMessage, 100), // Buffered channel with capacity of 100
		done:          make(chan struct{}),
		maxLevel:      maxLevel,
	}

	// Start the logging goroutine
	logger.wg.Add(1)
	go logger.processLogs()

	return logger, nil
}

// processLogs handles incoming log messages
func (l *Logger) processLogs() {
	defer l.wg.Done()
	for {
		select {
		case msg := <-l.logChan:
			target := l.infoLogger
			switch msg.Level {
			case LevelCommand:
				target = l.commandLogger
			case LevelError, LevelWarn:
				target = l.errorLogger
			}
			target.LogAttrs(msg.Context, msg.Level.toSlogLevel(), msg.Content, fieldsToAttrs(msg.Fields)...)
		case <-l.done:
			return
		}
	}
}

// fieldsToAttrs converts Fields to slog attributes
func fieldsToAttrs(fields Fields) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

// log enqueues a message if its level is enabled
func (l *Logger) log(ctx context.Context, level LogLevel, message string, fields Fields) {
	if level > l.maxLevel && level != LevelCommand && level != LevelError {
		return
	}
	select {
	case l.logChan <- LogMessage{Level: level, Content: message, Fields: fields, Context: ctx}:
	case <-l.done:
	}
}

// Command logs an executed command to the command log
func (l *Logger) Command(ctx context.Context, command string, fields Fields) {
	l.log(ctx, LevelCommand, command, fields)
}

// Error logs an error message to the error log
func (l *Logger) Error(ctx context.Context, message string, fields Fields) {
	l.log(ctx, LevelError, message, fields)
}

// Warn logs a warning message to the error log
func (l *Logger) Warn(ctx context.Context, message string, fields Fields) {
	l.log(ctx, LevelWarn, message, fields)
}

// Info logs an informational message to the info log
func (l *Logger) Info(ctx context.Context, message string, fields Fields) {
	l.log(ctx, LevelInfo, message, fields)
}

// Debug logs a debug message to the info log
func (l *Logger) Debug(ctx context.Context, message string, fields Fields) {
	l.log(ctx, LevelDebug, message, fields)
}

// Close stops the logging goroutine and closes all log files
func (l *Logger) Close() error {
	close(l.done)
	l.wg.Wait() // Wait for the logging goroutine to finish

	if err := l.commandFile.Close(); err != nil {
		return fmt.Errorf("failed to close command log file: %w", err)
	}

	if err := l.errorFile.Close(); err != nil {
		return fmt.Errorf("failed to close error log file: %w", err)
	}

	if err := l.infoFile.Close(); err != nil {
		return fmt.Errorf("failed to close info log file: %w", err)
	}

	return nil
}
