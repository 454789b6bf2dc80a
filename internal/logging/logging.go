// Package logging exposes a process-wide zap logger behind a small
// package-level API.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the process logger.
type Options struct {
	// Path, when set, receives a copy of every entry.
	Path string
	// Format is "text" (coloured console) or "json".
	Format string
	Debug  bool
	// Writer overrides the console destination (stderr by default).
	Writer io.Writer
}

var (
	mu      sync.Mutex
	logFile *os.File
	base    = defaultLogger()
	sugar   = base.Sugar()
)

// Init replaces the process logger. It closes any log file opened by a
// previous call.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var console io.Writer = os.Stderr
	if opts.Writer != nil {
		console = opts.Writer
	}
	syncers := []zapcore.WriteSyncer{zapcore.AddSync(console)}

	if opts.Path != "" {
		if dir := filepath.Dir(opts.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("unable to create log directory %s: %w", dir, err)
			}
		}
		file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", opts.Path, err)
		}
		logFile = file
		syncers = append(syncers, zapcore.AddSync(logFile))
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(buildEncoder(opts.Format), zapcore.NewMultiWriteSyncer(syncers...), level)
	base = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	sugar = base.Sugar()
	return nil
}

// Close flushes the logger, releases the log file and restores the
// default stderr logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	_ = base.Sync()
	base = defaultLogger()
	sugar = base.Sugar()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func defaultLogger() *zap.Logger {
	return zap.New(zapcore.NewCore(buildEncoder("text"), zapcore.AddSync(os.Stderr), zapcore.InfoLevel))
}

// L returns the current sugared logger.
func L() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return sugar
}

// LogEvent writes a formatted info entry.
func LogEvent(format string, args ...any) {
	L().Infof(format, args...)
}

// Debug writes a debug entry with key/value pairs.
func Debug(msg string, keysAndValues ...any) {
	L().Debugw(msg, keysAndValues...)
}

// Warn writes a warning entry with key/value pairs.
func Warn(msg string, keysAndValues ...any) {
	L().Warnw(msg, keysAndValues...)
}

// LogPayload writes payload at debug level, rendered as text.
func LogPayload(label string, payload any) {
	L().Debugw(strings.TrimSpace(label), "payload", formatPayload(payload))
}

func buildEncoder(format string) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if strings.EqualFold(format, "json") {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
