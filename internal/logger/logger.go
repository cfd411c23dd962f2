// README: Structured logger (logrus) with optional rotated file output.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"tripfit/internal/config"
)

// Logger wraps logrus.Logger with request and system helpers.
type Logger struct {
	*logrus.Logger
}

type Fields map[string]interface{}

// New builds a logger from cfg. Unknown formats fall back to JSON and unknown
// outputs to stdout.
func New(cfg config.LogConfig) (*Logger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)

	switch cfg.Format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	var out io.Writer = os.Stdout
	if cfg.Output == "file" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, err
		}
		out = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
	}
	l.SetOutput(out)

	return &Logger{Logger: l}, nil
}

// Discard returns a logger that writes nowhere. Used by tests and the CLI.
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l}
}

func (l *Logger) WithFields(fields Fields) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields(fields))
}

func (l *Logger) LogRequest(requestID, method, path, clientIP string, status int, durationMs int64) {
	l.WithFields(Fields{
		"request_id":  requestID,
		"method":      method,
		"path":        path,
		"client_ip":   clientIP,
		"status_code": status,
		"duration_ms": durationMs,
		"type":        "request",
	}).Info("HTTP request")
}

func (l *Logger) LogSystem(component, action string, success bool, details Fields) {
	fields := Fields{
		"component": component,
		"action":    action,
		"success":   success,
		"type":      "system",
	}
	for k, v := range details {
		fields[k] = v
	}
	entry := l.WithFields(fields)
	if success {
		entry.Info("System event")
	} else {
		entry.Error("System event failed")
	}
}
