// Package log provides the package-level leveled logger used across reportree.
// It is a thin layer over a zap SugaredLogger whose level can be changed at
// runtime, including disabled entirely.
package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/montaguethomas/reportree/constants"
)

// Level is a logging priority.
type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel

	// DisableLogLevel silences every message, errors included.
	DisableLogLevel = zapcore.FatalLevel + 1
)

var (
	mu    sync.RWMutex
	atom  = zap.NewAtomicLevelAt(InfoLevel)
	sugar *zap.SugaredLogger
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), atom)

	mu.Lock()
	sugar = zap.New(core).Sugar()
	mu.Unlock()
}

// SetLevel changes the minimum level that gets written.
func SetLevel(l Level) {
	atom.SetLevel(l)
}

// GetLevel returns the current minimum level.
func GetLevel() Level {
	return atom.Level()
}

// ParseLevel turns a textual level ("debug", "info", "warn", "error" or
// "disable") into a Level.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "disable" || s == "disabled" || s == "off" {
		return DisableLogLevel, nil
	}
	l, err := zapcore.ParseLevel(s)
	if err != nil {
		return InfoLevel, errors.Wrapf(constants.ErrInvalidLevel, "%q", s)
	}
	return l, nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger().Sync()
}

func logger() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(args ...interface{}) { logger().Debug(args...) }
func Debugf(format string, args ...interface{}) { logger().Debugf(format, args...) }
func Info(args ...interface{}) { logger().Info(args...) }
func Infof(format string, args ...interface{}) { logger().Infof(format, args...) }
func Warn(args ...interface{}) { logger().Warn(args...) }
func Warnf(format string, args ...interface{}) { logger().Warnf(format, args...) }
func Error(args ...interface{}) { logger().Error(args...) }
func Errorf(format string, args ...interface{}) { logger().Errorf(format, args...) }
