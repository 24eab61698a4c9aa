// Package lumber routes the coveralls client's log output to zap or logrus,
// writing to the console and, when enabled, to a rotated log file.
package lumber

import "github.com/Atul9/coveralls-api/pkg/errs"

// LoggingConfig selects the writers and their levels. Backends that support a
// single level use ConsoleLevel, falling back to FileLevel.
type LoggingConfig struct {
	EnableConsole     bool
	ConsoleJSONFormat bool
	ConsoleLevel      string
	EnableFile        bool
	FileJSONFormat    bool
	FileLevel         string
	FileLocation      string
}

// Fields are structured key/values attached to every entry of a Logger.
type Fields map[string]interface{}

// Log levels accepted in LoggingConfig.
const (
	Debug = "debug"
	Info  = "info"
	Warn  = "warn"
	Error = "error"
	Fatal = "fatal"
)

// Backends accepted by NewLogger.
const (
	InstanceZapLogger int = iota
	InstanceLogrusLogger
)

// Logger is the logging contract shared by every package of the client.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	// Fatalf logs then exits the process with status 1.
	Fatalf(format string, args ...interface{})
	Panicf(format string, args ...interface{})
	// WithFields returns a Logger adding keyValues to each entry.
	WithFields(keyValues Fields) Logger
}

// NewLogger builds the backend named by instance. verbose forces debug level.
func NewLogger(config LoggingConfig, verbose bool, instance int) (Logger, error) {
	switch instance {
	case InstanceZapLogger:
		return newZapLogger(config, verbose), nil
	case InstanceLogrusLogger:
		return newLogrusLogger(config, verbose)
	default:
		return nil, errs.ErrInvalidLoggerInstance
	}
}
