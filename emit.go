// Package emit implements a small buffered output-stream toolkit:
// chainable typed formatting (runes, integers, floats, pointers, UTF-8
// and UTF-16 text) over pluggable write/flush policies, writing to
// OS-level sink devices.
//
// The formatting layer never surfaces device errors to the caller; a
// failed write on the hot path is reported through the package logger
// when logging is enabled.
//
// Some examples on using the API are implemented as executable go programs in the
// `examples` subdirectory.
package emit

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

func initLogging() {
	logging = false
	initializeLogger()
}

// EnableLogging enables reporting of suppressed device failures through
// the package logger if true is passed, and disables it if false is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

// init maintains a central location of all things that happen when the package is initialized
// instead of everything being scattered in multiple source files
func init() {
	initLogging()

	err := initConfig()
	if err != nil && logging {
		logger.Error("error initializing config, using the default buffer size",
			zap.String("module", "config"),
			zap.Error(err),
		)
	}
}
