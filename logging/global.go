package logging

import (
	"os"
	"sync/atomic"
)

// The package-level logger follows zap's ReplaceGlobals pattern: one
// process-wide logger, swapped atomically once configuration is loaded
// and read concurrently everywhere else.
var global atomic.Pointer[Logger]

func init() {
	global.Store(New(envConfig()))
}

// envConfig builds the pre-configuration logger from the environment,
// so startup code logs sensibly before config.Load has run
func envConfig() Config {
	cfg := DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	cfg.JSON = os.Getenv("LOG_JSON") == "true"
	cfg.EnableColor = os.Getenv("LOG_COLOR") != "false"
	return cfg
}

// L returns the current package-level logger
func L() *Logger {
	return global.Load()
}

// Configure rebuilds the package-level logger from config
func Configure(config Config) {
	global.Store(New(config))
}

// Replace swaps in an already-built logger and returns the previous
// one, so tests can restore it
func Replace(logger *Logger) *Logger {
	return global.Swap(logger)
}

// WithPrefix returns a named child of the package-level logger
func WithPrefix(prefix string) *Logger {
	return L().WithPrefix(prefix)
}

// With returns a child of the package-level logger carrying structured
// key/value context
func With(args ...interface{}) *Logger {
	return L().With(args...)
}

// Sync flushes the package-level logger
func Sync() error {
	return L().Sync()
}

// Leveled shortcuts on the package-level logger

func Debug(args ...interface{}) { L().Debug(args...) }

func Debugf(format string, args ...interface{}) { L().Debugf(format, args...) }

func Info(args ...interface{}) { L().Info(args...) }

func Infof(format string, args ...interface{}) { L().Infof(format, args...) }

func Warn(args ...interface{}) { L().Warn(args...) }

func Warnf(format string, args ...interface{}) { L().Warnf(format, args...) }

func Error(args ...interface{}) { L().Error(args...) }

func Errorf(format string, args ...interface{}) { L().Errorf(format, args...) }

func Fatal(args ...interface{}) { L().Fatal(args...) }

func Fatalf(format string, args ...interface{}) { L().Fatalf(format, args...) }
