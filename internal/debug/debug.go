// Package debug provides the process-wide logger.
// Call sites use the printf-style helpers; output goes through zerolog.
package debug

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	enabled   bool
	enabledMu sync.RWMutex
)

func init() {
	Setup(false, false)
}

// Setup installs the console logger on stderr. Debug mode lowers the level to
// debug and adds caller information.
func Setup(debugMode, noColor bool) {
	SetupWriter(os.Stderr, debugMode, noColor)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, debugMode, noColor bool) {
	SetDebug(debugMode)

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	}).With().Timestamp().Logger()

	if debugMode {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	enabledMu.Lock()
	defer enabledMu.Unlock()
	enabled = enable
	if enable {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	enabledMu.RLock()
	defer enabledMu.RUnlock()
	return enabled
}

// Logger returns a logger tagged with the component name.
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Debug logs a formatted debug message.
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	log.Debug().Msgf(format, args...)
}

// DebugSection logs a section header.
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	log.Debug().Str("section", section).Msg("===")
}

// DebugValue logs key=value style debug info.
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	log.Debug().Interface(key, value).Send()
}

// DebugDuration logs how long an operation took since start.
func DebugDuration(op string, start time.Time) {
	if !IsEnabled() {
		return
	}
	log.Debug().Str("op", op).Dur("elapsed", time.Since(start)).Msg("done")
}
