// FILE: lixenwraith/diag/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/diag"
	"github.com/valyala/fasthttp"
)

// FastHTTPAdapter exposes a diag.Logger through fasthttp's Logger
// interface, so server diagnostics land in the same sink with the
// same line format.
type FastHTTPAdapter struct {
	logger        *diag.Logger
	flags         diag.Subsys
	defaultLevel  diag.Level
	levelDetector func(string) diag.Level // Function to detect log level from message
}

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *diag.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		flags:         diag.SubsysNet,
		defaultLevel:  diag.LevelInfo,
		levelDetector: DetectLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithFlags sets the subsystem tags attached to adapted messages
func WithFlags(flags diag.Subsys) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.flags = flags
	}
}

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level diag.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) diag.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != diag.LevelNone {
			level = detected
		}
	}

	a.logger.Logf(level, a.flags, "fasthttp", "%s", msg)
}

// DetectLevel attempts to detect a diagnostic level from message content
func DetectLevel(msg string) diag.Level {
	msgLower := strings.ToLower(msg)

	// Warnings and errors both map onto the WARN tier
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") ||
		strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return diag.LevelWarn
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return diag.LevelTrace
	}

	return diag.LevelInfo
}
