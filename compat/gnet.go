// FILE: lixenwraith/diag/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/diag"
	"github.com/panjf2000/gnet/v2/pkg/logging"
)

// GnetAdapter exposes a diag.Logger through gnet's logging.Logger
// interface.
type GnetAdapter struct {
	logger       *diag.Logger
	flags        diag.Subsys
	fatalHandler func(msg string) // Customizable fatal behavior
}

var _ logging.Logger = (*GnetAdapter)(nil)

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *diag.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		flags:  diag.SubsysNet,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithGnetFlags sets the subsystem tags attached to adapted messages
func WithGnetFlags(flags diag.Subsys) GnetOption {
	return func(a *GnetAdapter) {
		a.flags = flags
	}
}

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at the TRACE tier with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Logf(diag.LevelTrace, a.flags, "gnet", format, args...)
}

// Infof logs at the INFO tier with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Logf(diag.LevelInfo, a.flags, "gnet", format, args...)
}

// Warnf logs at the WARN tier with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Logf(diag.LevelWarn, a.flags, "gnet", format, args...)
}

// Errorf logs at the WARN tier; the diagnostic engine has no separate
// error tier.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Logf(diag.LevelWarn, a.flags, "gnet", format, args...)
}

// Fatalf logs at the WARN tier and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Logf(diag.LevelWarn, a.flags, "gnet", "%s", msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
