// FILE: default.go
package diag

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger.
// The default instance models the process-wide diagnostic facility;
// hosts that prefer explicit ownership create their own Logger.

// Default returns the process-wide logger instance.
func Default() *Logger {
	return defaultLogger
}

// Init resolves the default logger's configuration from the
// environment if that has not happened yet. Idempotent.
func Init() {
	defaultLogger.Init()
}

// Logf dispatches a diagnostic message with an explicit location.
func Logf(level Level, flags Subsys, location, format string, args ...any) {
	defaultLogger.Logf(level, flags, location, format, args...)
}

// Infof logs at INFO with the caller's file:line as the location.
func Infof(flags Subsys, format string, args ...any) {
	if !defaultLogger.wants(LevelInfo, flags) {
		return
	}
	defaultLogger.Logf(LevelInfo, flags, caller(2), format, args...)
}

// Warnf logs at WARN with the caller's file:line as the location.
func Warnf(flags Subsys, format string, args ...any) {
	defaultLogger.Logf(LevelWarn, flags, caller(2), format, args...)
}

// Tracef logs at TRACE with the caller's file:line as the location.
func Tracef(flags Subsys, format string, args ...any) {
	if !defaultLogger.wants(LevelTrace, flags) {
		return
	}
	defaultLogger.Logf(LevelTrace, flags, caller(2), format, args...)
}

// Callf logs an abbreviated call-tracing line.
func Callf(format string, args ...any) {
	defaultLogger.Logf(LevelTrace, SubsysCall, "", format, args...)
}

// Version emits the version banner.
func Version(format string, args ...any) {
	defaultLogger.Version(format, args...)
}

// Dumpf logs a structure dump of an arbitrary value at TRACE.
func Dumpf(flags Subsys, label string, v any) {
	if !defaultLogger.wants(LevelTrace, flags) {
		return
	}
	defaultLogger.dumpf(caller(2), flags, label, v)
}

// SetDistributor records the rank/nranks pair used to prefix WARN and
// INFO lines.
func SetDistributor(rank, nranks int) {
	defaultLogger.SetDistributor(rank, nranks)
}

// LastWarning returns the most recently captured WARN message.
func LastWarning() string {
	return defaultLogger.LastWarning()
}

// SetNoWarn enables warn suppression on the calling goroutine.
func SetNoWarn(tag Subsys) {
	defaultLogger.SetNoWarn(tag)
}

// WithNoWarn runs fn with warn suppression active on the calling
// goroutine.
func WithNoWarn(tag Subsys, fn func()) {
	defaultLogger.WithNoWarn(tag, fn)
}

// NameThread applies a formatted name to an OS thread.
func NameThread(tid int, format string, args ...any) {
	defaultLogger.NameThread(tid, format, args...)
}
