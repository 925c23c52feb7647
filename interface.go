// FILE: interface.go
package diag

// Logger instance helpers that derive the call site automatically.

// Infof logs at INFO with the caller's file:line as the location.
func (l *Logger) Infof(flags Subsys, format string, args ...any) {
	if !l.wants(LevelInfo, flags) {
		return
	}
	l.Logf(LevelInfo, flags, caller(2), format, args...)
}

// Warnf logs at WARN with the caller's file:line as the location.
// Unlike Infof it always reaches the dispatcher, because a warning
// updates the last-warning buffer even when filtered out.
func (l *Logger) Warnf(flags Subsys, format string, args ...any) {
	l.Logf(LevelWarn, flags, caller(2), format, args...)
}

// Tracef logs at TRACE with the caller's file:line as the location.
func (l *Logger) Tracef(flags Subsys, format string, args ...any) {
	if !l.wants(LevelTrace, flags) {
		return
	}
	l.Logf(LevelTrace, flags, caller(2), format, args...)
}

// Callf logs an abbreviated call-tracing line. These lines omit the
// timestamp and location since they are meant for high-frequency use.
func (l *Logger) Callf(format string, args ...any) {
	l.Logf(LevelTrace, SubsysCall, "", format, args...)
}
