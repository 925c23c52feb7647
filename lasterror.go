// FILE: lasterror.go
package diag

import (
	"fmt"
)

// captureLastWarning formats the message into the bounded last-warning
// buffer. Runs for every WARN call, including ones the level or mask
// filters out.
func (l *Logger) captureLastWarning(format string, args []any) {
	l.warnMu.Lock()
	l.lastWarn = fmt.Appendf(l.lastWarn[:0], format, args...)
	if len(l.lastWarn) > maxLastWarnLen {
		l.lastWarn = l.lastWarn[:maxLastWarnLen]
	}
	l.warnMu.Unlock()
}

// LastWarning returns the most recently captured WARN message in
// human readable form. Overwritten on every warning, never cleared.
func (l *Logger) LastWarning() string {
	l.warnMu.Lock()
	defer l.warnMu.Unlock()
	return string(l.lastWarn)
}
