// FILE: nowarn.go
package diag

import (
	"github.com/petermattis/goid"
)

// Warn suppression lets a call site silence expected warnings for the
// duration of a scope: suppressed warnings are demoted to INFO under
// a caller-chosen subsystem tag and skip the last-warning buffer.
// Scopes are per goroutine, the Go analogue of a thread-local.

// SetNoWarn enables warn suppression on the calling goroutine with
// the given re-tag. A zero tag restores normal WARN handling.
func (l *Logger) SetNoWarn(tag Subsys) {
	gid := goid.Get()
	if tag == 0 {
		l.noWarn.Delete(gid)
		return
	}
	l.noWarn.Store(gid, tag)
}

// WithNoWarn runs fn with warn suppression active on the calling
// goroutine, restoring the previous suppression state afterwards.
func (l *Logger) WithNoWarn(tag Subsys, fn func()) {
	if tag == 0 {
		fn()
		return
	}
	gid := goid.Get()
	prev, had := l.noWarn.Load(gid)
	l.noWarn.Store(gid, tag)
	defer func() {
		if had {
			l.noWarn.Store(gid, prev)
		} else {
			l.noWarn.Delete(gid)
		}
	}()
	fn()
}

// noWarnTag returns the active suppression tag for the calling
// goroutine, if any.
func (l *Logger) noWarnTag() (Subsys, bool) {
	v, ok := l.noWarn.Load(goid.Get())
	if !ok {
		return 0, false
	}
	return v.(Subsys), true
}
