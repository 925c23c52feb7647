// FILE: thread.go
package diag

import (
	"fmt"
)

// NameThread applies a formatted name to an OS thread for the benefit
// of external inspection tools (top, perf, gdb). tid is a Linux
// thread id as returned by unix.Gettid; zero or negative names the
// calling thread, which callers typically pin first with
// runtime.LockOSThread.
//
// A no-op unless the platform supports thread naming and the
// NCCL_SET_THREAD_NAME tunable is enabled. Never fails observably;
// naming errors are swallowed.
func (l *Logger) NameThread(tid int, format string, args ...any) {
	if Level(l.state.Level.Load()) == levelUninit {
		l.initialize()
	}
	if !l.state.ThreadNames || !threadNamingSupported() {
		return
	}
	name := fmt.Sprintf(format, args...)
	if len(name) > maxThreadNameLen {
		name = name[:maxThreadNameLen]
	}
	setThreadName(tid, name)
}
