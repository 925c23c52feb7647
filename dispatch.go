// FILE: lixenwraith/diag/dispatch.go
package diag

import (
	"fmt"
	"time"
)

// Logf is the common entry point behind every diagnostic macro-style
// helper. location is the call site, either file:line or a function
// name; it appears verbatim in WARN, INFO and TRACE lines.
//
// The first call process-wide resolves the configuration from the
// environment. After that a filtered-out call costs two atomic loads.
func (l *Logger) Logf(level Level, flags Subsys, location, format string, args ...any) {
	if Level(l.state.Level.Load()) == levelUninit {
		l.initialize()
	}

	// Scoped warn suppression: expected warnings on this goroutine
	// are demoted to INFO under the caller-chosen subsystem tag.
	if level == LevelWarn {
		if tag, ok := l.noWarnTag(); ok {
			level, flags = LevelInfo, tag
		}
	}

	// The last warning is captured even when the message is filtered
	// out below, so the host can always surface it.
	if level == LevelWarn {
		l.captureLastWarning(format, args)
	}

	if Level(l.state.Level.Load()) < level || flags&Subsys(l.state.Mask.Load()) == 0 {
		return
	}

	buf := make([]byte, 0, maxLineLen)
	switch {
	case level == LevelWarn, level == LevelInfo:
		id := l.state.Identity.Load()
		name := "INFO"
		if level == LevelWarn {
			name = "WARN"
		}
		buf = fmt.Appendf(buf, "[%s/%s][%s] [%s] [%s:pid=%d] %s %s ",
			id.rank, id.nranks, localNow(), location, l.state.Hostname, l.state.Pid, lineTag, name)
		if level == LevelWarn && l.state.WarnEscalate {
			// One warning emitted: surface INFO detail from here on.
			l.raiseLevel(LevelInfo)
		}
	case level == LevelTrace && flags == SubsysCall:
		// Abbreviated tier for high-frequency call tracing.
		buf = fmt.Appendf(buf, "[%s:pid=%d] %s CALL ", l.state.Hostname, l.state.Pid, lineTag)
	case level == LevelTrace:
		elapsed := float64(time.Since(l.state.Epoch)) / float64(time.Millisecond)
		buf = fmt.Appendf(buf, "[%s:pid=%d] %f %s %s TRACE ",
			l.state.Hostname, l.state.Pid, elapsed, location, lineTag)
	default:
		// VERSION and ABORT have no line format of their own.
		return
	}

	buf = fmt.Appendf(buf, format, args...)
	// Truncation is not an error: clamp so the newline still fits.
	if len(buf) > maxLineLen-1 {
		buf = buf[:maxLineLen-1]
	}
	buf = append(buf, '\n')

	out := l.state.Sink.Load().(sink)
	l.writeMu.Lock()
	_, _ = out.w.Write(buf)
	l.writeMu.Unlock()
}

// Version emits the version banner whenever the configured level is
// at least VERSION. The banner bypasses the subsystem mask and
// carries no line prefix.
func (l *Logger) Version(format string, args ...any) {
	if Level(l.state.Level.Load()) == levelUninit {
		l.initialize()
	}
	if Level(l.state.Level.Load()) < LevelVersion {
		return
	}
	buf := fmt.Appendf(make([]byte, 0, maxLineLen), format, args...)
	if len(buf) > maxLineLen-1 {
		buf = buf[:maxLineLen-1]
	}
	buf = append(buf, '\n')

	out := l.state.Sink.Load().(sink)
	l.writeMu.Lock()
	_, _ = out.w.Write(buf)
	l.writeMu.Unlock()
}
