// FILE: lixenwraith/diag/logger.go
package diag

import (
	"os"
	"sync"
	"time"
)

// Logger is the core struct that encapsulates the diagnostic engine.
// It is created cheaply and resolves its configuration from the
// environment on first use; every method is safe for concurrent use
// from any number of goroutines.
type Logger struct {
	state State

	initMu  sync.Mutex // one-shot environment resolution
	idMu    sync.Mutex // serializes SetDistributor writers
	warnMu  sync.Mutex // guards lastWarn
	writeMu sync.Mutex // one full line per sink write

	lastWarn []byte
	noWarn   sync.Map // goroutine id -> Subsys re-tag
}

// NewLogger creates a Logger in its pre-initialization state: level
// sentinel, default subsystem mask, stdout sink, unknown identity.
func NewLogger() *Logger {
	l := &Logger{
		lastWarn: make([]byte, 0, maxLastWarnLen),
	}
	l.state.Level.Store(int32(levelUninit))
	l.state.Mask.Store(uint64(defaultSubsysMask))
	l.state.Sink.Store(sink{w: os.Stdout})
	l.state.Identity.Store(&unknownIdentity)
	return l
}

// Init resolves the configuration from the environment if that has
// not happened yet. Idempotent and safe to call from multiple
// goroutines; only the first caller performs work. Logging calls
// trigger it lazily, so calling Init is never required.
func (l *Logger) Init() {
	if Level(l.state.Level.Load()) != levelUninit {
		return
	}
	l.initialize()
}

func (l *Logger) initialize() {
	l.initMu.Lock()
	defer l.initMu.Unlock()
	if Level(l.state.Level.Load()) != levelUninit {
		return
	}

	cfg := loadConfig()
	level := parseLevel(cfg.Debug)

	l.state.Mask.Store(uint64(parseSubsysMask(cfg.DebugSubsys)))
	l.state.Hostname = shortHostname()
	l.state.Pid = os.Getpid()
	l.state.WarnEscalate = parseBoolParam(cfg.WarnEnableDebugInfo)
	l.state.ThreadNames = parseBoolParam(cfg.SetThreadName)

	// A file sink is only worth opening when something beyond the
	// version banner can be emitted. Open failure keeps stdout.
	if level > LevelVersion && cfg.DebugFile != "" {
		path := expandFilePath(cfg.DebugFile, l.state.Hostname, l.state.Pid)
		if f, err := os.Create(path); err == nil {
			l.state.Sink.Store(sink{w: f})
		}
	}

	l.state.Epoch = time.Now()

	// Published last: a goroutine loading a non-sentinel level
	// happens-after every store above.
	l.state.Level.Store(int32(level))
}

// wants reports whether a message at the given level and subsystem
// tags would be emitted, initializing first if needed. Used by the
// convenience helpers to skip caller lookup on the disabled path.
func (l *Logger) wants(level Level, flags Subsys) bool {
	if Level(l.state.Level.Load()) == levelUninit {
		l.initialize()
	}
	return Level(l.state.Level.Load()) >= level && flags&Subsys(l.state.Mask.Load()) != 0
}

// raiseLevel is a relaxed one-way upgrade of the configured
// verbosity. It never lowers an already more verbose level.
func (l *Logger) raiseLevel(min Level) {
	for {
		cur := l.state.Level.Load()
		if Level(cur) >= min || l.state.Level.CompareAndSwap(cur, int32(min)) {
			return
		}
	}
}
