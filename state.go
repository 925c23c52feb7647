// FILE: state.go
package diag

import (
	"sync/atomic"
	"time"
)

// State encapsulates the resolved process-wide configuration.
//
// Level is the publication point: it is stored last during
// initialization, so any goroutine that loads a non-sentinel level is
// guaranteed to observe every other field already set. Fields without
// atomic types are written only before that store and are read-only
// afterwards.
type State struct {
	Level atomic.Int32  // Level, levelUninit until resolved
	Mask  atomic.Uint64 // Subsys bitmask

	Sink     atomic.Value // stores sink
	Identity atomic.Pointer[distIdentity]

	Hostname string
	Pid      int
	Epoch    time.Time // monotonic reference for TRACE timestamps

	// Boolean tunables, fixed after initialization.
	WarnEscalate bool // NCCL_WARN_ENABLE_DEBUG_INFO
	ThreadNames  bool // NCCL_SET_THREAD_NAME
}
