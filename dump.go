// FILE: dump.go
package diag

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig is tuned for log-friendly, compact output.
var dumpConfig = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dumpf logs a structure dump of an arbitrary value at TRACE under
// the given label. The dump is flattened onto one line to preserve
// the one-write-per-line invariant.
func (l *Logger) Dumpf(flags Subsys, label string, v any) {
	if !l.wants(LevelTrace, flags) {
		return
	}
	l.dumpf(caller(2), flags, label, v)
}

func (l *Logger) dumpf(location string, flags Subsys, label string, v any) {
	dump := strings.Join(strings.Fields(dumpConfig.Sdump(v)), " ")
	l.Logf(LevelTrace, flags, location, "%s %s", label, dump)
}
