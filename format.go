// FILE: lixenwraith/diag/format.go
package diag

import (
	"time"
)

// localNow renders the current wall-clock local time with millisecond
// precision, e.g. "2026-08-29 14:03:05,042". The comma separator is
// part of the output contract; downstream parsers expect it.
func localNow() string {
	return time.Now().Format("2006-01-02 15:04:05,000")
}
