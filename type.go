// FILE: lixenwraith/diag/type.go
package diag

import (
	"io"
)

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// distIdentity is the rank/nranks pair used to label WARN/INFO lines.
// Both strings are zero-padded to the digit width of nranks and are
// always swapped as one unit so readers never see a torn pair.
type distIdentity struct {
	rank   string
	nranks string
}

// unknownIdentity labels lines before the host sets a distributor.
var unknownIdentity = distIdentity{rank: "?", nranks: "?"}
