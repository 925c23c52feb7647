// FILE: identity.go
package diag

import (
	"fmt"
)

// numDigits returns the count of decimal digits in n.
// Note this returns 0 for non-positive numbers, which matches the
// zero-pad policy.
func numDigits(n int) int {
	ndigits := 0
	for n > 0 {
		n /= 10
		ndigits++
	}
	return ndigits
}

// SetDistributor records the rank/nranks pair used to prefix WARN and
// INFO lines. Both values are zero-padded to the digit width of
// nranks (e.g. rank 8 of 128 formats as 008/128). May be called at
// any time; last write wins, and readers always observe the pair as
// one unit.
func (l *Logger) SetDistributor(rank, nranks int) {
	l.idMu.Lock()
	defer l.idMu.Unlock()

	width := numDigits(nranks)
	l.state.Identity.Store(&distIdentity{
		rank:   fmt.Sprintf("%0*d", width, rank),
		nranks: fmt.Sprintf("%0*d", width, nranks),
	})
}
