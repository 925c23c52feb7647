// FILE: cmd/demo/main.go
// Walks the diagnostic surface: banner, identity, levels, warn
// suppression, call tracing and structure dumps.
//
// Run with e.g.:
//
//	NCCL_DEBUG=TRACE NCCL_DEBUG_SUBSYS=ALL go run ./cmd/demo
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/diag"
)

func main() {
	if os.Getenv("NCCL_DEBUG") == "" {
		os.Setenv("NCCL_DEBUG", "TRACE")
		os.Setenv("NCCL_DEBUG_SUBSYS", "ALL")
	}

	diag.Version("NCCL version 2.19.3+diag")
	diag.SetDistributor(8, 128)

	diag.Infof(diag.SubsysInit, "bootstrapping %d channels", 4)

	diag.WithNoWarn(diag.SubsysNet, func() {
		diag.Warnf(diag.SubsysNet, "transient: peer not ready, retrying")
	})
	diag.Warnf(diag.SubsysNet, "net/socket: connection reset by rank %d", 17)

	diag.Callf("AllReduce(count=%d, dtype=%s)", 1<<20, "f32")
	diag.Tracef(diag.SubsysColl, "ring %d ready", 0)

	diag.Dumpf(diag.SubsysTuning, "tuning", struct {
		Threads  int
		Protocol string
	}{Threads: 512, Protocol: "LL128"})

	fmt.Println("last warning:", diag.LastWarning())
}
