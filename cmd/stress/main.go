// FILE: cmd/stress/main.go
// Hammers the dispatcher from many goroutines to eyeball line
// integrity and throughput against a file sink.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/diag"
)

func main() {
	workers := flag.Int("workers", 8, "concurrent logging goroutines")
	lines := flag.Int("lines", 1000, "lines per goroutine")
	flag.Parse()

	os.Setenv("NCCL_DEBUG", "TRACE")
	os.Setenv("NCCL_DEBUG_SUBSYS", "ALL")
	if os.Getenv("NCCL_DEBUG_FILE") == "" {
		os.Setenv("NCCL_DEBUG_FILE", "stress-%h-%p.log")
	}

	logger := diag.NewLogger()

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < *lines; i++ {
				logger.Tracef(diag.SubsysColl, "worker=%d line=%d", w, i)
			}
		}(w)
	}
	wg.Wait()

	total := *workers * *lines
	elapsed := time.Since(start)
	fmt.Printf("wrote %d lines in %v (%.0f lines/s)\n",
		total, elapsed, float64(total)/elapsed.Seconds())
}
