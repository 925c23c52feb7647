// FILE: utility.go
package diag

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// caller returns the call site skip frames up the stack as
// "file.go:line", with the same skip semantics as runtime.Caller.
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "(unknown)"
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}

// shortHostname resolves the local hostname truncated at the first
// dot. Resolution failure yields a placeholder rather than an error;
// hostnames only ever label log lines here.
func shortHostname() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "(unknown)"
	}
	if i := strings.IndexByte(host, '.'); i >= 0 {
		host = host[:i]
	}
	return host
}
