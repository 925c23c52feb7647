// FILE: thread_linux.go
//go:build linux

package diag

import (
	"os"
	"strconv"
	"unsafe"

	"golang.org/x/sys/unix"
)

func threadNamingSupported() bool { return true }

// setThreadName names the calling thread via prctl, and any other
// thread in the process through its procfs comm file.
func setThreadName(tid int, name string) {
	if tid <= 0 || tid == unix.Gettid() {
		p, err := unix.BytePtrFromString(name)
		if err != nil {
			return
		}
		_ = unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(p)), 0, 0, 0)
		return
	}
	_ = os.WriteFile("/proc/self/task/"+strconv.Itoa(tid)+"/comm", []byte(name), 0o644)
}
