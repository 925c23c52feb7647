// FILE: thread_stub.go
//go:build !linux

package diag

func threadNamingSupported() bool { return false }

func setThreadName(int, string) {}
