// FILE: lixenwraith/diag/dispatch_test.go
package diag

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileLogger builds an uninitialized logger whose environment
// points at a file sink in a temp directory. HOME is redirected so a
// developer's ~/.nccl.conf cannot leak into the test.
func newFileLogger(t *testing.T, env map[string]string) (*Logger, string) {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	logPath := filepath.Join(tmpDir, "debug.log")
	t.Setenv("NCCL_DEBUG_FILE", logPath)
	t.Setenv("NCCL_DEBUG", "")
	t.Setenv("NCCL_DEBUG_SUBSYS", "")
	t.Setenv("NCCL_WARN_ENABLE_DEBUG_INFO", "")
	t.Setenv("NCCL_SET_THREAD_NAME", "")
	for k, v := range env {
		t.Setenv(k, v)
	}

	return NewLogger(), logPath
}

// readLines returns the complete lines written to the sink file.
func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if len(data) == 0 {
		return nil
	}
	require.Equal(t, byte('\n'), data[len(data)-1], "sink must end with a complete line")
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestFilterByLevel(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "INFO",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	l.Tracef(SubsysInit, "too verbose")
	l.Infof(SubsysInit, "visible")

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "NCCL INFO visible")
}

func TestFilterByMask(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "INFO",
		"NCCL_DEBUG_SUBSYS": "INIT",
	})

	l.Infof(SubsysColl, "filtered out")
	l.Infof(SubsysInit, "kept")
	l.Infof(SubsysColl|SubsysInit, "kept too") // one matching bit suffices

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "kept")
	assert.Contains(t, lines[1], "kept too")
}

func TestInfoLineFormat(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "INFO",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})
	l.SetDistributor(3, 16)

	l.Infof(SubsysInit, "hello %s", "world")

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	re := regexp.MustCompile(`^\[03/16\]\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3}\] \[dispatch_test\.go:\d+\] \[[^\]:]+:pid=\d+\] NCCL INFO hello world$`)
	assert.Regexp(t, re, lines[0])
}

func TestWarnLineFormatAndCapture(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "WARN",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	l.Warnf(SubsysNet, "socket reset by rank %d", 17)

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\[\?/\?\]\[.+\] \[dispatch_test\.go:\d+\] \[[^\]:]+:pid=\d+\] NCCL WARN socket reset by rank 17$`, lines[0])
	assert.Equal(t, "socket reset by rank 17", l.LastWarning())
}

func TestLastWarningCapturedWhenFiltered(t *testing.T) {
	// No NCCL_DEBUG: level NONE, nothing is ever emitted.
	l, _ := newFileLogger(t, nil)

	l.Warnf(SubsysInit, "boom %d", 42)

	assert.Equal(t, LevelNone, Level(l.state.Level.Load()))
	assert.Equal(t, "boom 42", l.LastWarning())
}

func TestLastWarningOverwritten(t *testing.T) {
	l, _ := newFileLogger(t, nil)

	l.Warnf(SubsysInit, "first")
	l.Warnf(SubsysInit, "second")

	assert.Equal(t, "second", l.LastWarning())
}

func TestCallLineFormat(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "TRACE",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	l.Callf("AllReduce(count=%d)", 1024)

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\[[^\]:]+:pid=\d+\] NCCL CALL AllReduce\(count=1024\)$`, lines[0])
}

func TestTraceLineFormat(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "TRACE",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	l.Tracef(SubsysColl, "ring %d ready", 0)

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\[[^\]:]+:pid=\d+\] \d+\.\d{6} dispatch_test\.go:\d+ NCCL TRACE ring 0 ready$`, lines[0])
}

func TestTraceCallTagMustBeExact(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "TRACE",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	// CALL combined with another bit takes the regular TRACE shape.
	l.Logf(LevelTrace, SubsysCall|SubsysColl, "here", "mixed tags")

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "NCCL TRACE mixed tags")
	assert.NotContains(t, lines[0], "NCCL CALL")
}

func TestTruncation(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "INFO",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	l.Infof(SubsysInit, "%s", strings.Repeat("x", 2*maxLineLen))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, maxLineLen, "truncated line is exactly the buffer capacity")
	assert.Equal(t, byte('\n'), data[maxLineLen-1])
	assert.NotContains(t, string(data[:maxLineLen-1]), "\n")
}

func TestWarnEscalation(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":                  "WARN",
		"NCCL_DEBUG_SUBSYS":           "ALL",
		"NCCL_WARN_ENABLE_DEBUG_INFO": "1",
	})

	l.Infof(SubsysInit, "hidden before the warning")
	l.Warnf(SubsysInit, "something broke")
	l.Infof(SubsysInit, "visible after the warning")

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "NCCL WARN something broke")
	assert.Contains(t, lines[1], "NCCL INFO visible after the warning")
	assert.Equal(t, LevelInfo, Level(l.state.Level.Load()))
}

func TestWarnEscalationNeverDowngrades(t *testing.T) {
	l, _ := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":                  "TRACE",
		"NCCL_DEBUG_SUBSYS":           "ALL",
		"NCCL_WARN_ENABLE_DEBUG_INFO": "1",
	})

	l.Warnf(SubsysInit, "warning under TRACE")

	assert.Equal(t, LevelTrace, Level(l.state.Level.Load()))
}

func TestWarnEscalationDisabledByDefault(t *testing.T) {
	l, _ := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "WARN",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	l.Warnf(SubsysInit, "something broke")

	assert.Equal(t, LevelWarn, Level(l.state.Level.Load()))
}

func TestVersionBanner(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "INFO",
		"NCCL_DEBUG_SUBSYS": "INIT",
	})

	l.Version("NCCL version %s", "2.19.3")

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "NCCL version 2.19.3", lines[0])
}

func TestVersionBannerSuppressedAtLevelNone(t *testing.T) {
	l, _ := newFileLogger(t, nil)

	var buf bytes.Buffer
	l.Init()
	l.state.Sink.Store(sink{w: &buf})

	l.Version("NCCL version %s", "2.19.3")

	assert.Zero(t, buf.Len())
}

func TestAbortAndVersionLevelsProduceNoLine(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "TRACE",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	l.Logf(LevelAbort, SubsysInit, "here", "aborting")
	l.Logf(LevelVersion, SubsysInit, "here", "version-tier message")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestDumpfFlattensToOneLine(t *testing.T) {
	l, path := newFileLogger(t, map[string]string{
		"NCCL_DEBUG":        "TRACE",
		"NCCL_DEBUG_SUBSYS": "ALL",
	})

	l.Dumpf(SubsysTuning, "tuning", struct {
		Threads int
		Proto   string
	}{512, "LL128"})

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "NCCL TRACE tuning")
	assert.Contains(t, lines[0], "Threads")
	assert.Contains(t, lines[0], "512")
}
