// FILE: lixenwraith/diag/constant.go
package diag

// Level is a verbosity tier. A message is eligible for output only when
// its level is at or below the configured verbosity.
type Level int32

const (
	LevelNone Level = iota
	LevelVersion
	LevelWarn
	LevelInfo
	LevelAbort
	LevelTrace
)

// levelUninit marks the global level before the first call resolves
// the environment.
const levelUninit Level = -1

// Subsys is a bitmask of diagnostic subsystems. A message tagged with
// one or more subsystem bits is eligible only when at least one of
// them is present in the configured mask.
type Subsys uint64

const (
	SubsysInit Subsys = 1 << iota
	SubsysColl
	SubsysP2P
	SubsysShm
	SubsysNet
	SubsysGraph
	SubsysTuning
	SubsysEnv
	SubsysAlloc
	SubsysCall
	SubsysProxy
	SubsysNvls
	SubsysBootstrap
	SubsysReg

	SubsysAll Subsys = ^Subsys(0)
)

// defaultSubsysMask is used when NCCL_DEBUG_SUBSYS is unset.
const defaultSubsysMask = SubsysInit | SubsysEnv

// Buffer bounds
const (
	// Formatted line cap, newline included. Longer output is truncated.
	maxLineLen = 2048
	// Last captured warning cap.
	maxLastWarnLen = 1024
	// Expanded NCCL_DEBUG_FILE path cap.
	maxPathLen = 4096
	// Thread name cap, the Linux comm limit minus the terminator.
	maxThreadNameLen = 15
)

// envPrefix is stripped from environment variables and nccl.conf keys
// to form the resolver's lowercase config keys.
const envPrefix = "NCCL_"

// lineTag is the product tag embedded in every emitted line. External
// tools parse it, so it is part of the output contract.
const lineTag = "NCCL"
