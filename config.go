// FILE: config.go
package diag

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds the raw configuration values before resolution.
// Tunables stay strings here because the reference semantics treat
// them as integers: any non-zero value enables.
type Config struct {
	Debug               string `koanf:"debug"`
	DebugSubsys         string `koanf:"debug_subsys"`
	DebugFile           string `koanf:"debug_file"`
	WarnEnableDebugInfo string `koanf:"warn_enable_debug_info"`
	SetThreadName       string `koanf:"set_thread_name"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	WarnEnableDebugInfo: "0",
	SetThreadName:       "0",
}

// confFilePaths returns the nccl.conf locations, lowest precedence
// first. The user file overrides the system file; the environment
// overrides both.
func confFilePaths() []string {
	paths := []string{"/etc/nccl.conf"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".nccl.conf"))
	}
	return paths
}

// confKey maps NCCL_DEBUG_SUBSYS style keys to their koanf form.
func confKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// loadConfig layers defaults, nccl.conf files, and the environment.
// No layer is fatal: an unreadable file or a malformed entry degrades
// to the values of the layers below it.
func loadConfig() *Config {
	k := koanf.New(".")
	cfg := defaultConfig

	_ = k.Load(structs.Provider(cfg, "koanf"), nil)
	for _, p := range confFilePaths() {
		_ = k.Load(file.Provider(p), dotenv.ParserEnv(envPrefix, ".", confKey))
	}
	_ = k.Load(env.Provider(envPrefix, ".", confKey), nil)

	_ = k.Unmarshal("", &cfg)
	return &cfg
}

// parseLevel maps the NCCL_DEBUG value to a verbosity tier. Unset and
// unrecognized values both suppress all output.
func parseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERSION":
		return LevelVersion
	case "WARN":
		return LevelWarn
	case "INFO":
		return LevelInfo
	case "ABORT":
		return LevelAbort
	case "TRACE":
		return LevelTrace
	default:
		return LevelNone
	}
}

var subsysByName = map[string]Subsys{
	"INIT":      SubsysInit,
	"COLL":      SubsysColl,
	"P2P":       SubsysP2P,
	"SHM":       SubsysShm,
	"NET":       SubsysNet,
	"GRAPH":     SubsysGraph,
	"TUNING":    SubsysTuning,
	"ENV":       SubsysEnv,
	"ALLOC":     SubsysAlloc,
	"CALL":      SubsysCall,
	"PROXY":     SubsysProxy,
	"NVLS":      SubsysNvls,
	"BOOTSTRAP": SubsysBootstrap,
	"REG":       SubsysReg,
	"ALL":       SubsysAll,
}

// parseSubsysMask parses the NCCL_DEBUG_SUBSYS value, a comma
// separated list such as "INIT,COLL". A leading '^' inverts: start
// from all subsystems enabled and subtract. Unknown names are ignored.
func parseSubsysMask(spec string) Subsys {
	if spec == "" {
		return defaultSubsysMask
	}
	var mask Subsys
	invert := strings.HasPrefix(spec, "^")
	if invert {
		mask = SubsysAll
		spec = spec[1:]
	}
	for _, name := range strings.Split(spec, ",") {
		bits, ok := subsysByName[strings.ToUpper(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if invert {
			mask &^= bits
		} else {
			mask |= bits
		}
	}
	return mask
}

// parseBoolParam interprets an integer tunable: any non-zero value
// enables, everything unparseable stays disabled.
func parseBoolParam(s string) bool {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	return err == nil && v != 0
}

// expandFilePath expands %h (hostname), %p (pid) and %% in the
// NCCL_DEBUG_FILE template. Unrecognized escapes are echoed verbatim.
// The result is clamped to maxPathLen bytes.
func expandFilePath(tmpl, hostname string, pid int) string {
	buf := make([]byte, 0, maxPathLen)
	for i := 0; i < len(tmpl) && len(buf) < maxPathLen; i++ {
		c := tmpl[i]
		if c != '%' {
			buf = append(buf, c)
			continue
		}
		i++
		if i >= len(tmpl) {
			buf = append(buf, '%')
			break
		}
		switch tmpl[i] {
		case '%':
			buf = append(buf, '%')
		case 'h':
			buf = append(buf, hostname...)
		case 'p':
			buf = strconv.AppendInt(buf, int64(pid), 10)
		default:
			buf = append(buf, '%', tmpl[i])
		}
	}
	if len(buf) > maxPathLen {
		buf = buf[:maxPathLen]
	}
	return string(buf)
}
