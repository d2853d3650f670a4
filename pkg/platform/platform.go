// Package platform reports the host operating system family and CPU word
// width. The result drives platform-specific behavior elsewhere, most notably
// the choice of pseudo-terminal harness in pkg/executor.
package platform

import (
	"context"
	"runtime"
	"strings"

	"github.com/arthur-debert/shkit/pkg/logging"
	"github.com/shirou/gopsutil/v3/host"
)

// Family is the operating system family of a host
type Family string

// Supported families. Anything else classifies as Unsupported.
const (
	Linux       Family = "linux"
	Darwin      Family = "darwin"
	Windows     Family = "windows"
	FreeBSD     Family = "freebsd"
	Unsupported Family = "unsupported"
)

// Platform is the probe result: a family plus the CPU word width in bits.
// Bits is 0 when the machine name is not recognized.
type Platform struct {
	Family Family `json:"family" yaml:"family"`
	Bits   int    `json:"bits" yaml:"bits"`
}

// String returns the platform label, e.g. "linux-64" or "unsupported"
func (p Platform) String() string {
	if p.Family == Unsupported {
		return string(Unsupported)
	}
	switch p.Bits {
	case 32:
		return string(p.Family) + "-32"
	case 64:
		return string(p.Family) + "-64"
	default:
		return string(p.Family)
	}
}

// Supported reports whether the family is one of the known ones
func (p Platform) Supported() bool {
	return p.Family != Unsupported
}

// Classify maps a uname-style system name ("Linux", "Darwin", "MINGW64_NT-10.0")
// or a GOOS value ("linux", "windows") plus a machine name ("x86_64", "arm64",
// "386") to a Platform. It never fails: unknown system names yield Unsupported.
func Classify(sysname, machine string) Platform {
	return Platform{
		Family: classifyFamily(sysname),
		Bits:   classifyBits(machine),
	}
}

func classifyFamily(sysname string) Family {
	s := strings.ToLower(strings.TrimSpace(sysname))
	switch {
	case s == "linux":
		return Linux
	case s == "darwin":
		return Darwin
	case s == "freebsd":
		return FreeBSD
	case s == "windows",
		strings.HasPrefix(s, "cygwin"),
		strings.HasPrefix(s, "mingw"),
		strings.HasPrefix(s, "msys"),
		strings.HasPrefix(s, "windows_nt"):
		return Windows
	default:
		return Unsupported
	}
}

func classifyBits(machine string) int {
	m := strings.ToLower(strings.TrimSpace(machine))
	switch m {
	case "x86_64", "amd64", "arm64", "aarch64", "ppc64", "ppc64le", "s390x", "riscv64", "mips64", "mips64le", "loong64":
		return 64
	case "i386", "i486", "i586", "i686", "386", "x86", "arm", "mips", "mipsle", "ppc":
		return 32
	}
	if strings.HasPrefix(m, "armv") {
		return 32
	}
	return 0
}

// Detect probes the running host. It asks gopsutil for the kernel's own
// report and falls back to the Go runtime values when that fails.
func Detect(ctx context.Context) Platform {
	logger := logging.GetLogger("platform")

	sysname, machine := runtime.GOOS, runtime.GOARCH
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("host info unavailable, using runtime values")
	} else {
		if info.OS != "" {
			sysname = info.OS
		}
		if info.KernelArch != "" {
			machine = info.KernelArch
		}
	}

	p := Classify(sysname, machine)
	logger.Debug().
		Str("sysname", sysname).
		Str("machine", machine).
		Str("platform", p.String()).
		Msg("Platform detected")
	return p
}
