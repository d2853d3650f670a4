package lock

import (
	"math"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessProber checks liveness against the process table through gopsutil
type ProcessProber struct{}

// Alive implements Prober
func (ProcessProber) Alive(pid int) bool {
	if pid <= 0 || pid > math.MaxInt32 {
		return false
	}
	exists, err := process.PidExists(int32(pid))
	if err != nil {
		return false
	}
	return exists
}

// ParentPID returns the pid of the calling process's parent. A shell script
// invoking the CLI is the parent, so that is the pid worth recording.
func ParentPID() int {
	return os.Getppid()
}

// ProcessName returns the executable name of pid, or "" when it cannot be
// determined.
func ProcessName(pid int) string {
	if pid <= 0 || pid > math.MaxInt32 {
		return ""
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return ""
	}
	name, err := p.Name()
	if err != nil {
		return ""
	}
	return name
}
