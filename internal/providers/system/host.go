package system

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
)

// CPU describes one logical processor
type CPU struct {
	Model string
	// MHz is the nominal clock speed, zero when unknown
	MHz int
}

// Host reports facts about the machine the file manager runs on
type Host interface {
	EOL() string
	CPUs() ([]CPU, error)
	HomeDir() (string, error)
	Username() (string, error)
	Architecture() string
}

// RuntimeHost reads host facts from the Go runtime and the operating system
type RuntimeHost struct {
	// CPUInfoPath overrides /proc/cpuinfo
	CPUInfoPath string
}

var _ Host = RuntimeHost{}

// EOL returns the platform line ending
func (RuntimeHost) EOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// CPUs lists logical processors from /proc/cpuinfo, falling back to
// anonymous entries where that file is unavailable
func (h RuntimeHost) CPUs() ([]CPU, error) {
	path := h.CPUInfoPath
	if path == "" {
		path = "/proc/cpuinfo"
	}

	f, err := os.Open(path)
	if err != nil {
		cpus := make([]CPU, runtime.NumCPU())
		for i := range cpus {
			cpus[i] = CPU{Model: "unknown"}
		}
		return cpus, nil
	}
	defer f.Close()

	cpus, err := parseCPUInfo(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cpus, nil
}

// HomeDir returns the user's home directory
func (RuntimeHost) HomeDir() (string, error) {
	return os.UserHomeDir()
}

// Username returns the login name of the current user
func (RuntimeHost) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Architecture returns the CPU architecture the binary was built for
func (RuntimeHost) Architecture() string {
	return runtime.GOARCH
}
