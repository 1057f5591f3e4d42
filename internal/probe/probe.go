// Package probe abstracts the OS queries that block collectors depend on:
// pseudo-file reads under /proc and /sys, directory listings, existence
// checks, and invocation of external network utilities. Collection logic
// takes a Probe so fallback chains can be exercised against deterministic
// fixtures instead of real hardware.
package probe

import (
	"os"
	"os/exec"
	"strings"
)

// Probe is the capability surface for host state queries.
// Implementations must be safe for concurrent use; each block instance
// performs its own calls independently.
type Probe interface {
	// ReadFile returns the full contents of a pseudo-file.
	ReadFile(path string) (string, error)

	// Exists reports whether a path exists. Used for the wireless-marker
	// check under /sys/class/net/<iface>/wireless.
	Exists(path string) bool

	// ListDir returns the entry names of a directory, in directory order.
	ListDir(path string) ([]string, error)

	// Run invokes an external utility and returns its stdout.
	// A non-zero exit status is returned as an error.
	Run(name string, args ...string) (string, error)
}

// system implements Probe against the real OS.
type system struct{}

// System returns a Probe backed by the local filesystem and exec.
func System() Probe {
	return system{}
}

func (system) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (system) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (system) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (system) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CommandKey joins a command name and arguments into the lookup key used by
// the probetest fake. Exposed here so tests and fake stay in sync on the
// key format.
func CommandKey(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
