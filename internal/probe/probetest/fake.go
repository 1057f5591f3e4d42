// Package probetest provides an in-memory Probe for testing collectors.
// It simulates the pseudo-filesystem and external utilities with fixture
// data, so fallback-chain behavior can be asserted deterministically.
package probetest

import (
	"errors"
	"sync"

	"github.com/barlight/barlight/internal/probe"
)

// ErrNotFixed is returned for any path or command without a fixture.
var ErrNotFixed = errors.New("probetest: no fixture")

// Fake is an in-memory Probe. Fixtures are added with the Set* methods;
// anything not fixed fails, which is how tests exercise fallback steps.
type Fake struct {
	mu       sync.RWMutex
	files    map[string]string
	dirs     map[string][]string
	existing map[string]struct{}
	commands map[string]string
	cmdErrs  map[string]error

	// Calls records every probe invocation in order, for asserting which
	// strategies a chain actually tried.
	Calls []string
}

// New creates an empty fake probe. Every query fails until fixtures are set.
func New() *Fake {
	return &Fake{
		files:    make(map[string]string),
		dirs:     make(map[string][]string),
		existing: make(map[string]struct{}),
		commands: make(map[string]string),
		cmdErrs:  make(map[string]error),
	}
}

// SetFile fixes the contents of a pseudo-file. The path also becomes existing.
func (f *Fake) SetFile(path, contents string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = contents
	f.existing[path] = struct{}{}
	return f
}

// SetDir fixes a directory listing. The path also becomes existing.
func (f *Fake) SetDir(path string, entries ...string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[path] = entries
	f.existing[path] = struct{}{}
	return f
}

// SetExists marks a bare path as existing without contents, e.g. the
// wireless marker directory under /sys/class/net.
func (f *Fake) SetExists(path string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existing[path] = struct{}{}
	return f
}

// SetCommand fixes the stdout of an external utility invocation.
// The key is the command name followed by its arguments, space-joined.
func (f *Fake) SetCommand(key, stdout string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands[key] = stdout
	return f
}

// FailCommand makes an external utility invocation fail, as a non-zero
// exit status would.
func (f *Fake) FailCommand(key string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cmdErrs[key] = err
	return f
}

func (f *Fake) record(call string) {
	f.Calls = append(f.Calls, call)
}

// ReadFile implements probe.Probe.
func (f *Fake) ReadFile(path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("read " + path)
	contents, ok := f.files[path]
	if !ok {
		return "", ErrNotFixed
	}
	return contents, nil
}

// Exists implements probe.Probe.
func (f *Fake) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("exists " + path)
	_, ok := f.existing[path]
	return ok
}

// ListDir implements probe.Probe.
func (f *Fake) ListDir(path string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list " + path)
	entries, ok := f.dirs[path]
	if !ok {
		return nil, ErrNotFixed
	}
	return entries, nil
}

// Run implements probe.Probe.
func (f *Fake) Run(name string, args ...string) (string, error) {
	key := probe.CommandKey(name, args...)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("run " + key)
	if err, ok := f.cmdErrs[key]; ok {
		return "", err
	}
	stdout, ok := f.commands[key]
	if !ok {
		return "", ErrNotFixed
	}
	return stdout, nil
}

var _ probe.Probe = (*Fake)(nil)
