package pidfile

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// AlreadyRunningError is returned when another live process holds the lock
type AlreadyRunningError struct {
	Path string
	PID  int
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("another session is already running (PID %d, lock %s)", e.PID, e.Path)
}

// Lock is a PID file that keeps two autoplay runs from sharing one history database
type Lock struct {
	path string
}

// Acquire writes the current PID to path. A file left by a dead process or
// holding garbage is replaced; a file owned by a live process is an error.
func Acquire(path string) (*Lock, error) {
	if pid, ok := readPID(path); ok && isProcessRunning(pid) && pid != os.Getpid() {
		return nil, &AlreadyRunningError{Path: path, PID: pid}
	}

	data := fmt.Sprintf("%d\n", os.Getpid())
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write PID file: %w", err)
	}
	return &Lock{path: path}, nil
}

// Path returns the lock file location
func (l *Lock) Path() string {
	return l.path
}

// Release removes the PID file; releasing twice is not an error
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

func readPID(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// isProcessRunning probes pid with signal 0
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = process.Signal(syscall.Signal(0))
	switch {
	case err == nil:
		return true
	case errors.Is(err, syscall.EPERM):
		// exists, owned by someone else
		return true
	default:
		return false
	}
}
