package pidfile_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceempire-go/internal/infrastructure/pidfile"
)

func TestAcquire_WritesCurrentPID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.pid")

	lock, err := pidfile.Acquire(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
	assert.Equal(t, path, lock.Path())

	require.NoError(t, lock.Release())
	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// Second release is a no-op
	assert.NoError(t, lock.Release())
}

func TestAcquire_ReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid\n"), 0o644))

	lock, err := pidfile.Acquire(path)
	require.NoError(t, err)
	defer lock.Release()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
}

func TestAcquire_ReplacesDeadProcess(t *testing.T) {
	cmd := exec.Command("true")
	if err := cmd.Run(); err != nil {
		t.Skip("cannot spawn a short-lived process:", err)
	}
	deadPID := cmd.Process.Pid

	path := filepath.Join(t.TempDir(), "run.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(deadPID)), 0o644))

	lock, err := pidfile.Acquire(path)
	require.NoError(t, err)
	defer lock.Release()
}

func TestAcquire_RefusesLiveProcess(t *testing.T) {
	cmd := exec.Command("sleep", "5")
	if err := cmd.Start(); err != nil {
		t.Skip("cannot spawn a long-lived process:", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	path := filepath.Join(t.TempDir(), "run.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(cmd.Process.Pid)), 0o644))

	_, err := pidfile.Acquire(path)

	var running *pidfile.AlreadyRunningError
	require.True(t, errors.As(err, &running))
	assert.Equal(t, cmd.Process.Pid, running.PID)
}
