//go:build !windows

package proc_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/forge/internal/adapters/proc"
	"go.trai.ch/forge/internal/core/domain"
)

const shell = "/bin/sh"

func TestRunner_CapturesOutputAndExitCode(t *testing.T) {
	r := proc.New(nil)
	defer r.Close()

	err := r.Spawn(shell, `-c "echo out; echo err >&2; exit 3"`, "", nil, false)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	require.NoError(t, r.ReadAllData(&stdout, &stderr, 0, 0))

	reason, code := r.WaitForExit()
	assert.Equal(t, domain.ExitNormal, reason)
	assert.Equal(t, 3, code)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
	assert.False(t, r.IsRunning())
	assert.False(t, r.HasAborted())
}

func TestRunner_WaitForExitIsIdempotent(t *testing.T) {
	r := proc.New(nil)
	defer r.Close()

	require.NoError(t, r.Spawn(shell, `-c "exit 7"`, "", nil, false))

	var stdout, stderr bytes.Buffer
	require.NoError(t, r.ReadAllData(&stdout, &stderr, 0, 0))

	reason, code := r.WaitForExit()
	assert.Equal(t, domain.ExitNormal, reason)
	assert.Equal(t, 7, code)

	reason, code = r.WaitForExit()
	assert.Equal(t, domain.ExitNormal, reason)
	assert.Equal(t, 7, code)
}

func TestRunner_ReadBeforeSpawnFails(t *testing.T) {
	r := proc.New(nil)
	defer r.Close()

	var stdout, stderr bytes.Buffer
	err := r.ReadAllData(&stdout, &stderr, 0, 0)
	assert.ErrorIs(t, err, proc.ErrNotStarted)
}

func TestRunner_SharedHandlesDisableCapture(t *testing.T) {
	r := proc.New(nil)
	defer r.Close()

	require.NoError(t, r.Spawn(shell, "-c true", "", nil, true))

	var stdout, stderr bytes.Buffer
	err := r.ReadAllData(&stdout, &stderr, 0, 0)
	assert.ErrorIs(t, err, proc.ErrSharedHandles)

	reason, code := r.WaitForExit()
	assert.Equal(t, domain.ExitNormal, reason)
	assert.Equal(t, 0, code)
}

func TestRunner_SpawnFailureLeaksNothing(t *testing.T) {
	r := proc.New(nil)
	defer r.Close()

	err := r.Spawn("/nonexistent/binary/path", "", "", nil, false)
	require.Error(t, err)
	assert.False(t, r.IsRunning())
	assert.False(t, r.HasAborted())
}

func TestRunner_AbortBeforeSpawn(t *testing.T) {
	flags := &domain.AbortFlags{}
	flags.Main.Store(true)

	r := proc.New(flags)
	defer r.Close()

	err := r.Spawn(shell, "-c true", "", nil, false)
	assert.ErrorIs(t, err, proc.ErrAborted)
	assert.True(t, r.HasAborted())

	reason, _ := r.WaitForExit()
	assert.Equal(t, domain.ExitAborted, reason)
}

func TestRunner_AbortKillsRunningProcess(t *testing.T) {
	flags := &domain.AbortFlags{}
	r := proc.New(flags)
	defer r.Close()

	require.NoError(t, r.Spawn(shell, `-c "sleep 30"`, "", nil, false))

	go func() {
		time.Sleep(100 * time.Millisecond)
		flags.Local.Store(true)
	}()

	start := time.Now()
	var stdout, stderr bytes.Buffer
	require.NoError(t, r.ReadAllData(&stdout, &stderr, 0, 0))

	reason, _ := r.WaitForExit()
	assert.Equal(t, domain.ExitAborted, reason)
	assert.True(t, r.HasAborted())
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestRunner_OverallTimeout(t *testing.T) {
	r := proc.New(nil)
	defer r.Close()

	require.NoError(t, r.Spawn(shell, `-c "sleep 30"`, "", nil, false))

	start := time.Now()
	var stdout, stderr bytes.Buffer
	require.NoError(t, r.ReadAllData(&stdout, &stderr, 200*time.Millisecond, 0))

	reason, _ := r.WaitForExit()
	assert.Equal(t, domain.ExitTimedOut, reason)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestRunner_InactivityTimeout(t *testing.T) {
	r := proc.New(nil)
	defer r.Close()

	require.NoError(t, r.Spawn(shell, `-c "echo tick; sleep 30"`, "", nil, false))

	var stdout, stderr bytes.Buffer
	require.NoError(t, r.ReadAllData(&stdout, &stderr, 0, 300*time.Millisecond))

	reason, _ := r.WaitForExit()
	assert.Equal(t, domain.ExitTimedOutInactive, reason)
	assert.Equal(t, "tick\n", stdout.String())
}

func TestRunner_KillProcessTree(t *testing.T) {
	r := proc.New(nil)
	defer r.Close()

	require.NoError(t, r.Spawn(shell, `-c "sleep 30"`, "", nil, false))
	require.True(t, r.IsRunning())

	r.KillProcessTree()

	deadline := time.Now().Add(5 * time.Second)
	for r.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	reason, code := r.WaitForExit()
	assert.Equal(t, domain.ExitNormal, reason)
	assert.NotEqual(t, 0, code)
	assert.False(t, r.IsRunning())
}

func TestRunner_DetachReleasesOwnership(t *testing.T) {
	r := proc.New(nil)

	require.NoError(t, r.Spawn(shell, "-c true", "", nil, false))
	r.Detach()

	// A detached runner no longer owns the process: no wait, no kill.
	reason, code := r.WaitForExit()
	assert.Equal(t, domain.ExitUndefined, reason)
	assert.Equal(t, 0, code)

	r.KillProcessTree() // must be a no-op
	r.Close()           // and Close stays safe
}

func TestRunner_WorkingDirAndEnvironment(t *testing.T) {
	dir := t.TempDir()

	r := proc.New(nil)
	defer r.Close()

	require.NoError(t, r.Spawn(shell, `-c "pwd; echo $GREETING"`, dir, []string{"GREETING=hi"}, false))

	var stdout, stderr bytes.Buffer
	require.NoError(t, r.ReadAllData(&stdout, &stderr, 0, 0))

	reason, code := r.WaitForExit()
	require.Equal(t, domain.ExitNormal, reason)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), dir)
	assert.Contains(t, stdout.String(), "hi\n")
}
