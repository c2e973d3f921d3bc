//go:build !windows

package proc

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/procfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childrenOf(snapshot []procInfo, pid int) []procInfo {
	var kids []procInfo
	for _, p := range snapshot {
		if p.ppid == pid {
			kids = append(kids, p)
		}
	}
	return kids
}

// terminated reports whether the process behind p is gone: its pid has
// vanished, was recycled for a different process, or is a zombie waiting
// to be reaped.
func terminated(p procInfo) bool {
	proc, err := procfs.NewProc(p.pid)
	if err != nil {
		return true
	}
	stat, err := proc.Stat()
	if err != nil {
		return true
	}
	return stat.Starttime != p.creation || stat.State == "Z"
}

func TestKillProcessTree_TerminatesDescendants(t *testing.T) {
	r := New(nil).(*Runner)
	defer r.Close()

	require.NoError(t, r.Spawn("/bin/sh", `-c "sleep 30 & sleep 30 & wait"`, "", nil, false))
	shellPid := r.cmd.Process.Pid

	// Wait until both background sleepers show up in the process table.
	var kids []procInfo
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		kids = childrenOf(snapshotProcesses(), shellPid)
		if len(kids) >= 2 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.GreaterOrEqual(t, len(kids), 2, "sleepers never appeared under %d", shellPid)

	r.KillProcessTree()

	var stdout, stderr bytes.Buffer
	require.NoError(t, r.ReadAllData(&stdout, &stderr, 0, 0))
	r.WaitForExit()
	assert.False(t, r.IsRunning())

	for _, kid := range kids {
		assert.Eventually(t, func() bool { return terminated(kid) },
			5*time.Second, 10*time.Millisecond, "descendant %d survived", kid.pid)
	}
}
