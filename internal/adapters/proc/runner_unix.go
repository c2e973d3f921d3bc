//go:build !windows

package proc

import (
	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// processCreationTime returns a token identifying when pid started (clock
// ticks since boot, from the process stat). Zero means the process could
// not be inspected, typically because it already exited.
func processCreationTime(pid int) uint64 {
	p, err := procfs.NewProc(pid)
	if err != nil {
		return 0
	}
	stat, err := p.Stat()
	if err != nil {
		return 0
	}
	return stat.Starttime
}

func processAlive(pid int) bool {
	return unix.Kill(pid, 0) == nil
}

// snapshotProcesses reads the current process table from /proc.
func snapshotProcesses() []procInfo {
	procs, err := procfs.AllProcs()
	if err != nil {
		return nil
	}
	infos := make([]procInfo, 0, len(procs))
	for _, p := range procs {
		stat, err := p.Stat()
		if err != nil {
			// Raced with process exit; skip.
			continue
		}
		infos = append(infos, procInfo{
			pid:      p.PID,
			ppid:     stat.PPID,
			creation: stat.Starttime,
		})
	}
	return infos
}

func terminateProcess(pid int) {
	_ = unix.Kill(pid, unix.SIGKILL)
}
