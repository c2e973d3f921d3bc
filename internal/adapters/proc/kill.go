package proc

// procInfo is one row of a process-table snapshot.
type procInfo struct {
	pid      int
	ppid     int
	creation uint64
}

var (
	creationTimeOf = processCreationTime
	terminate      = terminateProcess
)

// killTree terminates pid and every process transitively parented to it.
// creation is the start token captured for pid at spawn time; descendants
// are matched against a single snapshot and re-validated by creation time
// immediately before termination, so an id that was recycled for an
// unrelated process is left alone.
func killTree(pid int, creation uint64) {
	killTreeFrom(snapshotProcesses(), pid, creation)
}

func killTreeFrom(snapshot []procInfo, pid int, creation uint64) {
	for _, p := range snapshot {
		// A child can never predate its parent; an older process under a
		// reused parent id is unrelated.
		if p.ppid == pid && p.pid != pid && p.creation >= creation {
			killTreeFrom(snapshot, p.pid, p.creation)
		}
	}
	if creationTimeOf(pid) == creation {
		terminate(pid)
	}
}
