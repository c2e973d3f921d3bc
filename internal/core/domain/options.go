package domain

import "sync/atomic"

// Options carries the global build settings consulted while executing
// action nodes.
type Options struct {
	// ProcessTimeoutSecs is the overall wall-clock budget for one spawned
	// process. Zero disables the limit.
	ProcessTimeoutSecs int
	// ProcessOutputTimeoutSecs is the inactivity budget: it resets whenever
	// the process writes to either output stream. Zero disables the limit.
	ProcessOutputTimeoutSecs int
	// Parallelism is the number of action nodes built concurrently.
	Parallelism int

	// ShowCommandSummary prints a one-line "Run: <target>" per build.
	ShowCommandSummary bool
	// ShowCommandLines prints the full command line, working directory and
	// expected return code before each build.
	ShowCommandLines bool
	// ShowCommandOutput dumps captured process output even for successful
	// builds.
	ShowCommandOutput bool
}

// AbortFlags are the two cooperative cancellation signals a process runner
// polls. The runner only reads them; Main is set when the whole program is
// shutting down, Local when a single build run is cancelled.
type AbortFlags struct {
	Main  atomic.Bool
	Local atomic.Bool
}

// Requested reports whether either flag is set.
func (f *AbortFlags) Requested() bool {
	return f.Main.Load() || f.Local.Load()
}
