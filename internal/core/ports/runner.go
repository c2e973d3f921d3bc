// Package ports defines the core interfaces for the application.
package ports

import (
	"bytes"
	"time"

	"go.trai.ch/forge/internal/core/domain"
)

// Runner owns one spawned child process end-to-end: spawn, concurrent
// capture of its output streams under time budgets, exit classification,
// and forceful termination of the process tree.
//
// A runner is driven by a single goroutine for its entire lifetime and is
// never re-spawned. Once exited, every OS handle it owns is released;
// Close is an idempotent safety net for callers that bail out early.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Spawn starts the child with stdout and stderr redirected into pipes
	// owned by the runner. shareHandles instead passes the parent's
	// standard handles through, disabling capture. On failure no handle is
	// leaked; HasAborted distinguishes an abort-triggered failure from a
	// genuine spawn error.
	Spawn(executable, args, workingDir string, env []string, shareHandles bool) error

	// ReadAllData drains both output streams into the buffers until the
	// process closes them or a budget expires. overall caps total
	// wall-clock time; inactivity resets on every byte received on either
	// stream. An expired budget or a set abort flag kills the whole
	// process tree before returning. The error return is reserved for
	// misuse (never spawned, or capture disabled by shareHandles).
	ReadAllData(stdout, stderr *bytes.Buffer, overall, inactivity time.Duration) error

	// WaitForExit blocks until the process has fully exited and returns
	// the exit reason; the exit code is meaningful only for ExitNormal.
	// Idempotent: later calls return the cached result.
	WaitForExit() (domain.ExitReason, int)

	// KillProcessTree terminates the process and every descendant,
	// re-checking each candidate's creation time so a recycled process id
	// is never killed by mistake.
	KillProcessTree()

	// Detach releases the OS handles without killing the process; no
	// further operation on the runner is valid afterwards except Close.
	Detach()

	// Close releases any handles still owned. Safe to call repeatedly and
	// on every exit path.
	Close()

	IsRunning() bool
	HasAborted() bool
}

// RunnerFactory creates a Runner observing the given abort flags.
// flags may be nil when cancellation is not needed.
type RunnerFactory func(flags *domain.AbortFlags) Runner
