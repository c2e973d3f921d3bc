// Package proc implements the process runner that executes build actions:
// spawn, concurrent output capture under two timeout policies, cooperative
// abort, and recursive process-tree termination.
package proc

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// pollInterval bounds the latency of abort and timeout detection while
// draining output.
const pollInterval = 50 * time.Millisecond

const readChunkSize = 4096

var (
	// ErrNotStarted is returned when reading from a runner that never spawned.
	ErrNotStarted = zerr.New("process was never spawned")

	// ErrAborted is returned when an abort flag was already set at spawn time.
	ErrAborted = zerr.New("spawn aborted")

	// ErrSharedHandles is returned when capture is requested on a runner
	// spawned with pass-through handles.
	ErrSharedHandles = zerr.New("output capture disabled for shared handles")
)

// Runner implements ports.Runner on top of os/exec. It is exclusively
// owned and driven by a single goroutine; spawn happens at most once.
type Runner struct {
	flags *domain.AbortFlags

	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr io.ReadCloser
	// creation identifies the child beyond its pid: captured right after
	// spawn, it protects the tree kill against pid reuse.
	creation uint64

	started  bool
	sharing  bool
	detached bool
	waited   bool

	exitReason domain.ExitReason
	exitCode   int
}

var _ ports.Runner = (*Runner)(nil)

// New creates a runner observing the given abort flags. flags may be nil.
func New(flags *domain.AbortFlags) ports.Runner {
	return &Runner{
		flags:      flags,
		exitReason: domain.ExitUndefined,
	}
}

// CurrentID returns the identifier of the calling process, for diagnostics.
func CurrentID() int {
	return os.Getpid()
}

// Spawn starts the child process. Its stdout and stderr are redirected
// into pipes owned by this runner unless shareHandles is set, in which
// case the parent's standard handles are passed through and ReadAllData
// becomes unavailable. No handle is leaked on a failed spawn.
func (r *Runner) Spawn(executable, args, workingDir string, env []string, shareHandles bool) error {
	if r.started {
		return zerr.New("runner already spawned")
	}
	if r.abortRequested() {
		r.exitReason = domain.ExitAborted
		return ErrAborted
	}

	cmd := exec.Command(executable, SplitArgs(args)...) //nolint:gosec // user provided command
	cmd.Dir = workingDir
	if env != nil {
		cmd.Env = env
	}

	if shareHandles {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		r.sharing = true
	} else {
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return zerr.Wrap(err, "failed to create stdout pipe")
		}
		stderr, err := cmd.StderrPipe()
		if err != nil {
			_ = stdout.Close()
			return zerr.Wrap(err, "failed to create stderr pipe")
		}
		r.stdout = stdout
		r.stderr = stderr
	}

	if err := cmd.Start(); err != nil {
		r.releasePipes()
		return zerr.With(zerr.Wrap(err, "failed to spawn process"), "executable", executable)
	}

	r.cmd = cmd
	r.started = true
	r.creation = processCreationTime(cmd.Process.Pid)
	return nil
}

// ReadAllData drains both output streams concurrently until the process
// closes them or a budget expires. overall caps total wall-clock time since
// the read loop started; inactivity resets on every byte received on either
// stream. Zero disables a budget. An expired budget or a set abort flag
// kills the whole process tree before returning, recording the matching
// exit reason for WaitForExit.
func (r *Runner) ReadAllData(stdout, stderr *bytes.Buffer, overall, inactivity time.Duration) error {
	if !r.started {
		return ErrNotStarted
	}
	if r.sharing {
		return ErrSharedHandles
	}

	start := time.Now()
	var lastActivity atomic.Int64
	lastActivity.Store(start.UnixNano())

	outPipe, errPipe := r.stdout, r.stderr
	var g errgroup.Group
	g.Go(func() error {
		drain(outPipe, stdout, &lastActivity)
		return nil
	})
	g.Go(func() error {
		drain(errPipe, stderr, &lastActivity)
		return nil
	})

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case <-ticker.C:
		}

		// Abort takes precedence over either timeout.
		switch {
		case r.abortRequested():
			r.exitReason = domain.ExitAborted
		case overall > 0 && time.Since(start) >= overall:
			r.exitReason = domain.ExitTimedOut
		case inactivity > 0 && time.Since(time.Unix(0, lastActivity.Load())) >= inactivity:
			r.exitReason = domain.ExitTimedOutInactive
		default:
			continue
		}

		// A hung or cancelled process must never be left orphaned.
		r.KillProcessTree()
		<-done
		return nil
	}
}

// drain copies src into dst in chunks, recording the time of every byte
// received. Stream errors terminate the drain; a killed child surfaces as
// EOF or a closed-pipe error, neither of which is a capture failure.
func drain(src io.Reader, dst *bytes.Buffer, lastActivity *atomic.Int64) {
	buf := make([]byte, readChunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			dst.Write(buf[:n])
			lastActivity.Store(time.Now().UnixNano())
		}
		if err != nil {
			return
		}
	}
}

// WaitForExit blocks until the process has fully exited. The exit code is
// meaningful only when the reason is ExitNormal. Idempotent: later calls
// return the cached result without re-waiting.
func (r *Runner) WaitForExit() (domain.ExitReason, int) {
	if !r.started || r.detached || r.waited {
		return r.exitReason, r.exitCode
	}

	err := r.cmd.Wait()
	r.waited = true
	r.stdout = nil
	r.stderr = nil

	if r.exitReason != domain.ExitUndefined {
		// Killed by abort or timeout; the wait error is expected.
		return r.exitReason, r.exitCode
	}

	r.exitReason = domain.ExitNormal
	switch {
	case err == nil:
		r.exitCode = r.cmd.ProcessState.ExitCode()
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.exitCode = exitErr.ExitCode()
		} else {
			r.exitCode = -1
		}
	}
	return r.exitReason, r.exitCode
}

// KillProcessTree terminates the process and every descendant it spawned.
// Each candidate's creation time is re-checked before termination so a
// process id recycled by the OS is never killed by mistake.
func (r *Runner) KillProcessTree() {
	if !r.started || r.waited || r.detached {
		return
	}
	killTree(r.cmd.Process.Pid, r.creation)
}

// Detach releases ownership of the OS handles without killing the process.
// No further operation on this runner is valid afterwards except Close.
func (r *Runner) Detach() {
	r.releasePipes()
	if r.started && !r.waited && !r.detached {
		_ = r.cmd.Process.Release()
		r.detached = true
	}
}

// Close releases any handles still owned by the runner. It is a safety net
// for early-return paths and is safe to call repeatedly, including after
// WaitForExit or Detach.
func (r *Runner) Close() {
	r.releasePipes()
	if r.started && !r.waited && !r.detached {
		_ = r.cmd.Process.Release()
		r.detached = true
	}
}

// IsRunning reports whether the spawned process is still alive.
func (r *Runner) IsRunning() bool {
	if !r.started || r.waited {
		return false
	}
	return processAlive(r.cmd.Process.Pid)
}

// HasAborted reports whether the runner stopped because an abort flag was set.
func (r *Runner) HasAborted() bool {
	return r.exitReason == domain.ExitAborted
}

func (r *Runner) abortRequested() bool {
	return r.flags != nil && r.flags.Requested()
}

func (r *Runner) releasePipes() {
	if r.stdout != nil {
		_ = r.stdout.Close()
		r.stdout = nil
	}
	if r.stderr != nil {
		_ = r.stderr.Close()
		r.stderr = nil
	}
}
