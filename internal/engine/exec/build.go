package exec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// DoBuild runs the configured executable and classifies the outcome. An
// aborted build fails silently (cancellation is expected during shutdown,
// not a build error); every other failure is reported through the logger.
func (n *Node) DoBuild(_ context.Context) domain.BuildResult {
	var args strings.Builder
	n.BuildCommandLine(&args)
	env := domain.FormatEnvironment(n.cfg.Environment)

	n.emitCommandMessage(args.String())

	r := n.deps.NewRunner(n.deps.Abort)
	defer r.Close()

	// Empty working dir means the process inherits the caller's.
	if err := r.Spawn(n.cfg.Executable, args.String(), n.cfg.WorkingDir, env, false); err != nil {
		if r.HasAborted() {
			return domain.BuildFailed
		}
		n.deps.Logger.Error(zerr.With(zerr.Wrap(err, "failed to spawn process"),
			"target", n.name.String()))
		return domain.BuildFailed
	}

	opts := n.deps.Options
	var stdout, stderr bytes.Buffer
	_ = r.ReadAllData(&stdout, &stderr,
		time.Duration(opts.ProcessTimeoutSecs)*time.Second,
		time.Duration(opts.ProcessOutputTimeoutSecs)*time.Second)

	reason, exitCode := r.WaitForExit()
	if reason == domain.ExitAborted {
		return domain.BuildFailed
	}

	failed := reason != domain.ExitNormal || exitCode != n.cfg.ExpectedReturnCode

	if failed || n.cfg.AlwaysShowOutput || opts.ShowCommandOutput {
		n.dumpOutput(stdout.String())
		n.dumpOutput(stderr.String())
	}

	if failed {
		errorStr := reason.String()
		if reason == domain.ExitNormal {
			errorStr = exitCodeString(exitCode)
		}
		buildErr := zerr.With(zerr.New("execution failed"), "error", errorStr)
		buildErr = zerr.With(buildErr, "target", n.name.String())
		n.deps.Logger.Error(buildErr)
		return domain.BuildFailed
	}

	if n.cfg.UseStdOutAsOutput {
		// Empty stdout still creates/truncates the output file.
		if err := os.WriteFile(n.name.String(), stdout.Bytes(), 0o644); err != nil { //nolint:gosec // build artifact
			n.deps.Logger.Error(zerr.With(zerr.Wrap(err, "failed to write output"),
				"target", n.name.String()))
			return domain.BuildFailed
		}
	}

	if err := n.deps.Stamper.RecordStamp(n.name.String(), n.dependencyNames()); err != nil {
		n.deps.Logger.Error(zerr.With(zerr.Wrap(err, "failed to record output stamp"),
			"target", n.name.String()))
		return domain.BuildFailed
	}

	return domain.BuildOK
}

// emitCommandMessage prints the pre-execution diagnostic: a one-line
// summary and, in verbose mode, the full command line, working directory
// and expected return code. Assembled into one write for contiguousness.
func (n *Node) emitCommandMessage(args string) {
	opts := n.deps.Options

	var msg strings.Builder
	if opts.ShowCommandSummary {
		msg.WriteString("Run: ")
		msg.WriteString(n.name.String())
		msg.WriteByte('\n')
	}
	if opts.ShowCommandLines {
		fmt.Fprintf(&msg, "%s %s\nWorkingDir: %s\nExpectedReturnCode: %d\n",
			n.cfg.Executable, args, n.cfg.WorkingDir, n.cfg.ExpectedReturnCode)
	}
	if msg.Len() > 0 {
		n.deps.Logger.Output(msg.String())
	}
}

func (n *Node) dumpOutput(s string) {
	if s != "" {
		n.deps.Logger.Output(s)
	}
}

// exitCodeString names well-known exit codes; anything unrecognized prints
// numerically.
func exitCodeString(code int) string {
	switch code {
	case 126:
		return "126 (command not executable)"
	case 127:
		return "127 (command not found)"
	}
	if code > 128 && code < 160 {
		return fmt.Sprintf("%d (terminated by signal %d)", code, code-128)
	}
	return strconv.Itoa(code)
}
