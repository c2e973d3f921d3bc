package domain

// ExitReason classifies why a child process stopped being monitored.
type ExitReason uint8

const (
	// ExitUndefined means the exit reason is not determined yet.
	ExitUndefined ExitReason = iota
	// ExitNormal means the process exited on its own; only then is the
	// exit code meaningful.
	ExitNormal
	// ExitAborted means the process was killed because an abort flag was set.
	ExitAborted
	// ExitTimedOut means the overall wall-clock budget was exceeded.
	ExitTimedOut
	// ExitTimedOutInactive means no output arrived on either stream within
	// the inactivity budget.
	ExitTimedOutInactive
)

// String returns the human-readable name of the reason.
func (r ExitReason) String() string {
	switch r {
	case ExitUndefined:
		return "Undefined"
	case ExitNormal:
		return "Normal"
	case ExitAborted:
		return "Aborted"
	case ExitTimedOut:
		return "Process Timeout"
	case ExitTimedOutInactive:
		return "Process Timeout Inactive"
	default:
		return "Unknown"
	}
}
