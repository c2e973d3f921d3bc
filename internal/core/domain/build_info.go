package domain

import "time"

// BuildInfo records the inputs that last produced a target's output.
type BuildInfo struct {
	Target    string    `json:"target,omitzero"`
	InputHash string    `json:"input_hash,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
