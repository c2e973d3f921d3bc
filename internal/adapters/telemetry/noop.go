// Package telemetry provides build-progress recording implementations.
package telemetry

import (
	"context"

	"go.trai.ch/forge/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a no-op telemetry recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (n *NoOp) Record(_ context.Context, _ string) ports.Vertex {
	return noOpVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error {
	return nil
}

type noOpVertex struct{}

func (noOpVertex) Done(_ error) {}
