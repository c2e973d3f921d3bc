package domain

import "go.trai.ch/zerr"

var (
	// ErrNodeAlreadyExists is returned when adding a node whose name is taken.
	ErrNodeAlreadyExists = zerr.New("node already exists")

	// ErrWrongNodeKind is returned when a named dependency resolves to a
	// node of an unexpected kind.
	ErrWrongNodeKind = zerr.New("node has wrong kind")

	// ErrMissingDependency is returned when an action depends on a target
	// that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when action dependencies form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not in the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrNoTargetsSpecified is returned when a run is requested without targets.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrBuildExecutionFailed is returned when one or more targets failed to
	// build.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
