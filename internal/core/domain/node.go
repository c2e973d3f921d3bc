// Package domain contains the core domain models for the build graph:
// nodes, directory listings, action configuration, and process exit
// classification.
package domain

import "context"

// NodeKind identifies the concrete type of a graph node.
type NodeKind uint8

const (
	// KindFile is a file on disk, identified by its path.
	KindFile NodeKind = iota
	// KindDirectoryList is a shared, point-in-time directory enumeration.
	KindDirectoryList
	// KindAction is a node that runs an external command to produce its output.
	KindAction
)

// String returns the human-readable name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDirectoryList:
		return "DirectoryList"
	case KindAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Node is a vertex of the build graph.
type Node interface {
	Name() InternedString
	Kind() NodeKind
}

// BuildResult classifies the outcome of building one node.
type BuildResult uint8

const (
	// BuildOK indicates the node built successfully and its output is current.
	BuildOK BuildResult = iota
	// BuildFailed indicates the build failed or was aborted.
	BuildFailed
)

// String returns the human-readable name of the result.
func (r BuildResult) String() string {
	if r == BuildOK {
		return "OK"
	}
	return "Failed"
}

// Buildable is a graph node that performs work when its output is stale.
// The scheduler drives each build attempt in this order: refresh the
// dynamic dependency set, check staleness, then build.
type Buildable interface {
	Node
	DependsOn() []InternedString
	DoDynamicDependencies(g *Graph) error
	NeedsRebuild() bool
	DoBuild(ctx context.Context) BuildResult
}

// FileNode represents a file on disk.
type FileNode struct {
	name InternedString
}

// NewFileNode creates a file node for the given path.
func NewFileNode(path string) *FileNode {
	return &FileNode{name: NewInternedString(path)}
}

// Name returns the file path.
func (n *FileNode) Name() InternedString { return n.name }

// Kind returns KindFile.
func (n *FileNode) Kind() NodeKind { return KindFile }
