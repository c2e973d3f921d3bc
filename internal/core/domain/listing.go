package domain

import "strings"

// ListingSpec identifies a directory listing: a root path plus the
// include/exclude criteria applied to its contents. Two action nodes with
// identical specs share a single listing node in the graph.
type ListingSpec struct {
	Path            string
	Recurse         bool
	Patterns        []string
	ExcludePaths    []string
	ExcludeFiles    []string
	ExcludePatterns []string
}

// Key returns the canonical identity of the spec, used to deduplicate
// listing nodes across the graph.
func (s ListingSpec) Key() string {
	var b strings.Builder
	b.WriteString("dir|")
	b.WriteString(s.Path)
	if s.Recurse {
		b.WriteString("|recurse")
	}
	writeKeyPart(&b, "p", s.Patterns)
	writeKeyPart(&b, "xp", s.ExcludePaths)
	writeKeyPart(&b, "xf", s.ExcludeFiles)
	writeKeyPart(&b, "xx", s.ExcludePatterns)
	return b.String()
}

func writeKeyPart(b *strings.Builder, tag string, values []string) {
	if len(values) == 0 {
		return
	}
	b.WriteByte('|')
	b.WriteString(tag)
	b.WriteByte('=')
	b.WriteString(strings.Join(values, ","))
}

// DirectoryListNode holds the point-in-time enumeration of files matching a
// listing spec. The graph owns the node; consumers read the file list and
// never mutate it, which makes concurrent reads across parallel builds safe.
type DirectoryListNode struct {
	name  InternedString
	spec  ListingSpec
	files []string
}

// NewDirectoryListNode creates a listing node named by the spec's key.
func NewDirectoryListNode(spec ListingSpec) *DirectoryListNode {
	return &DirectoryListNode{
		name: NewInternedString(spec.Key()),
		spec: spec,
	}
}

// Name returns the canonical spec key.
func (n *DirectoryListNode) Name() InternedString { return n.name }

// Kind returns KindDirectoryList.
func (n *DirectoryListNode) Kind() NodeKind { return KindDirectoryList }

// Spec returns the criteria this listing was built from.
func (n *DirectoryListNode) Spec() ListingSpec { return n.spec }

// Files returns the files enumerated on the most recent refresh, in
// listing order.
func (n *DirectoryListNode) Files() []string { return n.files }

// SetFiles replaces the listing contents. Called by the graph engine before
// each build pass; never by consumers.
func (n *DirectoryListNode) SetFiles(files []string) { n.files = files }
