package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph is the build dependency graph. It owns every node and guarantees
// one node per name; directory listings are additionally deduplicated by
// their spec key so identical specs across actions share one listing.
type Graph struct {
	nodes map[InternedString]Node
	// actionOrder is populated by Validate with a topological order over
	// action nodes.
	actionOrder []InternedString
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[InternedString]Node),
	}
}

// FindNode returns the node with the given name, or nil.
func (g *Graph) FindNode(name string) Node {
	return g.nodes[NewInternedString(name)]
}

// AddNode adds a node to the graph. It returns an error if the name is taken.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.nodes[n.Name()]; exists {
		return zerr.With(zerr.Wrap(ErrNodeAlreadyExists, "failed to add node"),
			"node", n.Name().String())
	}
	g.nodes[n.Name()] = n
	return nil
}

// FindOrCreateFileNode returns the file node for path, creating it if
// absent. It fails if the name belongs to a node of a different kind.
func (g *Graph) FindOrCreateFileNode(path string) (*FileNode, error) {
	if n := g.FindNode(path); n != nil {
		f, ok := n.(*FileNode)
		if !ok {
			err := zerr.Wrap(ErrWrongNodeKind, "failed to resolve file node")
			err = zerr.With(err, "node", path)
			err = zerr.With(err, "kind", n.Kind().String())
			err = zerr.With(err, "expected", KindFile.String())
			return nil, err
		}
		return f, nil
	}
	f := NewFileNode(path)
	g.nodes[f.Name()] = f
	return f, nil
}

// FindOrCreateListing returns the directory-list node for spec, sharing one
// node across identical specs.
func (g *Graph) FindOrCreateListing(spec ListingSpec) (*DirectoryListNode, error) {
	if n := g.FindNode(spec.Key()); n != nil {
		l, ok := n.(*DirectoryListNode)
		if !ok {
			err := zerr.Wrap(ErrWrongNodeKind, "failed to resolve directory listing")
			err = zerr.With(err, "node", spec.Key())
			err = zerr.With(err, "kind", n.Kind().String())
			err = zerr.With(err, "expected", KindDirectoryList.String())
			return nil, err
		}
		return l, nil
	}
	l := NewDirectoryListNode(spec)
	g.nodes[l.Name()] = l
	return l, nil
}

// Nodes returns an iterator over every node in the graph.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range g.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// Actions returns an iterator over action nodes in topological order.
// Validate must have been called and returned nil.
func (g *Graph) Actions() iter.Seq[Buildable] {
	return func(yield func(Buildable) bool) {
		for _, name := range g.actionOrder {
			b, ok := g.nodes[name].(Buildable)
			if !ok {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// Validate checks the action dependency edges for missing targets and
// cycles using a depth-first topological sort, and records the resulting
// execution order.
func (g *Graph) Validate() error {
	g.actionOrder = g.actionOrder[:0]
	visited := make(map[InternedString]int) // 0 unvisited, 1 visiting, 2 done
	var path []InternedString

	var visit func(name InternedString, b Buildable) error
	visit = func(name InternedString, b Buildable) error {
		visited[name] = 1
		path = append(path, name)

		for _, dep := range b.DependsOn() {
			next, ok := g.nodes[dep].(Buildable)
			if !ok {
				err := zerr.Wrap(ErrMissingDependency, "failed to validate graph")
				err = zerr.With(err, "target", name.String())
				err = zerr.With(err, "dependency", dep.String())
				return err
			}
			if visited[dep] == 1 {
				return g.cycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep, next); err != nil {
					return err
				}
			}
		}

		visited[name] = 2
		path = path[:len(path)-1]
		g.actionOrder = append(g.actionOrder, name)
		return nil
	}

	for name, n := range g.nodes {
		b, ok := n.(Buildable)
		if !ok || visited[name] != 0 {
			continue
		}
		if err := visit(name, b); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) cycleError(path []InternedString, dep InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	cycle := ""
	for i := start; i < len(path); i++ {
		cycle += path[i].String() + " -> "
	}
	cycle += dep.String()
	return zerr.With(zerr.Wrap(ErrCycleDetected, "failed to validate graph"), "cycle", cycle)
}

// Dependents returns the action nodes that declare a direct dependency on
// name.
func (g *Graph) Dependents(name InternedString) []InternedString {
	var out []InternedString
	for _, n := range g.nodes {
		b, ok := n.(Buildable)
		if !ok {
			continue
		}
		for _, dep := range b.DependsOn() {
			if dep == name {
				out = append(out, b.Name())
				break
			}
		}
	}
	return out
}
