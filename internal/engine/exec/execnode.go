// Package exec implements the action node: a build-graph node that runs an
// external executable to produce its output.
package exec

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the collaborators an action node drives during a build.
type Deps struct {
	Logger    ports.Logger
	NewRunner ports.RunnerFactory
	Stamper   ports.Stamper
	Options   *domain.Options
	Abort     *domain.AbortFlags
}

// Node is an action node. Its name is the output it produces; its static
// dependencies are resolved once by Initialize in the fixed order
// [executable, explicit inputs..., directory listings...]; its dynamic
// dependencies are re-derived from the listing contents on every build
// attempt.
type Node struct {
	name domain.InternedString
	cfg  domain.ActionConfig
	deps Deps

	staticDeps []domain.Node
	// numInputFiles caches the explicit input count so the listing slice of
	// staticDeps can be located without re-deriving it.
	numInputFiles int
	dynamicDeps   []domain.Node
	dependsOn     []domain.InternedString
}

var _ domain.Buildable = (*Node)(nil)

// New creates an action node producing output from cfg. Initialize must be
// called before the node takes part in a build.
func New(output string, cfg domain.ActionConfig, deps Deps) *Node {
	dependsOn := make([]domain.InternedString, len(cfg.DependsOn))
	for i, d := range cfg.DependsOn {
		dependsOn[i] = domain.NewInternedString(d)
	}
	return &Node{
		name:      domain.NewInternedString(output),
		cfg:       cfg,
		deps:      deps,
		dependsOn: dependsOn,
	}
}

// Name returns the output name.
func (n *Node) Name() domain.InternedString { return n.name }

// Kind returns KindAction.
func (n *Node) Kind() domain.NodeKind { return domain.KindAction }

// DependsOn returns the action nodes that must complete before this one.
func (n *Node) DependsOn() []domain.InternedString { return n.dependsOn }

// Config returns the node's configuration.
func (n *Node) Config() domain.ActionConfig { return n.cfg }

// Initialize resolves the static dependency set: the executable, the
// explicit input files, and one directory-listing node per input path.
// Identical listing specs across nodes share one listing in the graph.
func (n *Node) Initialize(g *domain.Graph) error {
	if n.cfg.Executable == "" {
		return zerr.With(zerr.New("executable is required"), "target", n.name.String())
	}

	exe, err := g.FindOrCreateFileNode(n.cfg.Executable)
	if err != nil {
		return zerr.With(zerr.With(err, "target", n.name.String()), "field", "executable")
	}
	n.staticDeps = append(n.staticDeps[:0], exe)

	for _, input := range n.cfg.Inputs {
		f, err := g.FindOrCreateFileNode(input)
		if err != nil {
			return zerr.With(zerr.With(err, "target", n.name.String()), "field", "input")
		}
		n.staticDeps = append(n.staticDeps, f)
	}
	n.numInputFiles = len(n.cfg.Inputs)

	for _, dir := range n.cfg.InputPaths {
		spec := domain.ListingSpec{
			Path:            dir,
			Recurse:         n.cfg.InputPathRecurse,
			Patterns:        n.cfg.InputPatterns,
			ExcludePaths:    n.cfg.InputExcludePaths,
			ExcludeFiles:    n.cfg.InputExcludedFiles,
			ExcludePatterns: n.cfg.InputExcludePatterns,
		}
		listing, err := g.FindOrCreateListing(spec)
		if err != nil {
			return zerr.With(zerr.With(err, "target", n.name.String()), "field", "inputPath")
		}
		n.staticDeps = append(n.staticDeps, listing)
	}

	return nil
}

// DoDynamicDependencies re-derives the dynamic dependency set from the
// current contents of each directory listing, fully replacing the previous
// set. Listed files not yet in the graph get file nodes; a name collision
// with a non-file node is an error.
func (n *Node) DoDynamicDependencies(g *domain.Graph) error {
	n.dynamicDeps = n.dynamicDeps[:0]

	start := 1 + n.numInputFiles // skip executable + explicit inputs
	for _, dep := range n.staticDeps[start:] {
		listing, ok := dep.(*domain.DirectoryListNode)
		if !ok {
			err := zerr.Wrap(domain.ErrWrongNodeKind, "failed to resolve dynamic dependencies")
			err = zerr.With(err, "node", dep.Name().String())
			err = zerr.With(err, "kind", dep.Kind().String())
			err = zerr.With(err, "expected", domain.KindDirectoryList.String())
			return err
		}

		for _, file := range listing.Files() {
			existing := g.FindNode(file)
			if existing != nil && existing.Kind() != domain.KindFile {
				err := zerr.Wrap(domain.ErrWrongNodeKind, "failed to resolve dynamic dependencies")
				err = zerr.With(err, "target", n.name.String())
				err = zerr.With(err, "node", file)
				err = zerr.With(err, "kind", existing.Kind().String())
				err = zerr.With(err, "expected", domain.KindFile.String())
				return err
			}
			f, err := g.FindOrCreateFileNode(file)
			if err != nil {
				return err
			}
			n.dynamicDeps = append(n.dynamicDeps, f)
		}
	}

	return nil
}

// NeedsRebuild reports whether the output is stale. Always true when the
// node is configured to run unconditionally.
func (n *Node) NeedsRebuild() bool {
	if n.cfg.AlwaysRun {
		return true
	}
	return n.deps.Stamper.NeedsRebuild(n.name.String(), n.dependencyNames())
}

// dependencyNames flattens the static and dynamic sets into concrete file
// paths for the staleness collaborator. Directory listings are represented
// by their dynamic expansion.
func (n *Node) dependencyNames() []string {
	names := make([]string, 0, len(n.staticDeps)+len(n.dynamicDeps))
	for _, d := range n.staticDeps {
		if d.Kind() == domain.KindDirectoryList {
			continue
		}
		names = append(names, d.Name().String())
	}
	for _, d := range n.dynamicDeps {
		names = append(names, d.Name().String())
	}
	return names
}
