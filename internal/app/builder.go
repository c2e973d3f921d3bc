package app

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/exec"
	"go.trai.ch/zerr"
)

// buildGraph turns the loaded build file into a dependency graph: one action
// node per target, then a second pass resolving each node's static
// dependencies so listing nodes are shared across actions.
func (a *App) buildGraph(file *domain.BuildFile, options *domain.Options, abort *domain.AbortFlags) (*domain.Graph, error) {
	g := domain.NewGraph()
	deps := exec.Deps{
		Logger:    a.logger,
		NewRunner: a.newRunner,
		Stamper:   a.stamper,
		Options:   options,
		Abort:     abort,
	}

	nodes := make([]*exec.Node, 0, len(file.Actions))
	for _, spec := range file.Actions {
		node := exec.New(spec.Output, spec.Config, deps)
		if err := g.AddNode(node); err != nil {
			return nil, zerr.Wrap(err, "failed to add target to graph")
		}
		nodes = append(nodes, node)
	}

	for _, node := range nodes {
		if err := node.Initialize(g); err != nil {
			return nil, zerr.Wrap(err, "failed to initialize target")
		}
	}

	return g, nil
}
