// Package scheduler drives one build pass over the action nodes of the
// graph: it refreshes directory listings, resolves dynamic dependencies,
// and builds stale targets across a bounded worker pool.
package scheduler

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// TargetStatus represents the status of one target within a build pass.
type TargetStatus string

const (
	// StatusPending indicates the target is waiting to be scheduled.
	StatusPending TargetStatus = "Pending"
	// StatusRunning indicates the target is currently building.
	StatusRunning TargetStatus = "Running"
	// StatusUpToDate indicates the target was skipped because its output is current.
	StatusUpToDate TargetStatus = "UpToDate"
	// StatusCompleted indicates the target built successfully.
	StatusCompleted TargetStatus = "Completed"
	// StatusFailed indicates the target failed to build.
	StatusFailed TargetStatus = "Failed"
)

// Scheduler manages the execution of action nodes in dependency order.
type Scheduler struct {
	lister    ports.Lister
	logger    ports.Logger
	telemetry ports.Telemetry

	mu     sync.RWMutex
	status map[domain.InternedString]TargetStatus
}

// NewScheduler creates a scheduler.
func NewScheduler(lister ports.Lister, logger ports.Logger, telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{
		lister:    lister,
		logger:    logger,
		telemetry: telemetry,
		status:    make(map[domain.InternedString]TargetStatus),
	}
}

// Status returns the recorded status of a target.
func (s *Scheduler) Status(name domain.InternedString) TargetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[name]
}

func (s *Scheduler) setStatus(name domain.InternedString, status TargetStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

// Run builds the requested targets, and everything they depend on, with at
// most parallelism concurrent builds. Directory listings are refreshed once
// at the start of the pass; the dynamic dependency set of each node is
// re-derived on the scheduling goroutine right before dispatch, so graph
// mutation never races with the worker pool.
func (s *Scheduler) Run(ctx context.Context, g *domain.Graph, targets []string, parallelism int) error {
	if parallelism < 1 {
		parallelism = 1
	}
	if err := g.Validate(); err != nil {
		return err
	}

	selected, err := selectTargets(g, targets)
	if err != nil {
		return err
	}
	if err := s.refreshListings(g); err != nil {
		return err
	}

	for name := range selected {
		s.setStatus(name, StatusPending)
	}

	state := s.newRunState(ctx, g, selected, parallelism)
	for !state.isDone() {
		if err := state.schedule(); err != nil {
			state.errs = errors.Join(state.errs, err)
			break
		}
		if state.isDone() {
			break
		}
		if state.ctx.Err() != nil {
			if state.active == 0 {
				return errors.Join(state.errs, state.ctx.Err())
			}
			// Done is already closed; selecting on it again would spin.
			state.handleResult(<-state.resultsCh)
			continue
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	// Let in-flight builds finish before returning.
	for state.active > 0 {
		state.handleResult(<-state.resultsCh)
	}

	if state.ctx.Err() != nil {
		state.errs = errors.Join(state.errs, state.ctx.Err())
	}
	if state.errs == nil {
		s.logger.Info("build completed")
	}
	return state.errs
}

// selectTargets resolves the requested names and their transitive dependsOn
// closure into the set of nodes this pass will build.
func selectTargets(g *domain.Graph, targets []string) (map[domain.InternedString]domain.Buildable, error) {
	if len(targets) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	selected := make(map[domain.InternedString]domain.Buildable)
	var include func(name domain.InternedString) error
	include = func(name domain.InternedString) error {
		if _, ok := selected[name]; ok {
			return nil
		}
		b, ok := g.FindNode(name.String()).(domain.Buildable)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "failed to select target"),
				"target", name.String())
		}
		selected[name] = b
		for _, dep := range b.DependsOn() {
			if err := include(dep); err != nil {
				return err
			}
		}
		return nil
	}

	for _, t := range targets {
		if err := include(domain.NewInternedString(t)); err != nil {
			return nil, err
		}
	}
	return selected, nil
}

// refreshListings re-evaluates every directory listing in the graph once
// per pass, before any parallel building starts. Consumers treat the
// results as read-only afterwards.
func (s *Scheduler) refreshListings(g *domain.Graph) error {
	for n := range g.Nodes() {
		listing, ok := n.(*domain.DirectoryListNode)
		if !ok {
			continue
		}
		files, err := s.lister.Evaluate(listing.Spec())
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to evaluate directory listing"),
				"path", listing.Spec().Path)
		}
		listing.SetFiles(files)
	}
	return nil
}

type result struct {
	target domain.InternedString
	err    error
}

type runState struct {
	s           *Scheduler
	g           *domain.Graph
	ctx         context.Context
	parallelism int

	nodes     map[domain.InternedString]domain.Buildable
	inDegree  map[domain.InternedString]int
	ready     []domain.InternedString
	active    int
	resultsCh chan result
	errs      error
}

func (s *Scheduler) newRunState(
	ctx context.Context,
	g *domain.Graph,
	selected map[domain.InternedString]domain.Buildable,
	parallelism int,
) *runState {
	inDegree := make(map[domain.InternedString]int, len(selected))
	for name, b := range selected {
		degree := 0
		for _, dep := range b.DependsOn() {
			if _, ok := selected[dep]; ok {
				degree++
			}
		}
		inDegree[name] = degree
	}

	var ready []domain.InternedString
	for name, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, name)
		}
	}

	return &runState{
		s:           s,
		g:           g,
		ctx:         ctx,
		parallelism: parallelism,
		nodes:       selected,
		inDegree:    inDegree,
		ready:       ready,
		resultsCh:   make(chan result, parallelism),
	}
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() error {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]
		node := state.nodes[name]

		// Dynamic dependencies mutate the graph; resolve them here, on the
		// scheduling goroutine, before handing the node to a worker.
		if err := node.DoDynamicDependencies(state.g); err != nil {
			state.s.setStatus(name, StatusFailed)
			return err
		}

		state.active++
		state.s.setStatus(name, StatusRunning)

		go func(b domain.Buildable) {
			state.resultsCh <- result{target: b.Name(), err: state.s.buildNode(state.ctx, b)}
		}(node)
	}
	return nil
}

// buildNode runs the staleness check and, when stale, one build attempt.
func (s *Scheduler) buildNode(ctx context.Context, b domain.Buildable) error {
	if !b.NeedsRebuild() {
		s.setStatus(b.Name(), StatusUpToDate)
		return nil
	}

	vertex := s.telemetry.Record(ctx, b.Name().String())
	res := b.DoBuild(ctx)
	if res != domain.BuildOK {
		err := zerr.With(zerr.Wrap(domain.ErrBuildExecutionFailed, "failed to build target"),
			"target", b.Name().String())
		vertex.Done(err)
		return err
	}
	vertex.Done(nil)
	return nil
}

func (state *runState) handleResult(res result) {
	state.active--
	if res.err != nil {
		state.errs = errors.Join(state.errs, res.err)
		state.s.setStatus(res.target, StatusFailed)
		return
	}

	if state.s.Status(res.target) != StatusUpToDate {
		state.s.setStatus(res.target, StatusCompleted)
	}
	for _, dep := range state.g.Dependents(res.target) {
		if _, ok := state.nodes[dep]; !ok {
			continue
		}
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}
