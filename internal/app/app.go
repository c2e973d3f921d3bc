// Package app implements the application layer for forge.
package app

import (
	"context"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// RunOptions are the per-invocation flags layered over the build file's
// settings.
type RunOptions struct {
	// ConfigPath is the build file to load.
	ConfigPath string
	// Verbose prints the full command line, working directory and expected
	// return code before each build.
	Verbose bool
	// ShowOutput dumps captured process output even for successful builds.
	ShowOutput bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	stamper      ports.Stamper
	telemetry    ports.Telemetry
	newRunner    ports.RunnerFactory
	scheduler    *scheduler.Scheduler
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	stamper ports.Stamper,
	telemetry ports.Telemetry,
	newRunner ports.RunnerFactory,
	sched *scheduler.Scheduler,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		stamper:      stamper,
		telemetry:    telemetry,
		newRunner:    newRunner,
		scheduler:    sched,
	}
}

// Run executes the build process for the specified targets.
func (a *App) Run(ctx context.Context, targets []string, opts RunOptions) error {
	if len(targets) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	file, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	options := file.Options
	options.ShowCommandSummary = true
	if opts.Verbose {
		options.ShowCommandLines = true
	}
	if opts.ShowOutput {
		options.ShowCommandOutput = true
	}

	// A cancelled context flips the abort flag the runners poll, so child
	// processes are killed rather than orphaned.
	abort := &domain.AbortFlags{}
	stop := context.AfterFunc(ctx, func() {
		abort.Main.Store(true)
	})
	defer stop()

	graph, err := a.buildGraph(file, &options, abort)
	if err != nil {
		return err
	}

	defer func() {
		if err := a.telemetry.Close(); err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to close telemetry session"))
		}
	}()

	if err := a.scheduler.Run(ctx, graph, targets, options.Parallelism); err != nil {
		return zerr.Wrap(err, "build execution failed")
	}
	return nil
}
