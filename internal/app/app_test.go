//go:build !windows

package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/forge/internal/adapters/proc"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/scheduler"
)

type appFixture struct {
	app     *app.App
	loader  *mocks.MockConfigLoader
	stamper *mocks.MockStamper
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	stamper := mocks.NewMockStamper(ctrl)
	lister := mocks.NewMockLister(ctrl)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Output(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	noop := telemetry.NewNoOp()
	sched := scheduler.NewScheduler(lister, logger, noop)

	return &appFixture{
		app:     app.New(loader, logger, stamper, noop, proc.New, sched),
		loader:  loader,
		stamper: stamper,
	}
}

func buildFile(actions ...domain.ActionSpec) *domain.BuildFile {
	return &domain.BuildFile{
		Options: domain.Options{Parallelism: 2},
		Actions: actions,
	}
}

func TestApp_RunBuildsTarget(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load("forge.yaml").Return(buildFile(domain.ActionSpec{
		Output: "out",
		Config: domain.ActionConfig{
			Executable: "/bin/sh",
			Arguments:  "-c true",
		},
	}), nil)
	f.stamper.EXPECT().NeedsRebuild("out", gomock.Any()).Return(true)
	f.stamper.EXPECT().RecordStamp("out", gomock.Any()).Return(nil)

	err := f.app.Run(context.Background(), []string{"out"}, app.RunOptions{ConfigPath: "forge.yaml"})
	assert.NoError(t, err)
}

func TestApp_RunSkipsCurrentTarget(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load("forge.yaml").Return(buildFile(domain.ActionSpec{
		Output: "out",
		Config: domain.ActionConfig{
			Executable: "/bin/sh",
			Arguments:  "-c true",
		},
	}), nil)
	f.stamper.EXPECT().NeedsRebuild("out", gomock.Any()).Return(false)

	err := f.app.Run(context.Background(), []string{"out"}, app.RunOptions{ConfigPath: "forge.yaml"})
	assert.NoError(t, err)
}

func TestApp_RunFailingTarget(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load("forge.yaml").Return(buildFile(domain.ActionSpec{
		Output: "out",
		Config: domain.ActionConfig{
			Executable: "/bin/sh",
			Arguments:  `-c "exit 9"`,
		},
	}), nil)
	f.stamper.EXPECT().NeedsRebuild("out", gomock.Any()).Return(true)

	err := f.app.Run(context.Background(), []string{"out"}, app.RunOptions{ConfigPath: "forge.yaml"})
	assert.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
}

func TestApp_RunNoTargets(t *testing.T) {
	f := newAppFixture(t)

	err := f.app.Run(context.Background(), nil, app.RunOptions{ConfigPath: "forge.yaml"})
	assert.ErrorIs(t, err, domain.ErrNoTargetsSpecified)
}

func TestApp_RunLoaderFailure(t *testing.T) {
	f := newAppFixture(t)
	f.loader.EXPECT().Load("broken.yaml").Return(nil, assert.AnError)

	err := f.app.Run(context.Background(), []string{"out"}, app.RunOptions{ConfigPath: "broken.yaml"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestApp_RunUnknownTarget(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load("forge.yaml").Return(buildFile(domain.ActionSpec{
		Output: "out",
		Config: domain.ActionConfig{
			Executable: "/bin/sh",
			Arguments:  "-c true",
		},
	}), nil)

	err := f.app.Run(context.Background(), []string{"ghost"}, app.RunOptions{ConfigPath: "forge.yaml"})
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestApp_RunDuplicateOutputFails(t *testing.T) {
	f := newAppFixture(t)

	spec := domain.ActionSpec{
		Output: "out",
		Config: domain.ActionConfig{Executable: "/bin/sh"},
	}
	f.loader.EXPECT().Load("forge.yaml").Return(buildFile(spec, spec), nil)

	err := f.app.Run(context.Background(), []string{"out"}, app.RunOptions{ConfigPath: "forge.yaml"})
	require.ErrorIs(t, err, domain.ErrNodeAlreadyExists)
}
