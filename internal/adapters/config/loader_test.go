package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/core/domain"
)

func writeBuildFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_FullTarget(t *testing.T) {
	path := writeBuildFile(t, `
version: "1"
settings:
  processTimeoutSecs: 120
  processOutputTimeoutSecs: 30
  parallelism: 4
targets:
  out.o:
    executable: compiler
    input: [main.c]
    inputPath: [src]
    inputPattern: ["*.c"]
    inputPathRecurse: false
    inputExcludePath: [src/gen]
    inputExcludedFiles: [legacy.c]
    inputExcludePattern: ["*.tmp"]
    arguments: '%1 -o %2'
    workingDir: build
    returnCode: 1
    environment:
      CC: gcc
    alwaysShowOutput: true
    useStdOutAsOutput: true
    always: true
`)

	file, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120, file.Options.ProcessTimeoutSecs)
	assert.Equal(t, 30, file.Options.ProcessOutputTimeoutSecs)
	assert.Equal(t, 4, file.Options.Parallelism)

	require.Len(t, file.Actions, 1)
	spec := file.Actions[0]
	assert.Equal(t, "out.o", spec.Output)

	cfg := spec.Config
	assert.Equal(t, "compiler", cfg.Executable)
	assert.Equal(t, []string{"main.c"}, cfg.Inputs)
	assert.Equal(t, []string{"src"}, cfg.InputPaths)
	assert.Equal(t, []string{"*.c"}, cfg.InputPatterns)
	assert.False(t, cfg.InputPathRecurse)
	assert.Equal(t, []string{"src/gen"}, cfg.InputExcludePaths)
	assert.Equal(t, []string{"legacy.c"}, cfg.InputExcludedFiles)
	assert.Equal(t, []string{"*.tmp"}, cfg.InputExcludePatterns)
	assert.Equal(t, "%1 -o %2", cfg.Arguments)
	assert.Equal(t, "build", cfg.WorkingDir)
	assert.Equal(t, 1, cfg.ExpectedReturnCode)
	assert.Equal(t, map[string]string{"CC": "gcc"}, cfg.Environment)
	assert.True(t, cfg.AlwaysShowOutput)
	assert.True(t, cfg.UseStdOutAsOutput)
	assert.True(t, cfg.AlwaysRun)
}

func TestLoader_Defaults(t *testing.T) {
	path := writeBuildFile(t, `
targets:
  out:
    executable: tool
`)

	file, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Positive(t, file.Options.Parallelism)

	cfg := file.Actions[0].Config
	assert.Equal(t, []string{"*"}, cfg.InputPatterns)
	assert.True(t, cfg.InputPathRecurse)
	assert.Zero(t, cfg.ExpectedReturnCode)
}

func TestLoader_TargetsAreSortedByName(t *testing.T) {
	path := writeBuildFile(t, `
targets:
  zeta: {executable: tool}
  alpha: {executable: tool}
  mid: {executable: tool}
`)

	file, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	names := make([]string, len(file.Actions))
	for i, a := range file.Actions {
		names[i] = a.Output
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestLoader_DependsOn(t *testing.T) {
	path := writeBuildFile(t, `
targets:
  lib:
    executable: tool
  app:
    executable: tool
    dependsOn: [lib]
`)

	file, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	var app domain.ActionConfig
	for _, a := range file.Actions {
		if a.Output == "app" {
			app = a.Config
		}
	}
	assert.Equal(t, []string{"lib"}, app.DependsOn)
}

func TestLoader_UnknownDependencyFails(t *testing.T) {
	path := writeBuildFile(t, `
targets:
  app:
    executable: tool
    dependsOn: [ghost]
`)

	_, err := config.NewLoader().Load(path)
	assert.Error(t, err)
}

func TestLoader_MissingExecutableFails(t *testing.T) {
	path := writeBuildFile(t, `
targets:
  app:
    arguments: "-v"
`)

	_, err := config.NewLoader().Load(path)
	assert.Error(t, err)
}

func TestLoader_MissingFileFails(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoader_MalformedYAMLFails(t *testing.T) {
	path := writeBuildFile(t, "targets: [not a map")
	_, err := config.NewLoader().Load(path)
	assert.Error(t, err)
}
