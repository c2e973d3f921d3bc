// Package config loads the YAML build file into domain configuration.
package config

import (
	"os"
	"runtime"
	"sort"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML build files.
type Loader struct{}

// NewLoader creates a config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the build file at path.
func (l *Loader) Load(path string) (*domain.BuildFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the CLI flag
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read build file")
	}

	var file Forgefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse build file")
	}

	bf := &domain.BuildFile{
		Options: domain.Options{
			ProcessTimeoutSecs:       file.Settings.ProcessTimeoutSecs,
			ProcessOutputTimeoutSecs: file.Settings.ProcessOutputTimeoutSecs,
			Parallelism:              file.Settings.Parallelism,
		},
	}
	if bf.Options.Parallelism <= 0 {
		bf.Options.Parallelism = runtime.NumCPU()
	}

	names := make([]string, 0, len(file.Targets))
	for name := range file.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		target := file.Targets[name]
		cfg, err := targetToConfig(name, target, file.Targets)
		if err != nil {
			return nil, err
		}
		bf.Actions = append(bf.Actions, domain.ActionSpec{
			Output: name,
			Config: cfg,
		})
	}

	return bf, nil
}

func targetToConfig(name string, t TargetDTO, all map[string]TargetDTO) (domain.ActionConfig, error) {
	if t.Executable == "" {
		return domain.ActionConfig{}, zerr.With(
			zerr.New("target is missing an executable"),
			"target", name,
		)
	}
	for _, dep := range t.DependsOn {
		if _, ok := all[dep]; !ok {
			err := zerr.With(zerr.New("target depends on an unknown target"), "target", name)
			err = zerr.With(err, "dependsOn", dep)
			return domain.ActionConfig{}, err
		}
	}

	patterns := t.InputPattern
	if len(patterns) == 0 {
		patterns = []string{"*"}
	}
	recurse := true
	if t.InputPathRecurse != nil {
		recurse = *t.InputPathRecurse
	}

	return domain.ActionConfig{
		Executable:           t.Executable,
		Inputs:               t.Input,
		InputPaths:           t.InputPath,
		InputPatterns:        patterns,
		InputPathRecurse:     recurse,
		InputExcludePaths:    t.InputExcludePath,
		InputExcludedFiles:   t.InputExcludedFiles,
		InputExcludePatterns: t.InputExcludePattern,
		Arguments:            t.Arguments,
		WorkingDir:           t.WorkingDir,
		ExpectedReturnCode:   t.ReturnCode,
		Environment:          t.Environment,
		AlwaysShowOutput:     t.AlwaysShowOutput,
		UseStdOutAsOutput:    t.UseStdOutAsOutput,
		AlwaysRun:            t.Always,
		DependsOn:            t.DependsOn,
	}, nil
}
