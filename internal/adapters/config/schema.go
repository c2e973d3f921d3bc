package config

// Forgefile is the on-disk YAML schema of a build configuration.
type Forgefile struct {
	Version  string               `yaml:"version"`
	Settings SettingsDTO          `yaml:"settings"`
	Targets  map[string]TargetDTO `yaml:"targets"`
}

// SettingsDTO holds the global build settings.
type SettingsDTO struct {
	ProcessTimeoutSecs       int `yaml:"processTimeoutSecs"`
	ProcessOutputTimeoutSecs int `yaml:"processOutputTimeoutSecs"`
	Parallelism              int `yaml:"parallelism"`
}

// TargetDTO describes one action target. The map key in Forgefile.Targets is
// the output file the action produces.
type TargetDTO struct {
	Executable          string            `yaml:"executable"`
	Input               []string          `yaml:"input"`
	InputPath           []string          `yaml:"inputPath"`
	InputPattern        []string          `yaml:"inputPattern"`
	InputPathRecurse    *bool             `yaml:"inputPathRecurse"`
	InputExcludePath    []string          `yaml:"inputExcludePath"`
	InputExcludedFiles  []string          `yaml:"inputExcludedFiles"`
	InputExcludePattern []string          `yaml:"inputExcludePattern"`
	Arguments           string            `yaml:"arguments"`
	WorkingDir          string            `yaml:"workingDir"`
	ReturnCode          int               `yaml:"returnCode"`
	Environment         map[string]string `yaml:"environment"`
	AlwaysShowOutput    bool              `yaml:"alwaysShowOutput"`
	UseStdOutAsOutput   bool              `yaml:"useStdOutAsOutput"`
	Always              bool              `yaml:"always"`
	DependsOn           []string          `yaml:"dependsOn"`
}
