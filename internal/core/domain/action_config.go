package domain

// ActionConfig is the externally supplied configuration of an action node.
// It is immutable after dependency resolution.
type ActionConfig struct {
	Executable string
	// Inputs are explicit input files.
	Inputs []string
	// InputPaths are directories whose contents become dynamic dependencies,
	// filtered by the shared pattern and exclude fields below.
	InputPaths           []string
	InputPatterns        []string
	InputPathRecurse     bool
	InputExcludePaths    []string
	InputExcludedFiles   []string
	InputExcludePatterns []string

	// Arguments is the free-form template; %1/%2 tokens expand to inputs
	// and the output name.
	Arguments string
	// WorkingDir of the spawned process; empty inherits the caller's.
	WorkingDir string
	// ExpectedReturnCode is the exit code that counts as success.
	ExpectedReturnCode int
	// Environment overrides the child's environment entirely when non-nil.
	Environment map[string]string

	AlwaysShowOutput  bool
	UseStdOutAsOutput bool
	AlwaysRun         bool

	// DependsOn names other action nodes that must complete first.
	DependsOn []string
}

// BuildFile is a parsed build configuration: the global options plus one
// spec per target, ordered deterministically by the loader.
type BuildFile struct {
	Options Options
	Actions []ActionSpec
}

// ActionSpec pairs a target output name with its action configuration.
type ActionSpec struct {
	Output string
	Config ActionConfig
}
