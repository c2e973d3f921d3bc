package domain

import "sort"

// FormatEnvironment renders environment overrides as a deterministic
// KEY=VALUE block for the spawned process. A nil or empty map yields nil,
// meaning the child inherits the parent environment.
func FormatEnvironment(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	block := make([]string, 0, len(keys))
	for _, k := range keys {
		block = append(block, k+"="+env[k])
	}
	return block
}
