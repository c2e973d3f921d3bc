// Package fs provides the file system adapters: directory-listing
// evaluation and the hash-based staleness collaborator.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Lister = (*Lister)(nil)

// Lister evaluates directory listing specs against the working tree.
type Lister struct{}

// NewLister creates a new Lister.
func NewLister() *Lister {
	return &Lister{}
}

// Evaluate walks the spec's root and returns the matching files in walk
// order. A missing root yields an empty listing, not an error: the
// directory may legitimately not exist yet.
func (l *Lister) Evaluate(spec domain.ListingSpec) ([]string, error) {
	root := filepath.Clean(spec.Path)

	files := []string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if !spec.Recurse || excludedPath(spec.ExcludePaths, path) {
				return filepath.SkipDir
			}
			return nil
		}

		if matches(spec, path, d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", root)
	}
	return files, nil
}

// matches applies the include patterns and the per-file excludes.
func matches(spec domain.ListingSpec, path, base string) bool {
	if len(spec.Patterns) > 0 && !matchAny(spec.Patterns, base) {
		return false
	}
	if matchAny(spec.ExcludePatterns, base) {
		return false
	}
	for _, f := range spec.ExcludeFiles {
		if base == f || path == f {
			return false
		}
	}
	return !excludedPath(spec.ExcludePaths, path)
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// excludedPath reports whether path is at or below any excluded path.
func excludedPath(excludes []string, path string) bool {
	for _, ex := range excludes {
		ex = filepath.Clean(ex)
		if path == ex || strings.HasPrefix(path, ex+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
