package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/forge/internal/adapters/fs"
	"go.trai.ch/forge/internal/core/domain"
)

// writeTree lays out a small source tree:
//
//	root/a.c
//	root/b.c
//	root/readme.txt
//	root/sub/c.c
//	root/sub/skip/d.c
func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "skip"), 0o755))
	for _, f := range []string{"a.c", "b.c", "readme.txt", "sub/c.c", "sub/skip/d.c"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte(f), 0o644))
	}
	return root
}

func TestLister_RecursiveWithPattern(t *testing.T) {
	root := writeTree(t)

	files, err := fs.NewLister().Evaluate(domain.ListingSpec{
		Path:     root,
		Recurse:  true,
		Patterns: []string{"*.c"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.c"),
		filepath.Join(root, "b.c"),
		filepath.Join(root, "sub", "c.c"),
		filepath.Join(root, "sub", "skip", "d.c"),
	}, files)
}

func TestLister_NonRecursiveStopsAtRoot(t *testing.T) {
	root := writeTree(t)

	files, err := fs.NewLister().Evaluate(domain.ListingSpec{
		Path:     root,
		Patterns: []string{"*.c"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.c"),
		filepath.Join(root, "b.c"),
	}, files)
}

func TestLister_ExcludePathPrunesSubtree(t *testing.T) {
	root := writeTree(t)

	files, err := fs.NewLister().Evaluate(domain.ListingSpec{
		Path:         root,
		Recurse:      true,
		Patterns:     []string{"*.c"},
		ExcludePaths: []string{filepath.Join(root, "sub", "skip")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.c"),
		filepath.Join(root, "b.c"),
		filepath.Join(root, "sub", "c.c"),
	}, files)
}

func TestLister_ExcludeFilesByBaseName(t *testing.T) {
	root := writeTree(t)

	files, err := fs.NewLister().Evaluate(domain.ListingSpec{
		Path:         root,
		Recurse:      true,
		Patterns:     []string{"*.c"},
		ExcludeFiles: []string{"b.c"},
	})
	require.NoError(t, err)
	assert.NotContains(t, files, filepath.Join(root, "b.c"))
	assert.Contains(t, files, filepath.Join(root, "a.c"))
}

func TestLister_ExcludePatterns(t *testing.T) {
	root := writeTree(t)

	files, err := fs.NewLister().Evaluate(domain.ListingSpec{
		Path:            root,
		Recurse:         true,
		Patterns:        []string{"*"},
		ExcludePatterns: []string{"*.txt"},
	})
	require.NoError(t, err)
	assert.NotContains(t, files, filepath.Join(root, "readme.txt"))
	assert.Contains(t, files, filepath.Join(root, "a.c"))
}

func TestLister_MissingRootIsEmptyNotError(t *testing.T) {
	files, err := fs.NewLister().Evaluate(domain.ListingSpec{
		Path:     filepath.Join(t.TempDir(), "does-not-exist"),
		Recurse:  true,
		Patterns: []string{"*"},
	})
	require.NoError(t, err)
	assert.Empty(t, files)
}
