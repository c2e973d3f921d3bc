package exec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/engine/exec"
)

func newNode(t *testing.T, g *domain.Graph, output string, cfg domain.ActionConfig) *exec.Node {
	t.Helper()
	n := exec.New(output, cfg, exec.Deps{})
	require.NoError(t, g.AddNode(n))
	require.NoError(t, n.Initialize(g))
	return n
}

func commandLine(n *exec.Node) string {
	var b strings.Builder
	n.BuildCommandLine(&b)
	return b.String()
}

func TestBuildCommandLine_InputAndOutputTokens(t *testing.T) {
	g := domain.NewGraph()
	n := newNode(t, g, "out.o", domain.ActionConfig{
		Executable: "compiler",
		Inputs:     []string{"a.c", "b.c"},
		Arguments:  `/I:%1 /O:"%2"`,
	})

	assert.Equal(t, `/I:a.c /I:b.c /O:"out.o" `, commandLine(n))
}

func TestBuildCommandLine_QuotedInputToken(t *testing.T) {
	g := domain.NewGraph()
	n := newNode(t, g, "out", domain.ActionConfig{
		Executable: "tool",
		Inputs:     []string{"a a.c", "b.c"},
		Arguments:  `--in="%1" done`,
	})

	assert.Equal(t, `--in="a a.c" --in="b.c" done `, commandLine(n))
}

func TestBuildCommandLine_OutputToken(t *testing.T) {
	g := domain.NewGraph()
	n := newNode(t, g, "result.bin", domain.ActionConfig{
		Executable: "tool",
		Arguments:  "-o %2",
	})

	assert.Equal(t, "-o result.bin ", commandLine(n))
}

func TestBuildCommandLine_LiteralTokensPassThrough(t *testing.T) {
	g := domain.NewGraph()
	n := newNode(t, g, "out", domain.ActionConfig{
		Executable: "tool",
		Arguments:  "-v --flag=value",
	})

	assert.Equal(t, "-v --flag=value ", commandLine(n))
}

func TestBuildCommandLine_EmptyTemplate(t *testing.T) {
	g := domain.NewGraph()
	n := newNode(t, g, "out", domain.ActionConfig{
		Executable: "tool",
	})

	assert.Empty(t, commandLine(n))
}

func TestBuildCommandLine_ExpandsDirectoryListings(t *testing.T) {
	g := domain.NewGraph()
	n := newNode(t, g, "out.o", domain.ActionConfig{
		Executable:       "compiler",
		Inputs:           []string{"main.c"},
		InputPaths:       []string{"src"},
		InputPatterns:    []string{"*.c"},
		InputPathRecurse: true,
		Arguments:        "%1 -o %2",
	})

	setListingFiles(t, g, []string{"src/a.c", "src/b.c"})

	assert.Equal(t, "main.c src/a.c src/b.c -o out.o ", commandLine(n))
}

func TestBuildCommandLine_EmptyInputListYieldsNothing(t *testing.T) {
	g := domain.NewGraph()
	n := newNode(t, g, "out", domain.ActionConfig{
		Executable: "tool",
		Arguments:  "%1",
	})

	assert.Equal(t, " ", commandLine(n))
}

// setListingFiles finds the single directory-listing node in the graph and
// fixes its contents, standing in for a lister pass.
func setListingFiles(t *testing.T, g *domain.Graph, files []string) {
	t.Helper()
	for n := range g.Nodes() {
		if l, ok := n.(*domain.DirectoryListNode); ok {
			l.SetFiles(files)
			return
		}
	}
	t.Fatal("graph has no directory listing node")
}
