package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() *WorkspaceNode {
	return &WorkspaceNode{
		Name: "solution",
		Children: []*WorkspaceNode{
			{
				Name: "P1",
				Children: []*WorkspaceNode{
					{Name: "Form1.cs", FilePaths: []string{`C:\s\p1\Form1.cs`, `C:\s\p1\Form1.Designer.cs`}},
					{
						Name: "src",
						Children: []*WorkspaceNode{
							{Name: "util.cpp", FilePaths: []string{`C:\s\p1\src\util.cpp`}},
						},
					},
				},
			},
			{
				Name: "P2",
				Children: []*WorkspaceNode{
					{Name: "util.cpp", FilePaths: []string{`C:\s\p2\util.cpp`}},
				},
			},
		},
	}
}

func TestWorkspaceNodeWalk(t *testing.T) {
	t.Run("document order", func(t *testing.T) {
		var names []string
		complete := sampleTree().Walk(func(n *WorkspaceNode) bool {
			names = append(names, n.Name)
			return true
		})
		assert.True(t, complete)
		assert.Equal(t, []string{"solution", "P1", "Form1.cs", "src", "util.cpp", "P2", "util.cpp"}, names)
	})

	t.Run("stops early", func(t *testing.T) {
		var names []string
		complete := sampleTree().Walk(func(n *WorkspaceNode) bool {
			names = append(names, n.Name)
			return n.Name != "src"
		})
		assert.False(t, complete)
		assert.Equal(t, []string{"solution", "P1", "Form1.cs", "src"}, names)
	})

	t.Run("nil tree", func(t *testing.T) {
		var n *WorkspaceNode
		assert.True(t, n.Walk(func(*WorkspaceNode) bool { return false }))
	})
}

func TestWorkspaceNodeFindFile(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		want   string
		found  bool
	}{
		{name: "first of duplicates", suffix: `\util.cpp`, want: `C:\s\p1\src\util.cpp`, found: true},
		{name: "second owned file", suffix: `Designer.cs`, want: `C:\s\p1\Form1.Designer.cs`, found: true},
		{name: "missing", suffix: `main.cpp`, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sampleTree().FindFile(func(p string) bool { return strings.HasSuffix(p, tt.suffix) })
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
