package entity

// WorkspaceNode is one node of an IDE project tree: the solution, a project or a project item.
// Trees are built per query from live automation state and never persisted.
type WorkspaceNode struct {
	Name     string
	Children []*WorkspaceNode
	// FilePaths are the physical files directly owned by this node, in host order.
	FilePaths []string
}

// Walk visits n and its descendants depth-first in document order.
// It stops as soon as visit returns false and reports whether the walk ran to completion.
func (n *WorkspaceNode) Walk(visit func(*WorkspaceNode) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// FindFile returns the first owned file path accepted by match.
// A node's own files are checked before its children.
func (n *WorkspaceNode) FindFile(match func(path string) bool) (string, bool) {
	var found string
	n.Walk(func(node *WorkspaceNode) bool {
		for _, p := range node.FilePaths {
			if match(p) {
				found = p
				return false
			}
		}
		return true
	})
	return found, found != ""
}
