package core

// Tree is a per-invocation arena of Nodes. Nodes reference their parent by
// index, so ownership runs strictly from the arena to the nodes.
// A Tree is not safe for concurrent use.
type Tree[S comparable, A any] struct {
	nodes []Node[S, A]
}

// NewTree returns an arena holding only the root node for initial.
func NewTree[S comparable, A any](initial S) *Tree[S, A] {
	t := &Tree[S, A]{nodes: make([]Node[S, A], 0, 64)}
	t.nodes = append(t.nodes, Node[S, A]{State: initial, Parent: NoParent})

	return t
}

// Root returns the ID of the root node.
func (t *Tree[S, A]) Root() NodeID { return 0 }

// Len returns the number of nodes currently stored.
func (t *Tree[S, A]) Len() int { return len(t.nodes) }

// Node returns the node stored at id.
// It panics if id is out of range, like a slice index.
func (t *Tree[S, A]) Node(id NodeID) Node[S, A] { return t.nodes[id] }

// add appends n and returns its ID.
func (t *Tree[S, A]) add(n Node[S, A]) NodeID {
	t.nodes = append(t.nodes, n)

	return NodeID(len(t.nodes) - 1)
}

// Truncate drops every node with ID >= n. Depth-first searches use it to
// release finished subtrees; IDs of dropped nodes are reused afterwards.
// The root is never dropped.
func (t *Tree[S, A]) Truncate(n int) {
	if n < 1 {
		n = 1
	}
	if n < len(t.nodes) {
		clear(t.nodes[n:])
		t.nodes = t.nodes[:n]
	}
}

// Actions walks the parent chain from id back to the root and returns the
// actions in root→id order. The root contributes no action, so Actions of
// the root is an empty, non-nil slice.
func (t *Tree[S, A]) Actions(id NodeID) []A {
	n := t.nodes[id]
	path := make([]A, 0, n.Depth)
	for cur := id; t.nodes[cur].Parent != NoParent; cur = t.nodes[cur].Parent {
		path = append(path, t.nodes[cur].Action)
	}
	// reverse to get root → id
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
