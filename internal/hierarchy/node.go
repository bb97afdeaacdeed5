// Package hierarchy implements the name-resolution core of the server:
// an in-memory snapshot of the ClickUp container tree (workspace → spaces →
// folders → lists → views), a process-wide cache over it with coalesced
// population-on-miss, and the resolvers that turn a human-readable name at
// any level into a stable identifier.
//
// Design principles:
//   - Nodes and trees are immutable once built; a changed entity is a new
//     node in a freshly built tree, never an in-place edit.
//   - The cache is the only shared mutable state, and all access to it goes
//     through the Cache type — no ad hoc shared maps elsewhere.
//   - Resolution never guesses: zero matches and multiple matches are
//     distinct, explicit error values the tool layer must surface.
package hierarchy

// Kind identifies a level of the ClickUp container hierarchy.
type Kind string

const (
	KindWorkspace Kind = "workspace"
	KindSpace     Kind = "space"
	KindFolder    Kind = "folder"
	KindList      Kind = "list"
	KindView      Kind = "view"
)

// Valid reports whether k is one of the known hierarchy levels.
func (k Kind) Valid() bool {
	switch k {
	case KindWorkspace, KindSpace, KindFolder, KindList, KindView:
		return true
	}
	return false
}

// plural returns the child-set segment used in scope keys ("spaces",
// "folders", ...).
func (k Kind) plural() string {
	return string(k) + "s"
}

// Node is one entity in the hierarchy. It carries only what identifies the
// entity — id, name, kind, and parent — never entity-specific CRUD fields.
// Nodes are value types and are never mutated after construction.
type Node struct {
	ID       string
	Name     string
	Kind     Kind
	ParentID string
}

// Tree is an immutable snapshot of one fetched scope: nodes indexed by id
// plus child ids indexed by parent id, both preserving the order the remote
// system returned. A Tree is built wholesale by NewTree and never patched
// incrementally, so it can be shared between goroutines without locking.
type Tree struct {
	nodes    map[string]Node
	children map[string][]string
	order    []string
}

// NewTree builds a Tree from a flat fetch result. Node order is preserved.
func NewTree(nodes []Node) *Tree {
	t := &Tree{
		nodes:    make(map[string]Node, len(nodes)),
		children: make(map[string][]string),
		order:    make([]string, 0, len(nodes)),
	}
	for _, n := range nodes {
		if _, dup := t.nodes[n.ID]; dup {
			continue
		}
		t.nodes[n.ID] = n
		t.order = append(t.order, n.ID)
		if n.ParentID != "" {
			t.children[n.ParentID] = append(t.children[n.ParentID], n.ID)
		}
	}
	return t
}

// Node returns the node with the given id, if present.
func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Children returns the nodes whose ParentID equals parentID, in fetch order.
func (t *Tree) Children(parentID string) []Node {
	ids := t.children[parentID]
	if len(ids) == 0 {
		return nil
	}
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.nodes[id])
	}
	return out
}

// All returns every node in the tree, in fetch order.
func (t *Tree) All() []Node {
	out := make([]Node, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.nodes[id])
	}
	return out
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.order) }
