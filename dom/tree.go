package dom

import "fmt"

type Tree struct {
	nodes map[ID]*Node
	root  ID
}

// New creates a tree holding only a root with the given name and class.
func New(rootName, rootClass string) *Tree {
	root := &Node{
		Name:      rootName,
		ClassName: rootClass,
		id:        NewID(),
	}
	return &Tree{
		nodes: map[ID]*Node{root.id: root},
		root:  root.id,
	}
}

func (t *Tree) RootID() ID {
	return t.root
}

func (t *Tree) Root() *Node {
	return t.nodes[t.root]
}

// Get returns the node with the given id, or nil if it is not in the tree.
func (t *Tree) Get(id ID) *Node {
	return t.nodes[id]
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Insert creates a node under parent and returns its id.
func (t *Tree) Insert(parent ID, name, className string) (ID, error) {
	p := t.nodes[parent]
	if p == nil {
		return ID{}, fmt.Errorf("%w: parent %s", ErrNotFound, parent)
	}
	n := &Node{
		Name:      name,
		ClassName: className,
		id:        NewID(),
		parent:    parent,
		hasParent: true,
	}
	t.nodes[n.id] = n
	p.children = append(p.children, n.id)
	return n.id, nil
}

// SetParent moves id under parent. Moving a node under its current parent
// is a no-op. The root cannot be moved and a node cannot be moved under
// itself or one of its descendants.
func (t *Tree) SetParent(id, parent ID) error {
	n := t.nodes[id]
	if n == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	p := t.nodes[parent]
	if p == nil {
		return fmt.Errorf("%w: parent %s", ErrNotFound, parent)
	}
	if id == t.root {
		return fmt.Errorf("%w: cannot reparent", ErrRoot)
	}
	if n.hasParent && n.parent == parent {
		return nil
	}
	if t.IsAncestor(id, parent) {
		return fmt.Errorf("%w: %q under %q", ErrCycle, n.Name, p.Name)
	}
	if old := t.nodes[n.parent]; n.hasParent && old != nil {
		old.removeChild(id)
	}
	n.parent = parent
	n.hasParent = true
	p.children = append(p.children, id)
	return nil
}

// IsAncestor reports whether a is b or one of b's ancestors.
func (t *Tree) IsAncestor(a, b ID) bool {
	for cur := t.nodes[b]; cur != nil; {
		if cur.id == a {
			return true
		}
		if !cur.hasParent {
			return false
		}
		cur = t.nodes[cur.parent]
	}
	return false
}

// Destroy removes id and its whole subtree from the tree.
func (t *Tree) Destroy(id ID) error {
	n := t.nodes[id]
	if n == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if id == t.root {
		return fmt.Errorf("%w: cannot destroy", ErrRoot)
	}
	if p := t.nodes[n.parent]; p != nil {
		p.removeChild(id)
	}
	t.drop(n)
	return nil
}

func (t *Tree) drop(n *Node) {
	for _, cid := range n.children {
		if c := t.nodes[cid]; c != nil {
			t.drop(c)
		}
	}
	delete(t.nodes, n.id)
}
