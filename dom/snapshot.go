package dom

import "fmt"

// Snapshot is the value form of a subtree.
type Snapshot struct {
	Name      string      `json:"name" yaml:"name"`
	ClassName string      `json:"class" yaml:"class"`
	Children  []*Snapshot `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot captures the whole tree starting at the root.
func (t *Tree) Snapshot() *Snapshot {
	return t.snapshot(t.Root())
}

// SnapshotAt captures the subtree rooted at id.
func (t *Tree) SnapshotAt(id ID) (*Snapshot, error) {
	n := t.nodes[id]
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t.snapshot(n), nil
}

func (t *Tree) snapshot(n *Node) *Snapshot {
	s := &Snapshot{Name: n.Name, ClassName: n.ClassName}
	for _, cid := range n.children {
		c := t.nodes[cid]
		if c == nil {
			continue
		}
		s.Children = append(s.Children, t.snapshot(c))
	}
	return s
}

// FromSnapshot builds a tree whose root is s.
func FromSnapshot(s *Snapshot) *Tree {
	t := New(s.Name, s.ClassName)
	for _, c := range s.Children {
		t.insertSnapshot(t.root, c)
	}
	return t
}

// InsertSnapshot adds a copy of s under parent and returns the id of the
// copy's top node.
func (t *Tree) InsertSnapshot(parent ID, s *Snapshot) (ID, error) {
	if t.nodes[parent] == nil {
		return ID{}, fmt.Errorf("%w: parent %s", ErrNotFound, parent)
	}
	return t.insertSnapshot(parent, s), nil
}

func (t *Tree) insertSnapshot(parent ID, s *Snapshot) ID {
	// parent was checked by the caller
	id, _ := t.Insert(parent, s.Name, s.ClassName)
	for _, c := range s.Children {
		t.insertSnapshot(id, c)
	}
	return id
}

// Count returns the number of nodes in the snapshot, s included.
func (s *Snapshot) Count() int {
	n := 1
	for _, c := range s.Children {
		n += c.Count()
	}
	return n
}
