package instance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/remodel/dom"
)

// Instance is a handle to a node of a SharedTree.
type Instance struct {
	tree *SharedTree
	id   dom.ID
}

func (i Instance) ID() dom.ID {
	return i.id
}

func (i Instance) Tree() *SharedTree {
	return i.tree
}

// IsZero reports whether i is the zero Instance, which refers to no tree.
func (i Instance) IsZero() bool {
	return i.tree == nil
}

var errZero = fmt.Errorf("%w: zero Instance", ErrNodeDestroyed)

// Equal reports whether i and o refer to the same node. It does not look
// at the tree.
func (i Instance) Equal(o Instance) bool {
	return i.id == o.id
}

func (i Instance) at(id dom.ID) Instance {
	return Instance{tree: i.tree, id: id}
}

// resolve must be called with the tree locked.
func (i Instance) resolve(s Store) (*dom.Node, error) {
	n := s.Get(i.id)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ErrNodeDestroyed, i.id)
	}
	return n, nil
}

// findChild must be called with the tree locked. Child ids which no
// longer resolve are skipped.
func findChild(s Store, n *dom.Node, name string) (dom.ID, bool) {
	for _, cid := range n.ChildIDs() {
		c := s.Get(cid)
		if c == nil {
			continue
		}
		if c.Name == name {
			return cid, true
		}
	}
	return dom.ID{}, false
}

// FindFirstChild returns the first child named name. ok is false when
// there is no such child.
func (i Instance) FindFirstChild(name string) (child Instance, ok bool, err error) {
	if i.IsZero() {
		return Instance{}, false, errZero
	}
	defer i.tree.lock("FindFirstChild", i.id)()
	n, err := i.resolve(i.tree.store)
	if err != nil {
		return Instance{}, false, err
	}
	id, ok := findChild(i.tree.store, n, name)
	if !ok {
		return Instance{}, false, nil
	}
	return i.at(id), true, nil
}

// GetChildren returns a handle for every child id recorded on the node.
func (i Instance) GetChildren() ([]Instance, error) {
	if i.IsZero() {
		return nil, errZero
	}
	defer i.tree.lock("GetChildren", i.id)()
	n, err := i.resolve(i.tree.store)
	if err != nil {
		return nil, err
	}
	ids := n.ChildIDs()
	res := make([]Instance, len(ids))
	for j, id := range ids {
		res[j] = i.at(id)
	}
	return res, nil
}

// ToString returns the node's name.
func (i Instance) ToString() (string, error) {
	if i.IsZero() {
		return "", errZero
	}
	defer i.tree.lock("ToString", i.id)()
	n, err := i.resolve(i.tree.store)
	if err != nil {
		return "", err
	}
	return n.Name, nil
}

// GetFullName returns the names from just below the root down to the
// node, joined by dots.
func (i Instance) GetFullName() (string, error) {
	if i.IsZero() {
		return "", errZero
	}
	defer i.tree.lock("GetFullName", i.id)()
	s := i.tree.store
	n, err := i.resolve(s)
	if err != nil {
		return "", err
	}
	var names []string
	root := s.RootID()
	for cur := n; cur != nil && cur.ID() != root; {
		names = append(names, cur.Name)
		pid, ok := cur.ParentID()
		if !ok {
			break
		}
		cur = s.Get(pid)
	}
	slices.Reverse(names)
	return strings.Join(names, "."), nil
}

// Destroy removes the node and its descendants from the tree. Every
// handle to them is left dangling.
func (i Instance) Destroy() error {
	if i.IsZero() {
		return errZero
	}
	defer i.tree.lock("Destroy", i.id)()
	ed, err := i.tree.editor()
	if err != nil {
		return err
	}
	n, err := i.resolve(ed)
	if err != nil {
		return err
	}
	if err := ed.Destroy(i.id); err != nil {
		return fmt.Errorf("destroying %q: %w", n.Name, err)
	}
	return nil
}

// ClearAllChildren destroys every child of the node.
func (i Instance) ClearAllChildren() error {
	if i.IsZero() {
		return errZero
	}
	defer i.tree.lock("ClearAllChildren", i.id)()
	ed, err := i.tree.editor()
	if err != nil {
		return err
	}
	n, err := i.resolve(ed)
	if err != nil {
		return err
	}
	for _, cid := range n.ChildIDs() {
		if ed.Get(cid) == nil {
			continue
		}
		if err := ed.Destroy(cid); err != nil {
			return fmt.Errorf("clearing children of %q: %w", n.Name, err)
		}
	}
	return nil
}

// Clone copies the node and its descendants. The copy is placed directly
// under the root, like a node from NewInstance.
func (i Instance) Clone() (Instance, error) {
	if i.IsZero() {
		return Instance{}, errZero
	}
	defer i.tree.lock("Clone", i.id)()
	ed, err := i.tree.editor()
	if err != nil {
		return Instance{}, err
	}
	n, err := i.resolve(ed)
	if err != nil {
		return Instance{}, err
	}
	s, err := ed.SnapshotAt(i.id)
	if err != nil {
		return Instance{}, err
	}
	id, err := ed.InsertSnapshot(ed.RootID(), s)
	if err != nil {
		return Instance{}, fmt.Errorf("cloning %q: %w", n.Name, err)
	}
	return i.at(id), nil
}
