package dom

import "slices"

// Node is the record the tree keeps for one instance.
//
// Name may be changed freely through the pointer returned by Tree.Get.
// ClassName is set at creation and is only changed by the tree owner.
// Parent and children are maintained by the Tree.
type Node struct {
	Name      string
	ClassName string

	id        ID
	parent    ID
	hasParent bool
	children  []ID
}

func (n *Node) ID() ID {
	return n.id
}

// ParentID returns the id of the parent, false for the root.
func (n *Node) ParentID() (ID, bool) {
	return n.parent, n.hasParent
}

// ChildIDs returns a copy of the node's child ids in insertion order.
func (n *Node) ChildIDs() []ID {
	return slices.Clone(n.children)
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

func (n *Node) removeChild(id ID) {
	i := slices.Index(n.children, id)
	if i < 0 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
}
