package instance

import (
	"errors"
	"fmt"
	"sync"

	"github.com/signadot/remodel/debug"
	"github.com/signadot/remodel/dom"
)

// Store is what handles need from a tree. The node returned by Get is
// both the read and the write view of the record; it is only touched
// while the SharedTree lock is held.
type Store interface {
	Get(id dom.ID) *dom.Node
	RootID() dom.ID
	SetParent(id, parent dom.ID) error
}

// Editor is a Store that can also create and remove nodes.
type Editor interface {
	Store
	Insert(parent dom.ID, name, className string) (dom.ID, error)
	Destroy(id dom.ID) error
	SnapshotAt(id dom.ID) (*dom.Snapshot, error)
	InsertSnapshot(parent dom.ID, s *dom.Snapshot) (dom.ID, error)
}

var _ Editor = (*dom.Tree)(nil)

// SharedTree is a Store behind a single mutex, shared by all the handles
// into it.
type SharedTree struct {
	mu    sync.Mutex
	store Store
}

func NewSharedTree(store Store) *SharedTree {
	return &SharedTree{store: store}
}

// tracef writes debug traces. It is never called with a tree locked.
var tracef = debug.Logf

func (t *SharedTree) lock(op string, id dom.ID) func() {
	t.mu.Lock()
	return func() {
		t.mu.Unlock()
		if debug.Lock() {
			tracef("locked %s %s\n", op, id)
		}
	}
}

// Do runs f with exclusive access to the store. f must not call methods
// of handles into the same tree.
func (t *SharedTree) Do(f func(s Store) error) error {
	defer t.lock("Do", dom.ID{})()
	return f(t.store)
}

// Root returns a handle to the root node.
func (t *SharedTree) Root() Instance {
	defer t.lock("Root", dom.ID{})()
	return Instance{tree: t, id: t.store.RootID()}
}

// Handle returns a handle to id. The node need not exist.
func (t *SharedTree) Handle(id dom.ID) Instance {
	return Instance{tree: t, id: id}
}

// NewInstance creates a node of the given class, named after the class,
// directly under the root.
func (t *SharedTree) NewInstance(className string) (Instance, error) {
	defer t.lock("NewInstance", dom.ID{})()
	ed, err := t.editor()
	if err != nil {
		return Instance{}, err
	}
	id, err := ed.Insert(ed.RootID(), className, className)
	if err != nil {
		return Instance{}, fmt.Errorf("creating %s: %w", className, err)
	}
	return Instance{tree: t, id: id}, nil
}

func (t *SharedTree) editor() (Editor, error) {
	ed, ok := t.store.(Editor)
	if !ok {
		return nil, fmt.Errorf("%w: store %T cannot create or destroy nodes", errors.ErrUnsupported, t.store)
	}
	return ed, nil
}

// Snapshot captures the whole tree under the lock. The store must be able
// to snapshot itself, as *dom.Tree does.
func (t *SharedTree) Snapshot() (*dom.Snapshot, error) {
	defer t.lock("Snapshot", dom.ID{})()
	sn, ok := t.store.(interface{ Snapshot() *dom.Snapshot })
	if !ok {
		return nil, fmt.Errorf("%w: store %T cannot be snapshotted", errors.ErrUnsupported, t.store)
	}
	return sn.Snapshot(), nil
}
