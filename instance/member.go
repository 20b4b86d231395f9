package instance

import (
	"fmt"

	"github.com/signadot/remodel/debug"
	"github.com/signadot/remodel/dom"
)

// Value is a member value exchanged with a script runtime. Index only
// produces string, nil or Instance; NewIndex accepts any value and
// rejects what the member does not take.
type Value = any

const (
	MemberName      = "Name"
	MemberClassName = "ClassName"
	MemberParent    = "Parent"
)

// TypeName names the shape of v as it appears in error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case Instance, *Instance:
		return "Instance"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// traceIndex logs *msg. It is deferred ahead of the lock so that it runs
// after the unlock.
func traceIndex(msg *string) {
	if *msg != "" {
		tracef("%s\n", *msg)
	}
}

func invalidMember(key string) error {
	return fmt.Errorf("%w: '%s' is not a valid member of Instance", ErrInvalidMember, key)
}

// Index reads the member key.
func (i Instance) Index(key string) (Value, error) {
	if i.IsZero() {
		return nil, errZero
	}
	var trace string
	defer traceIndex(&trace)
	defer i.tree.lock("Index", i.id)()
	s := i.tree.store
	n, err := i.resolve(s)
	if err != nil {
		return nil, err
	}
	if debug.Index() {
		trace = fmt.Sprintf("index %s[%q]", n.Name, key)
	}
	switch key {
	case MemberName:
		return n.Name, nil
	case MemberClassName:
		return n.ClassName, nil
	case MemberParent:
		pid, ok := n.ParentID()
		if !ok || pid == s.RootID() {
			return nil, nil
		}
		return i.at(pid), nil
	}
	id, ok := findChild(s, n, key)
	if !ok {
		return nil, invalidMember(key)
	}
	return i.at(id), nil
}

// NewIndex writes v to the member key.
func (i Instance) NewIndex(key string, v Value) error {
	if i.IsZero() {
		return errZero
	}
	var trace string
	defer traceIndex(&trace)
	defer i.tree.lock("NewIndex", i.id)()
	s := i.tree.store
	n, err := i.resolve(s)
	if err != nil {
		return err
	}
	if debug.Index() {
		trace = fmt.Sprintf("newindex %s[%q] = %s", n.Name, key, TypeName(v))
	}
	switch key {
	case MemberName:
		name, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: 'Name' must be a string, got %s", ErrTypeMismatch, TypeName(v))
		}
		n.Name = name
		return nil
	case MemberClassName:
		return fmt.Errorf("%w: 'ClassName' is read-only", ErrReadOnlyMember)
	case MemberParent:
		parent, err := i.parentTarget(s, v)
		if err != nil {
			return err
		}
		if err := s.SetParent(i.id, parent); err != nil {
			return fmt.Errorf("setting Parent of %q: %w", n.Name, err)
		}
		return nil
	}
	return invalidMember(key)
}

// parentTarget maps a Parent value to the id to reparent under. It must be
// called with the tree locked.
func (i Instance) parentTarget(s Store, v Value) (dom.ID, error) {
	var p Instance
	switch x := v.(type) {
	case nil:
		return s.RootID(), nil
	case Instance:
		p = x
	case *Instance:
		if x == nil {
			return s.RootID(), nil
		}
		p = *x
	default:
		return dom.ID{}, fmt.Errorf("%w: 'Parent' must be an Instance or nil, got %s", ErrTypeMismatch, TypeName(v))
	}
	if p.tree != i.tree {
		return dom.ID{}, fmt.Errorf("%w: 'Parent' belongs to another tree", ErrTypeMismatch)
	}
	if _, err := p.resolve(s); err != nil {
		return dom.ID{}, fmt.Errorf("new Parent: %w", err)
	}
	return p.id, nil
}
