// Package instance exposes nodes of a shared dom.Tree as script handles.
//
// # Handles
//
// An Instance is a small value pairing a *SharedTree with a node id. It
// owns no node data and never keeps a node alive: every operation looks
// the id up again, under the tree lock, and fails with ErrNodeDestroyed
// once the node has left the tree. Copies of an Instance are
// interchangeable and Equal compares ids only, so two handles to a
// destroyed node are still equal.
//
// # Members
//
// Index and NewIndex implement string keyed member access for a script
// runtime:
//
//   - Name: read/write, must be a string
//   - ClassName: read only
//   - Parent: an Instance or nil; the root reads as nil and setting nil
//     moves the node under the root
//   - anything else reads as the first child with that name and is an
//     ErrInvalidMember error when there is none
//
// FindFirstChild is the forgiving form of child lookup: no match is not an
// error.
//
// # Locking
//
// A SharedTree guards its Store with one mutex. Each operation takes it
// once for its whole duration and never re-enters it, so operations are
// atomic with respect to each other no matter how many handles or
// goroutines share the tree. Code outside this package that touches the
// store must go through SharedTree.Do.
//
// # Related Packages
//
//   - github.com/signadot/remodel/dom - The tree store
//   - github.com/signadot/remodel/luahost - Lua bindings
//   - github.com/signadot/remodel/query - expr bindings
package instance
