// Package dom provides the instance tree that scripts operate on.
//
// # Overview
//
// A Tree holds every Node keyed by a stable ID. Each node has a Name, a
// ClassName, a parent and an ordered list of children. Exactly one node,
// the root, has no parent.
//
// A Tree does no locking of its own. Callers that share a Tree between
// goroutines or between script handles wrap it, see
// github.com/signadot/remodel/instance.
//
// # Snapshots
//
// Snapshot is the plain recursive value form of a tree (or subtree). It is
// what gets loaded from and written to files:
//
//	t := dom.FromSnapshot(&dom.Snapshot{
//	    Name: "game", ClassName: "DataModel",
//	    Children: []*dom.Snapshot{{Name: "Widgets", ClassName: "Folder"}},
//	})
//	snap := t.Snapshot()
//
// Node IDs are not part of a snapshot; they are allocated fresh on load.
//
// # Related Packages
//
//   - github.com/signadot/remodel/instance - Script-facing handles
//   - github.com/signadot/remodel/parse - Decode snapshots
//   - github.com/signadot/remodel/encode - Encode snapshots
package dom
