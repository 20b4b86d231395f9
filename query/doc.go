// Package query evaluates expr-lang expressions against an instance tree.
//
// The expression environment has one variable, root, the root instance,
// and these functions:
//
//	child(node, name)       first child named name, or nil
//	children(node)          all children
//	get(node, key)          member read, as instance.Instance.Index
//	set(node, key, value)   member write, returns node
//	name(node)              the node's name
//	fullname(node)          dotted path below the root
//	same(a, b)              whether a and b are the same node
//
// For example
//
//	map(filter(children(root), {get(#, "ClassName") == "Folder"}), {name(#)})
//
// lists the names of the folders directly under the root.
package query
