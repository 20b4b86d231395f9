// Package luahost exposes instance handles to Lua scripts run with
// github.com/yuin/gopher-lua.
//
// # Instances in Lua
//
// An instance.Instance is pushed as a userdata of type "Instance" whose
// metatable provides:
//
//   - __index: the methods FindFirstChild, GetChildren, GetFullName,
//     Destroy, ClearAllChildren and Clone, then the members Name,
//     ClassName, Parent and children by name
//   - __newindex: writes to Name and Parent
//   - __tostring: the instance name
//   - __eq: same node
//
// Errors raised by handles are Lua errors and can be caught with pcall.
//
// # Usage
//
//	rt := luahost.New(tree)
//	defer rt.Close()
//	err := rt.DoString(ctx, "edit", `root.Widgets.Button1.Parent = nil`)
//
// A Runtime wraps one *lua.LState and is not safe for concurrent use.
// Many runtimes may share one *instance.SharedTree.
package luahost
