// Package rpc serves one shared instance tree over JSON-RPC 2.0.
//
// Every connection sees the same tree, so a script run by one client is
// visible to the queries of another. Lua scripts get a fresh interpreter
// per request.
//
// # Methods
//
//   - run: {"name": "...", "source": "..."} runs Lua, returns {"output": "..."}
//   - query: {"source": "..."} evaluates an expression, returns {"value": ...}
//   - snapshot: returns the tree as {"name", "class", "children"}
package rpc
