// Package parse decodes instance tree snapshots from yaml or json.
//
// A snapshot file is one node with a name, a class and optional children:
//
//	name: game
//	class: DataModel
//	children:
//	  - name: Widgets
//	    class: Folder
//
// # Related Packages
//
//   - github.com/signadot/remodel/dom - Snapshots and trees
//   - github.com/signadot/remodel/encode - The reverse direction
package parse
