// Package format names the file formats instance trees are read from and
// written in.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	f = format.FromPath("place.yaml")
//
// The tree format is an indented outline meant for people and is only
// written, never read.
//
// # Related Packages
//
//   - github.com/signadot/remodel/parse - Decode snapshots
//   - github.com/signadot/remodel/encode - Encode snapshots
package format
