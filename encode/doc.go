// Package encode writes instance tree snapshots.
//
// # Usage
//
//	err := encode.Encode(tree.Snapshot(), os.Stdout)
//	err = encode.Encode(snap, w, encode.EncodeFormat(format.JSONFormat))
//	err = encode.Encode(snap, w, encode.EncodeFormat(format.TreeFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/remodel/parse - Decode snapshots
//   - github.com/signadot/remodel/format - Format names
package encode
