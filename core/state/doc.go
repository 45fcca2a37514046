// Package state models configuration documents as ordered trees.
//
// A document is parsed into a tree of Nodes: mappings, sequences and scalars.
// Mapping nodes remember their document key order, which is what lets drift
// reports walk a gold standard in the order the network team wrote it.
//
// # Decoding
//
// Two codecs build Node trees:
//   - YAML (gold standards): a custom yaml.v3 unmarshaler that keeps key
//     order and carries scalar types through resolver tags.
//   - JSON (device snapshots): a token-stream walk over encoding/json, since
//     the stock unmarshal collects objects into unordered maps.
//
// Scalars keep their source literal, so a mismatch report shows values the
// way the document spelled them.
//
// # Sources
//
// The Source interface hides where a document lives. FileSource reads local
// files; BucketSource reads objects published to S3-compatible storage. Both
// reject documents whose top level is not a mapping and report failures as
// *LoadError, which is fatal to an audit run.
//
// # Usage
//
//	src := state.NewFileSource("gold_standard.yaml", state.FormatAuto)
//	node, err := src.Load(ctx)
package state
