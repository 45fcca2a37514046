// Package reconcile compares a desired state document against an actual
// state snapshot and reports every divergence as a typed drift record.
//
// # Comparison model
//
// Both inputs are state.Node trees, usually decoded from a gold-standard
// YAML file and a device snapshot in JSON. The engine walks them together:
//
//  1. Two mappings recurse key by key. A key only in the desired document
//     becomes a missing_key drift; a key only on the device becomes an
//     unexpected_key drift.
//
//  2. Two scalars compare by type and canonical value, so the YAML 443
//     and the JSON 443 agree while the string "443" does not.
//
//  3. Any other pairing (kind mismatch, or two sequences) is judged as a
//     whole subtree: deep-equal sides record nothing, anything else is a
//     single value_mismatch carrying both sides.
//
// # Ordering
//
// Drift order is deterministic. Within a mapping, desired-document keys
// come first in document order, followed by device-only keys in the order
// the device reported them. Two runs over the same documents produce
// identical reports apart from the timestamp.
//
// # Usage Example
//
//	engine := reconcile.NewEngine("virtual_server_root")
//	report := engine.Compare(desired, actual)
//	if report.DriftDetected {
//	    for _, d := range report.Drifts {
//	        fmt.Println(d.Path, d.Kind)
//	    }
//	}
package reconcile
