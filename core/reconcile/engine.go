package reconcile

import (
	"time"

	"sentinel/core/state"
)

// Clock supplies report timestamps. Tests swap in a fixed clock so
// report output is deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Engine compares a desired state document against an actual state
// snapshot and records every divergence as a typed drift.
type Engine struct {
	// Root is prepended to every drift path so records name the audited
	// subsystem, e.g. "virtual_server_root". Empty means paths start at
	// the documents' own top-level keys.
	Root string

	// Clock stamps reports. Nil falls back to the system clock.
	Clock Clock
}

// NewEngine returns an engine rooted at root, using the system clock.
func NewEngine(root string) *Engine {
	return &Engine{Root: root, Clock: SystemClock{}}
}

// Compare walks both documents together and returns a report listing
// every drift. Comparing a document against itself always yields an
// empty report.
func (e *Engine) Compare(desired, actual *state.Node) Report {
	var base Path
	if e.Root != "" {
		base = Path{e.Root}
	}

	drifts := compareNodes(desired, actual, base, nil)

	clock := e.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return NewReport(drifts, clock.Now())
}

// compareNodes appends the drifts between desired and actual at path.
//
// Two mappings recurse per key: desired keys first in document order,
// then actual-only keys in the order the device reported them. Two
// scalars compare by type and canonical value. Any other pairing (kind
// mismatch, or two sequences) is judged as a whole: either the subtrees
// are deep-equal and nothing is recorded, or a single value_mismatch
// carries both sides.
func compareNodes(desired, actual *state.Node, path Path, drifts []Drift) []Drift {
	switch {
	case desired.Kind == state.KindMapping && actual.Kind == state.KindMapping:
		for _, key := range desired.Keys {
			childPath := path.Child(key)
			want := desired.Children[key]
			have, ok := actual.Children[key]
			if !ok {
				drifts = append(drifts, Drift{Path: childPath, Kind: DriftMissingKey, Expected: want})
				continue
			}
			drifts = compareNodes(want, have, childPath, drifts)
		}
		for _, key := range actual.Keys {
			if _, ok := desired.Children[key]; ok {
				continue
			}
			drifts = append(drifts, Drift{Path: path.Child(key), Kind: DriftUnexpectedKey, Actual: actual.Children[key]})
		}
		return drifts

	case desired.Kind == state.KindScalar && actual.Kind == state.KindScalar:
		if !desired.Scalar.Equal(actual.Scalar) {
			drifts = append(drifts, Drift{Path: path, Kind: DriftValueMismatch, Expected: desired, Actual: actual})
		}
		return drifts

	default:
		if !desired.Equal(actual) {
			drifts = append(drifts, Drift{Path: path, Kind: DriftValueMismatch, Expected: desired, Actual: actual})
		}
		return drifts
	}
}
