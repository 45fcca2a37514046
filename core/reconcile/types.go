package reconcile

import (
	"encoding/json"
	"strings"
	"time"

	"sentinel/core/state"
)

// Path locates a node in a state document as the chain of mapping keys
// from the audit root down.
type Path []string

// String renders the path in dotted form, e.g. "virtual_server_root.pool.lb_method".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Child returns a new path extended by one segment. The receiver is never
// mutated, so sibling branches can share a prefix safely.
func (p Path) Child(segment string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, segment)
}

// MarshalJSON encodes the path in dotted form, matching how operators
// address config nodes in tickets and dashboards.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// DriftKind classifies a single divergence between desired and actual state.
type DriftKind string

const (
	// DriftMissingKey marks a key the desired document requires but the
	// device does not have.
	DriftMissingKey DriftKind = "missing_key"

	// DriftUnexpectedKey marks a key found on the device that the desired
	// document does not mention.
	DriftUnexpectedKey DriftKind = "unexpected_key"

	// DriftValueMismatch marks a key present on both sides whose values
	// disagree.
	DriftValueMismatch DriftKind = "value_mismatch"
)

// Drift represents a single recorded divergence between desired and
// actual state.
type Drift struct {
	// Path addresses the divergent node from the audit root.
	Path Path `json:"path"`

	// Kind classifies the divergence.
	Kind DriftKind `json:"kind"`

	// Expected is the desired-side value. Nil for unexpected keys.
	Expected *state.Node `json:"expected"`

	// Actual is the device-side value. Nil for missing keys.
	Actual *state.Node `json:"actual"`
}

// Report is the outcome of one comparison run.
type Report struct {
	// Drifts lists every divergence in deterministic document order.
	// Never nil; an aligned device yields an empty slice.
	Drifts []Drift `json:"drifts"`

	// DriftDetected is true when Drifts is non-empty.
	DriftDetected bool `json:"drift_detected"`

	// DriftCount is len(Drifts), carried explicitly for consumers that
	// only read the summary.
	DriftCount int `json:"drift_count"`

	// GeneratedAt is the UTC time the comparison ran.
	GeneratedAt time.Time `json:"timestamp_utc"`
}

// NewReport derives the summary fields from the drift list. A nil slice
// becomes an empty one so the JSON form always carries an array.
func NewReport(drifts []Drift, at time.Time) Report {
	if drifts == nil {
		drifts = []Drift{}
	}
	return Report{
		Drifts:        drifts,
		DriftDetected: len(drifts) > 0,
		DriftCount:    len(drifts),
		GeneratedAt:   at.UTC(),
	}
}
