package reconcile_test

import (
	"encoding/json"
	"testing"
	"time"

	"sentinel/core/reconcile"
	"sentinel/core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "", reconcile.Path{}.String())
		assert.Equal(t, "port", reconcile.Path{"port"}.String())
		assert.Equal(t, "virtual_server_root.pool.lb_method",
			reconcile.Path{"virtual_server_root", "pool", "lb_method"}.String())
	})

	t.Run("ChildDoesNotShareBacking", func(t *testing.T) {
		parent := reconcile.Path{"virtual_server_root"}
		left := parent.Child("pool")
		right := parent.Child("monitors")

		assert.Equal(t, "virtual_server_root", parent.String())
		assert.Equal(t, "virtual_server_root.pool", left.String())
		assert.Equal(t, "virtual_server_root.monitors", right.String())
	})

	t.Run("MarshalJSON", func(t *testing.T) {
		data, err := json.Marshal(reconcile.Path{"a", "b", "c"})
		require.NoError(t, err)
		assert.Equal(t, `"a.b.c"`, string(data))
	})
}

func TestNewReport(t *testing.T) {
	t.Run("NilDriftsBecomeEmpty", func(t *testing.T) {
		report := reconcile.NewReport(nil, testRunTime)
		require.NotNil(t, report.Drifts)
		assert.Empty(t, report.Drifts)
		assert.False(t, report.DriftDetected)
		assert.Equal(t, 0, report.DriftCount)
	})

	t.Run("SummaryFieldsDerived", func(t *testing.T) {
		drifts := []reconcile.Drift{
			{Path: reconcile.Path{"a"}, Kind: reconcile.DriftMissingKey, Expected: state.Int(1)},
			{Path: reconcile.Path{"b"}, Kind: reconcile.DriftUnexpectedKey, Actual: state.Int(2)},
		}
		report := reconcile.NewReport(drifts, testRunTime)
		assert.True(t, report.DriftDetected)
		assert.Equal(t, 2, report.DriftCount)
	})

	t.Run("TimestampNormalizedToUTC", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		report := reconcile.NewReport(nil, time.Date(2025, 6, 2, 3, 30, 0, 0, est))
		assert.Equal(t, time.UTC, report.GeneratedAt.Location())
		assert.Equal(t, testRunTime, report.GeneratedAt)
	})
}

// The JSON form is the wire contract shared by the HTTP API and the
// telemetry payload, so assert it field by field.
func TestReport_MarshalJSON(t *testing.T) {
	drifts := []reconcile.Drift{
		{
			Path:     reconcile.Path{"virtual_server_root", "virtual_server", "ssl_profile"},
			Kind:     reconcile.DriftValueMismatch,
			Expected: state.String("clientssl_secure"),
			Actual:   state.String("clientssl_legacy"),
		},
		{
			Path:     reconcile.Path{"virtual_server_root", "virtual_server", "monitors"},
			Kind:     reconcile.DriftMissingKey,
			Expected: state.Sequence(state.String("https_head")),
		},
	}
	report := reconcile.NewReport(drifts, testRunTime)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"drifts": [
			{
				"path": "virtual_server_root.virtual_server.ssl_profile",
				"kind": "value_mismatch",
				"expected": "clientssl_secure",
				"actual": "clientssl_legacy"
			},
			{
				"path": "virtual_server_root.virtual_server.monitors",
				"kind": "missing_key",
				"expected": ["https_head"],
				"actual": null
			}
		],
		"drift_detected": true,
		"drift_count": 2,
		"timestamp_utc": "2025-06-02T08:30:00Z"
	}`, string(data))
}
