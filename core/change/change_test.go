package change_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sentinel/core/change"
	"sentinel/core/reconcile"
	"sentinel/core/state"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func driftReport(t *testing.T) reconcile.Report {
	t.Helper()
	drifts := []reconcile.Drift{
		{
			Path:     reconcile.Path{"virtual_server_root", "virtual_server", "ssl_profile"},
			Kind:     reconcile.DriftValueMismatch,
			Expected: state.String("clientssl_secure"),
			Actual:   state.String("clientssl_legacy"),
		},
	}
	return reconcile.NewReport(drifts, time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC))
}

func TestNewRequestPayload(t *testing.T) {
	report := driftReport(t)

	payload := change.NewRequestPayload("f5-bigip-a1", report)

	assert.Equal(t, "F5 config drift detected on f5-bigip-a1", payload.ShortDescription)
	assert.Equal(t, change.CategoryNetwork, payload.Category)
	assert.Equal(t, change.TypeNormal, payload.Type)
	assert.Equal(t, change.PriorityHigh, payload.Priority)
	assert.Equal(t, "f5-bigip-a1", payload.CmdbCI)
	assert.Equal(t, report.Drifts, payload.DriftDetails)
}

func TestRequestPayload_MarshalJSON(t *testing.T) {
	payload := change.NewRequestPayload("f5-bigip-a1", driftReport(t))

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Network", decoded["category"])
	assert.Equal(t, "Normal", decoded["type"])
	assert.Equal(t, "2", decoded["priority"])
	assert.Equal(t, "f5-bigip-a1", decoded["cmdb_ci"])
	assert.Contains(t, decoded, "u_drift_details")
	assert.Contains(t, decoded, "short_description")
}

func TestSimulatedInitiator_Open(t *testing.T) {
	initiator := change.NewSimulatedInitiator(zap.NewNop())

	id, err := initiator.Open(context.Background(), "f5-bigip-a1", driftReport(t))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, parseErr := uuid.Parse(string(id))
	assert.NoError(t, parseErr)
}

func TestRequestError(t *testing.T) {
	inner := assert.AnError
	err := &change.RequestError{Err: inner}

	assert.ErrorContains(t, err, "change request failed")
	assert.ErrorIs(t, err, inner)
}
