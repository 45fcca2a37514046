package change

import (
	"context"
	"encoding/json"
	"fmt"

	"sentinel/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Endpoint is the ServiceNow table API path change requests are posted to.
const Endpoint = "/api/now/table/change_request"

// Change request classification for drift remediation tickets.
const (
	CategoryNetwork = "Network"
	TypeNormal      = "Normal"
	PriorityHigh    = "2"
)

// RequestID identifies an opened change request (the sys_id in ServiceNow).
type RequestID string

// RequestPayload is the body posted to the ServiceNow table API.
type RequestPayload struct {
	ShortDescription string            `json:"short_description"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	Type             string            `json:"type"`
	Priority         string            `json:"priority"`
	CmdbCI           string            `json:"cmdb_ci"`
	DriftDetails     []reconcile.Drift `json:"u_drift_details"`
}

// NewRequestPayload builds the change request body for drift found on
// deviceID. The caller is responsible for only opening requests when the
// report actually contains drift.
func NewRequestPayload(deviceID string, report reconcile.Report) RequestPayload {
	return RequestPayload{
		ShortDescription: fmt.Sprintf("F5 config drift detected on %s", deviceID),
		Description:      "Sentinel found drift; approval required before remediation.",
		Category:         CategoryNetwork,
		Type:             TypeNormal,
		Priority:         PriorityHigh,
		CmdbCI:           deviceID,
		DriftDetails:     report.Drifts,
	}
}

// Initiator opens change requests for human approval. Remediation is
// never automatic; every fix waits on an approved request.
type Initiator interface {
	Open(ctx context.Context, deviceID string, report reconcile.Report) (RequestID, error)
}

// RequestError wraps an initiator failure. The audit result stands even
// when no request could be opened; callers log and surface the error.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("change request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// SimulatedInitiator stands in for the ServiceNow integration in
// environments without credentials. It logs the exact payload a real
// POST would carry and fabricates a sys_id.
type SimulatedInitiator struct {
	logger *zap.Logger
}

// NewSimulatedInitiator returns an initiator that only logs.
func NewSimulatedInitiator(logger *zap.Logger) *SimulatedInitiator {
	return &SimulatedInitiator{logger: logger}
}

// Open implements Initiator.
func (i *SimulatedInitiator) Open(_ context.Context, deviceID string, report reconcile.Report) (RequestID, error) {
	payload := NewRequestPayload(deviceID, report)
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	id := RequestID(uuid.NewString())
	i.logger.Warn("Simulated ServiceNow POST",
		zap.String("endpoint", Endpoint),
		zap.String("sys_id", string(id)),
		zap.String("cmdb_ci", deviceID),
		zap.ByteString("payload", data),
	)
	return id, nil
}
