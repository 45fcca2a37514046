package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sentinel/core/reconcile"

	"go.uber.org/zap"
)

// EventTypeConfigDrift is the event_type stamped on every audit payload.
// Downstream index routing keys on this value, so it must not change.
const EventTypeConfigDrift = "f5_config_drift"

// Payload is the wire form of one audit outcome. Field names follow the
// telemetry pipeline's schema.
type Payload struct {
	EventType     string            `json:"event_type"`
	DeviceID      string            `json:"device_id"`
	DriftDetected bool              `json:"drift_detected"`
	DriftCount    int               `json:"drift_count"`
	Drifts        []reconcile.Drift `json:"drifts"`
	TimestampUTC  string            `json:"timestamp_utc"`
}

// NewPayload builds the payload for a finished audit of deviceID.
func NewPayload(deviceID string, report reconcile.Report) Payload {
	return Payload{
		EventType:     EventTypeConfigDrift,
		DeviceID:      deviceID,
		DriftDetected: report.DriftDetected,
		DriftCount:    report.DriftCount,
		Drifts:        report.Drifts,
		TimestampUTC:  report.GeneratedAt.Format(time.RFC3339),
	}
}

// Sink delivers audit payloads to a telemetry backend.
type Sink interface {
	Emit(ctx context.Context, payload Payload) error
}

// EmitError wraps a sink failure. Emission is best-effort: callers log
// the error and keep the audit result.
type EmitError struct {
	Err error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("telemetry emit failed: %v", e.Err)
}

func (e *EmitError) Unwrap() error {
	return e.Err
}

// LogSink writes payloads to the process log as single-line JSON, the
// form log forwarders ship to the telemetry index.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink returns a sink that emits through logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit implements Sink.
func (s *LogSink) Emit(_ context.Context, payload Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	s.logger.Info("Telemetry event emitted",
		zap.String("event_type", payload.EventType),
		zap.String("device_id", payload.DeviceID),
		zap.Bool("drift_detected", payload.DriftDetected),
		zap.Int("drift_count", payload.DriftCount),
		zap.ByteString("payload", data),
	)
	return nil
}
