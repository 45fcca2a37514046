package audit

import (
	"context"
	"sync"

	"sentinel/core/change"
	"sentinel/core/reconcile"
	"sentinel/core/state"
	"sentinel/core/telemetry"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RunResult bundles everything one audit run produced.
type RunResult struct {
	Report reconcile.Report `json:"report"`

	// ChangeRequestID is set when drift was found and a change request
	// was opened for it.
	ChangeRequestID change.RequestID `json:"change_request_id,omitempty"`

	// TelemetryErr and ChangeErr record best-effort integration
	// failures. The comparison outcome stands regardless.
	TelemetryErr error `json:"-"`
	ChangeErr    error `json:"-"`
}

// Service runs drift audits for a single device.
type Service struct {
	desired   state.Source
	actual    state.Source
	engine    *reconcile.Engine
	sink      telemetry.Sink
	initiator change.Initiator
	device    string
	logger    *zap.Logger

	catalog *Catalog

	group singleflight.Group

	mu   sync.RWMutex
	last *RunResult
}

// NewService wires an audit pipeline for device.
func NewService(
	desired, actual state.Source,
	engine *reconcile.Engine,
	sink telemetry.Sink,
	initiator change.Initiator,
	device string,
	logger *zap.Logger,
) *Service {
	return &Service{
		desired:   desired,
		actual:    actual,
		engine:    engine,
		sink:      sink,
		initiator: initiator,
		device:    device,
		logger:    logger,
	}
}

// SetCatalog enables document listing for bucket-backed deployments.
func (s *Service) SetCatalog(c *Catalog) {
	s.catalog = c
}

// Run executes one full audit: load both documents, compare, emit
// telemetry, and open a change request when drift was found. Loading
// failures abort the run; integration failures are recorded on the
// result and logged, but the report is still returned.
func (s *Service) Run(ctx context.Context) (*RunResult, error) {
	desired, err := s.desired.Load(ctx)
	if err != nil {
		return nil, err
	}
	actual, err := s.actual.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := s.engine.Compare(desired, actual)
	result := &RunResult{Report: report}

	if report.DriftDetected {
		s.logger.Warn("Configuration drift detected",
			zap.String("device_id", s.device),
			zap.Int("drift_count", report.DriftCount),
		)
	} else {
		s.logger.Info("Desired and actual states are aligned",
			zap.String("device_id", s.device),
		)
	}

	if err := s.sink.Emit(ctx, telemetry.NewPayload(s.device, report)); err != nil {
		result.TelemetryErr = &telemetry.EmitError{Err: err}
		s.logger.Warn("Telemetry emission failed", zap.Error(result.TelemetryErr))
	}

	if report.DriftDetected {
		id, err := s.initiator.Open(ctx, s.device, report)
		if err != nil {
			result.ChangeErr = &change.RequestError{Err: err}
			s.logger.Error("Change request could not be opened, drift has no approval record",
				zap.Error(result.ChangeErr),
			)
		} else {
			result.ChangeRequestID = id
			s.logger.Info("Change request opened",
				zap.String("change_request_id", string(id)),
				zap.String("device_id", s.device),
			)
		}
	} else {
		s.logger.Info("No drift detected, change request not required")
	}

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	return result, nil
}

// RunShared collapses concurrent audit triggers into a single run whose
// result every caller shares.
func (s *Service) RunShared(ctx context.Context) (*RunResult, error) {
	v, err, _ := s.group.Do("audit", func() (any, error) {
		return s.Run(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*RunResult), nil
}

// Latest returns the most recent completed run, if any.
func (s *Service) Latest() (*RunResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil, false
	}
	return s.last, true
}

// ListPublished returns the object keys of published state documents.
// The second return is false when the deployment has no bucket catalog
// (file backend).
func (s *Service) ListPublished(ctx context.Context) ([]string, bool, error) {
	if s.catalog == nil {
		return nil, false, nil
	}
	keys, err := s.catalog.List(ctx)
	if err != nil {
		return nil, true, err
	}
	return keys, true, nil
}
