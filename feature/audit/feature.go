package audit

import (
	"sentinel/core/change"
	"sentinel/core/reconcile"
	"sentinel/core/state"
	"sentinel/core/storage"
	"sentinel/core/telemetry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new audit feature. store may be nil for the file
// backend.
func NewFeature(cfg state.Config, store storage.Client, bucket string, logger *zap.Logger) *Feature {
	desired, actual := BuildSources(cfg, store, bucket)

	svc := NewService(
		desired,
		actual,
		reconcile.NewEngine(cfg.Root),
		telemetry.NewLogSink(logger),
		change.NewSimulatedInitiator(logger),
		cfg.DeviceID,
		logger,
	)
	if cfg.Backend == state.BackendBucket {
		svc.SetCatalog(&Catalog{
			Client: store,
			Bucket: bucket,
			Prefix: catalogPrefix(cfg.DesiredObject),
		})
	}

	return &Feature{service: svc, handler: NewHandler(svc, cfg)}
}

// BuildSources returns the desired and actual document sources for the
// configured backend.
func BuildSources(cfg state.Config, store storage.Client, bucket string) (state.Source, state.Source) {
	if cfg.Backend == state.BackendBucket {
		return &state.BucketSource{Client: store, Bucket: bucket, Object: cfg.DesiredObject},
			&state.BucketSource{Client: store, Bucket: bucket, Object: cfg.ActualObject}
	}
	return state.NewFileSource(cfg.DesiredPath, state.FormatAuto),
		state.NewFileSource(cfg.ActualPath, state.FormatAuto)
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "audit"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
