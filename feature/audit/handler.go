package audit

import (
	"sentinel/core/logger"
	"sentinel/core/state"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for drift audits.
type Handler struct {
	service *Service
	cfg     state.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg state.Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Post("/run", h.HandleRun)
	group.Get("/latest", h.HandleLatest)
	group.Get("/config", h.HandleConfig)
	group.Get("/documents", h.HandleDocuments)
}

// HandleRun triggers a full audit of the configured device. Concurrent
// requests share one underlying run.
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Audit run triggered")

	result, err := h.service.RunShared(c.Context())
	if err != nil {
		l.Error("Audit run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runResponse(result))
}

// HandleLatest returns the most recent completed audit.
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	result, ok := h.service.Latest()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no audit has completed"})
	}
	return c.JSON(runResponse(result))
}

// HandleConfig reports which documents the audit compares. Storage
// credentials never appear here.
func (h *Handler) HandleConfig(c *fiber.Ctx) error {
	resp := fiber.Map{
		"device_id": h.cfg.DeviceID,
		"root":      h.cfg.Root,
		"backend":   h.cfg.Backend,
	}
	if h.cfg.Backend == state.BackendBucket {
		resp["desired"] = h.cfg.DesiredObject
		resp["actual"] = h.cfg.ActualObject
	} else {
		resp["desired"] = h.cfg.DesiredPath
		resp["actual"] = h.cfg.ActualPath
	}
	return c.JSON(resp)
}

// HandleDocuments lists the state documents published to the bucket.
func (h *Handler) HandleDocuments(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	docs, ok, err := h.service.ListPublished(c.Context())
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document listing requires the bucket backend",
		})
	}
	if err != nil {
		l.Error("Document listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"documents": docs,
		"count":     len(docs),
	})
}

func runResponse(result *RunResult) fiber.Map {
	resp := fiber.Map{
		"status": "completed",
		"report": result.Report,
	}
	if result.ChangeRequestID != "" {
		resp["change_request_id"] = result.ChangeRequestID
	}
	if result.TelemetryErr != nil {
		resp["telemetry_error"] = result.TelemetryErr.Error()
	}
	if result.ChangeErr != nil {
		resp["change_error"] = result.ChangeErr.Error()
	}
	return resp
}
