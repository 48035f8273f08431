package handlers

import (
	"github.com/gofiber/fiber/v3"

	"casetracker/internal/feed"
	"casetracker/internal/models"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	store *feed.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store *feed.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Healthz reports liveness with the feed state. A failed feed still answers
// 200: the process keeps serving the empty dashboard.
func (h *HealthHandler) Healthz(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status: "ok",
		Feed:   h.store.Load().State,
	})
}
