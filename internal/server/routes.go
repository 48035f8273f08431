package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"casetracker/internal/feed"
	"casetracker/internal/handlers"
	"casetracker/internal/handlers/api"
	"casetracker/internal/palette"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(store *feed.Store, colors *palette.Palette) {
	dashboardHandler := handlers.NewDashboardHandler(store, s.Cfg, colors)
	healthHandler := handlers.NewHealthHandler(store)
	datasetHandler := api.NewDatasetHandler(store, s.Cfg)

	// Dashboard
	s.App.Get("/", dashboardHandler.Index)
	s.App.Get("/chart.svg", dashboardHandler.Chart)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/dataset", datasetHandler.Dataset)
	apiGroup.Get("/options", datasetHandler.Options)
	apiGroup.Get("/feed", datasetHandler.Feed)

	// Operations
	s.App.Get("/healthz", healthHandler.Healthz)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
