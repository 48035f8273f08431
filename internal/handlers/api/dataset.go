package api

import (
	"github.com/gofiber/fiber/v3"

	"casetracker/internal/config"
	"casetracker/internal/feed"
	"casetracker/internal/handlers"
	"casetracker/internal/metrics"
	"casetracker/internal/models"
	"casetracker/internal/stats"
)

// DatasetHandler serves the dashboard data as JSON.
type DatasetHandler struct {
	store *feed.Store
	cfg   *config.Config
}

// NewDatasetHandler creates a new API dataset handler.
func NewDatasetHandler(store *feed.Store, cfg *config.Config) *DatasetHandler {
	return &DatasetHandler{store: store, cfg: cfg}
}

// Dataset returns the built view for the requested selection.
func (h *DatasetHandler) Dataset(c fiber.Ctx) error {
	sel, err := handlers.SelectionFromQuery(c, h.cfg.DefaultSelection())
	if err != nil {
		return selectionError(c, err)
	}

	view := stats.Build(h.store.Load().Entries, sel)
	metrics.RecordDashboardView(sel.Form, sel.Center)
	return jsonSuccess(c, view)
}

// Options returns the selector values: every form type and center of the
// feed, and the snapshots available for the requested form and center.
func (h *DatasetHandler) Options(c fiber.Ctx) error {
	sel, err := handlers.SelectionFromQuery(c, h.cfg.DefaultSelection())
	if err != nil {
		return selectionError(c, err)
	}

	view := stats.Filter(h.store.Load().Entries, sel)
	resp := models.OptionsResponse{
		FormTypes:   view.FormTypes,
		CenterNames: view.CenterNames,
		Snapshots:   make([]models.SnapshotInfo, 0, len(view.AvailableUpdateDays)),
	}
	for _, day := range view.AvailableUpdateDays {
		resp.Snapshots = append(resp.Snapshots, models.NewSnapshotInfo(day))
	}
	if view.LatestUpdateDay != nil {
		latest := models.NewSnapshotInfo(*view.LatestUpdateDay)
		resp.Latest = &latest
	}
	return jsonSuccess(c, resp)
}

// Feed reports the state of the loaded feed.
func (h *DatasetHandler) Feed(c fiber.Ctx) error {
	snap := h.store.Load()
	resp := models.FeedStatusResponse{
		State:      snap.State,
		Source:     snap.Source,
		Entries:    len(snap.Entries),
		Duplicates: snap.Report.Duplicates,
		Malformed:  snap.Report.Malformed,
		Error:      snap.ErrorMessage(),
	}
	if !snap.FetchedAt.IsZero() {
		fetched := snap.FetchedAt
		resp.FetchedAt = &fetched
	}
	return jsonSuccess(c, resp)
}

// selectionError answers an invalid selection with the JSON envelope.
func selectionError(c fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return jsonError(c, e.Code, e.Message)
	}
	return jsonError(c, fiber.StatusBadRequest, err.Error())
}
