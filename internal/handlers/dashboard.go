package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"casetracker/internal/chart"
	"casetracker/internal/config"
	"casetracker/internal/feed"
	"casetracker/internal/metrics"
	"casetracker/internal/models"
	"casetracker/internal/palette"
	"casetracker/internal/stats"
)

// DashboardHandler renders the dashboard page and its chart.
type DashboardHandler struct {
	store  *feed.Store
	cfg    *config.Config
	colors *palette.Palette
	chart  chart.Options
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(store *feed.Store, cfg *config.Config, colors *palette.Palette) *DashboardHandler {
	c := cfg.File.GetChart()
	return &DashboardHandler{
		store:  store,
		cfg:    cfg,
		colors: colors,
		chart:  chart.Options{Width: c.Width, Height: c.Height, MaxTicks: c.MaxTicks},
	}
}

// Slider describes the snapshot slider: one step per update day between the
// oldest and newest snapshot, with a mark on each day that has data.
type Slider struct {
	Min   int
	Max   int
	Value int
	Marks []int
}

func newSlider(view *stats.View) *Slider {
	days := view.AvailableUpdateDays
	if len(days) == 0 || view.EffectiveUpdateDay == nil {
		return nil
	}
	s := &Slider{
		Min:   days[0],
		Max:   days[len(days)-1],
		Value: *view.EffectiveUpdateDay,
		Marks: days,
	}
	// A pinned snapshot outside the data range still shows its position.
	s.Min = min(s.Min, s.Value)
	s.Max = max(s.Max, s.Value)
	return s
}

// Index renders the dashboard for the requested selection.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	sel, err := SelectionFromQuery(c, h.cfg.DefaultSelection())
	if err != nil {
		return err
	}

	snap := h.store.Load()
	view := stats.Build(snap.Entries, sel)
	metrics.RecordDashboardView(sel.Form, sel.Center)

	colors := make(map[string]string, len(view.ExistStatus))
	for _, status := range view.ExistStatus {
		colors[status] = h.colors.Color(status)
	}

	return c.Render("index", MergeBranding(fiber.Map{
		"Title":    sel.Form + " at " + sel.Center,
		"Feed":     snap,
		"View":     view,
		"Slider":   newSlider(view),
		"Colors":   colors,
		"ChartURL": ChartURL(sel),
	}, h.cfg))
}

// Chart renders the SVG chart for the requested selection. Views without
// plottable data get a placeholder image rather than an error.
func (h *DashboardHandler) Chart(c fiber.Ctx) error {
	sel, err := SelectionFromQuery(c, h.cfg.DefaultSelection())
	if err != nil {
		return err
	}

	snap := h.store.Load()
	view := stats.Build(snap.Entries, sel)

	var buf bytes.Buffer
	err = chart.Render(&buf, view, h.colors, h.chart)
	if errors.Is(err, chart.ErrNoSeries) {
		buf.Reset()
		err = chart.Placeholder(&buf, h.chart.Width, h.chart.Height, placeholderMessage(snap, sel))
	}
	if err != nil {
		return fmt.Errorf("chart for %s/%s: %w", sel.Form, sel.Center, err)
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(buf.Bytes())
}

func placeholderMessage(snap *feed.Snapshot, sel models.Selection) string {
	switch {
	case snap.Failed():
		return "Data unavailable"
	case !snap.Loaded():
		return "Loading case data"
	default:
		return "No data for " + sel.Form + " at " + sel.Center
	}
}

// ChartURL returns the chart image path for a selection.
func ChartURL(sel models.Selection) string {
	q := url.Values{}
	q.Set("form", sel.Form)
	q.Set("center", sel.Center)
	if sel.UpdateDay != nil {
		q.Set("updateDay", strconv.Itoa(*sel.UpdateDay))
	}
	return "/chart.svg?" + q.Encode()
}
