// Package chart renders the dashboard line chart as SVG.
package chart

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"casetracker/internal/palette"
	"casetracker/internal/stats"
)

// ErrNoSeries is returned when a view has no status with a countable value.
var ErrNoSeries = errors.New("no series to render")

// Options controls the chart size and x-axis labelling.
type Options struct {
	Width    int
	Height   int
	MaxTicks int
}

// Render writes an SVG line chart of the view: one tick per queue position,
// one line per status, y from 0 to the largest count of the form and center.
func Render(w io.Writer, view *stats.View, colors *palette.Palette, opts Options) error {
	series := buildSeries(view, colors)
	if len(series) == 0 {
		return ErrNoSeries
	}

	yMax := float64(view.MaxCount)
	if yMax <= 0 {
		yMax = 1
	}

	graph := gochart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:  "Case number range",
			Ticks: xTicks(view, opts.MaxTicks),
		},
		YAxis: gochart.YAxis{
			Name:  "Cases",
			Range: &gochart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// buildSeries creates one series per status, placing each row at its index
// so the axis stays categorical. Rows without a count for a status are
// skipped by that status's line.
func buildSeries(view *stats.View, colors *palette.Palette) []gochart.Series {
	var series []gochart.Series
	for _, status := range view.ExistStatus {
		var xs, ys []float64
		for i, row := range view.Rows {
			c, ok := row.Status(status)
			if !ok || !c.Valid {
				continue
			}
			xs = append(xs, float64(i))
			ys = append(ys, float64(c.Value))
		}
		if len(xs) == 0 {
			continue
		}

		color := drawing.ColorFromHex(strings.TrimPrefix(colors.Color(status), "#"))
		series = append(series, gochart.ContinuousSeries{
			Name:    status,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    2,
			},
		})
	}
	return series
}

// xTicks labels every queue position, thinning the labels to at most maxTicks
// plus the last position. go-chart takes the x range from the ticks when they
// are set, so the ticks always span the first and last row, and a single row
// is bracketed by unlabelled ticks.
func xTicks(view *stats.View, maxTicks int) []gochart.Tick {
	n := len(view.Rows)
	if n == 1 {
		return []gochart.Tick{
			{Value: -0.5},
			{Value: 0, Label: view.Rows[0].Day},
			{Value: 0.5},
		}
	}

	step := 1
	if maxTicks > 0 && n > maxTicks {
		step = (n + maxTicks - 1) / maxTicks
	}

	ticks := make([]gochart.Tick, 0, n/step+2)
	for i := 0; i < n; i += step {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: view.Rows[i].Day})
	}
	if n > 0 && (n-1)%step != 0 {
		ticks = append(ticks, gochart.Tick{Value: float64(n - 1), Label: view.Rows[n-1].Day})
	}
	return ticks
}

// Placeholder writes an empty-state SVG carrying message.
func Placeholder(w io.Writer, width, height int, message string) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#ffffff" stroke="#d0d7de"/>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="18" fill="#57606a">%s</text>`+
			`</svg>`,
		width, height, width, height, html.EscapeString(message))
	return err
}
