// Package views embeds the HTML templates rendered by the server.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v3"

	"casetracker/internal/models"
)

// FS holds the page templates and layouts.
//
//go:embed *.html layouts/*.html
var FS embed.FS

// Layout is the default layout for rendered pages.
const Layout = "layouts/main"

// NewEngine creates the template engine over the embedded templates with the
// helper functions the pages use.
func NewEngine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")
	engine.Reload(reload)
	engine.AddFunc("snapshotDate", models.FormatSnapshotDay)
	engine.AddFunc("rowCount", rowCount)
	return engine
}

// rowCount formats the count of status in a row, or "" when the row has none.
func rowCount(row models.PivotRow, status string) string {
	c, ok := row.Status(status)
	if !ok {
		return ""
	}
	return c.String()
}
