package api

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"

	"casetracker/internal/models"
)

func TestEnvelopes(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c fiber.Ctx) error {
		return jsonSuccess(c, models.HealthResponse{Status: "ok", Feed: models.FeedOK})
	})
	app.Get("/fail", func(c fiber.Ctx) error {
		return jsonError(c, fiber.StatusBadRequest, "updateDay must be an integer")
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/ok", http.StatusOK, `{"status":"ok","data":{"status":"ok","feed":"ok"}}`},
		{"/fail", http.StatusBadRequest, `{"status":"error","error":"updateDay must be an integer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.wantBody {
				t.Errorf("body = %s, want %s", body, tt.wantBody)
			}
			if !json.Valid(body) {
				t.Error("body is not valid JSON")
			}
		})
	}
}

func TestSelectionError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return selectionError(c, fiber.NewError(fiber.StatusBadRequest, "invalid center"))
	})

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var env ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest || env.Status != statusError || env.Error != "invalid center" {
		t.Errorf("status %d, envelope %+v", resp.StatusCode, env)
	}
}
