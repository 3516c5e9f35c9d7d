package controllers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/the-Alberich/code-test-ba/models"
	"github.com/the-Alberich/code-test-ba/services"
)

// renderJSON writes body as JSON with a 200 status
func renderJSON(w http.ResponseWriter, body interface{}) {
	renderJSONWithStatus(w, http.StatusOK, body)
}

// renderJSONWithStatus writes body as JSON with the given status code
func renderJSONWithStatus(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// renderError writes an error body with the given status code
func renderError(w http.ResponseWriter, statusCode int, message string) {
	renderJSONWithStatus(w, statusCode, models.ErrorResponse{Error: message})
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Controllers holds all controller instances
type Controllers struct {
	Logs   *LogController
	Health *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, db Pinger, logger *slog.Logger) *Controllers {
	return &Controllers{
		Logs:   NewLogController(services, logger),
		Health: NewHealthController(db),
	}
}
