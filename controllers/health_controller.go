package controllers

import (
	"context"
	"net/http"
	"time"
)

// HealthController reports service liveness and database reachability
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new health controller
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

type healthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// Index handles GET /health
func (c *HealthController) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if c.db != nil {
		if err := c.db.PingContext(ctx); err != nil {
			renderJSONWithStatus(w, http.StatusServiceUnavailable, healthResponse{
				Status:   "unhealthy",
				Service:  "event-log",
				Database: "unreachable",
			})
			return
		}
	}

	renderJSON(w, healthResponse{
		Status:   "healthy",
		Service:  "event-log",
		Database: "ok",
	})
}
