package handlers

import (
	"github.com/gin-gonic/gin"

	"pizza-api/internal/config"
)

// DiagnosticsHandler reports store connectivity and configuration for
// operational visibility. It never mutates state and never fails the
// request.
type DiagnosticsHandler struct {
	store DocumentStore
	cfg   *config.Config
}

// NewDiagnosticsHandler creates a diagnostics handler.
func NewDiagnosticsHandler(store DocumentStore, cfg *config.Config) *DiagnosticsHandler {
	return &DiagnosticsHandler{store: store, cfg: cfg}
}

type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Test handles GET /test. Every failure mode is folded into status text
// inside a 200 response.
func (h *DiagnosticsHandler) Test(c *gin.Context) {
	resp := diagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      configured(h.cfg.DatabaseURL),
		DatabaseName:     configured(h.cfg.DatabaseName),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	d := h.store.Describe(c.Request.Context())
	resp.Database = d.Status
	if d.Connected {
		resp.ConnectionStatus = "connected"
	}
	if d.Collections != nil {
		resp.Collections = d.Collections
	}

	c.JSON(200, resp)
}

func configured(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}
