package handler

import (
	"net/http"

	"github.com/AlexZinkM/sapphire-api/internal/model"
)

// SystemHandler serves the service banner and health check
type SystemHandler struct {
	name    string
	version string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string) *SystemHandler {
	return &SystemHandler{name: name, version: version}
}

// Root handles GET /
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  model.RootResponse
// @Router       / [get]
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.RootResponse{Message: h.name, Version: h.version})
}

// Health handles GET /health
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "healthy"})
}
