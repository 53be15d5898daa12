package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AlexZinkM/sapphire-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the failure envelope. The status is chosen by the route;
// the code tells clients which kind of failure it was.
func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	kind := model.KindOf(err)
	level := zerolog.WarnLevel
	if errors.Is(err, context.Canceled) {
		level = zerolog.DebugLevel
	}
	hlog.FromRequest(r).WithLevel(level).Err(err).Str("code", kind.Code()).Int("status", status).Msg("request failed")

	writeJSON(w, status, model.ErrorResponse{
		Success:   false,
		Error:     err.Error(),
		Code:      kind.Code(),
		Timestamp: time.Now().Unix(),
	})
}

// NotFound handles requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{
		Error:     "route not found: " + r.URL.Path,
		Code:      "ROUTE_NOT_FOUND",
		Timestamp: time.Now().Unix(),
	})
}

// MethodNotAllowed handles known routes called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
		Error:     "Method not allowed. Should be GET",
		Code:      "METHOD_NOT_ALLOWED",
		Timestamp: time.Now().Unix(),
	})
}
