// Package server exposes the interview engine over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/yonatank/prepair/internal/interview"
	"github.com/yonatank/prepair/internal/jobspec"
	"github.com/yonatank/prepair/internal/readiness"
	"github.com/yonatank/prepair/internal/store"
)

// Handler carries the services the HTTP routes delegate to.
type Handler struct {
	users    store.UserRepo
	jobSpecs *jobspec.Service
	service  *interview.Service
	engine   *interview.Engine
	progress *readiness.Aggregator
}

// NewHandler creates a Handler with its service dependencies.
func NewHandler(
	users store.UserRepo,
	jobSpecs *jobspec.Service,
	service *interview.Service,
	engine *interview.Engine,
	progress *readiness.Aggregator,
) *Handler {
	return &Handler{
		users:    users,
		jobSpecs: jobSpecs,
		service:  service,
		engine:   engine,
		progress: progress,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// decode reads a JSON request body into v and reports malformed input.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
