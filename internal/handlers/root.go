package handlers

import (
	"encoding/json"
	"net/http"
)

// NewRootHandler returns an HTTP handler for the API landing route.
// @Summary API info
// @Description Returns the service name and version.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func NewRootHandler(name, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": name,
			"version": version,
		})
	}
}

// NewHealthHandler returns an HTTP handler for liveness checks.
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}
}
