package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pixelgrid/snake-arena-api/internal/models"
)

// writeJSON writes the standard response envelope. Domain failures keep a
// 200 status; the envelope's success flag is the real signal.
func writeJSON(w http.ResponseWriter, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
