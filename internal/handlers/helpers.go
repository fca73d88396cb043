package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rfavors/Beatrepreneur/internal/models"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleStoreError maps typed errors from the models/repository layer to HTTP
// statuses. Anything unrecognized is a 500.
func handleStoreError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *models.ValidationError:
		writeError(w, http.StatusBadRequest, e.Message)
	case *models.ConflictError:
		writeError(w, http.StatusConflict, e.Message)
	case *models.UpstreamError:
		resp := errorResponse{Error: e.Message}
		if e.Err != nil {
			resp.Details = e.Err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	default:
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
