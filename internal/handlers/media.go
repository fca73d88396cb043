package handlers

import (
	"log"
	"net/http"

	"github.com/rfavors/Beatrepreneur/internal/repository"
)

// MediaHandler serves the music and gallery sections of the site.
type MediaHandler struct {
	store repository.Store
}

func NewMediaHandler(store repository.Store) *MediaHandler {
	return &MediaHandler{store: store}
}

func (h *MediaHandler) ListMusicTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.store.GetMusicTracks(r.Context())
	if err != nil {
		log.Printf("Error fetching music tracks: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch music tracks")
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

func (h *MediaHandler) ListGalleryImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.store.GetGalleryImages(r.Context())
	if err != nil {
		log.Printf("Error fetching gallery images: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch gallery images")
		return
	}
	writeJSON(w, http.StatusOK, images)
}
