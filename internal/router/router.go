package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rfavors/Beatrepreneur/internal/handlers"
	"github.com/rfavors/Beatrepreneur/internal/middleware"
)

func New(
	videoHandler *handlers.VideoHandler,
	mediaHandler *handlers.MediaHandler,
	uploadsDir string,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Admin rate limiter (30 req/min per IP)
	adminLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Public Routes ────
		r.Get("/videos", videoHandler.List)
		r.Get("/music-tracks", mediaHandler.ListMusicTracks)
		r.Get("/gallery", mediaHandler.ListGalleryImages)

		// ──── Admin Routes ────
		r.Route("/admin", func(r chi.Router) {
			r.Use(adminLimiter.Middleware)
			r.Get("/storage-status", videoHandler.StorageStatus)
			r.Post("/upload-video", videoHandler.Upload)
		})
	})

	// Locally stored uploads. Also serves fallback copies kept after a failed
	// provider upload when Cloudinary is configured.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Handle("/uploads/*", fileServer)

	return r
}
