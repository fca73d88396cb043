package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/rfavors/Beatrepreneur/internal/models"
	"github.com/rfavors/Beatrepreneur/internal/repository"
	"github.com/rfavors/Beatrepreneur/internal/uploader"
)

const (
	maxVideoSize = 500 * 1024 * 1024
	maxImageSize = 5 * 1024 * 1024
)

type VideoHandler struct {
	store   repository.Store
	uploads uploader.Uploader
	local   *uploader.LocalUploader
}

// NewVideoHandler wires the metadata store and the active uploader. The local
// uploader is always present: every upload is staged on disk first, whatever
// its final destination.
func NewVideoHandler(store repository.Store, uploads uploader.Uploader, local *uploader.LocalUploader) *VideoHandler {
	return &VideoHandler{store: store, uploads: uploads, local: local}
}

// List returns all published videos.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.store.GetVideos(r.Context())
	if err != nil {
		log.Printf("Error fetching videos: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch videos")
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// StorageStatus tells the admin page whether uploads are durable or will be
// lost on redeploy.
func (h *VideoHandler) StorageStatus(w http.ResponseWriter, r *http.Request) {
	storageType := h.uploads.Type()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cloudinaryConfigured": storageType == "cloud",
		"storageType":          storageType,
	})
}

// Upload handles the admin multipart submission: title, optional description,
// a video file and an optional thumbnail. Validation happens before any byte
// is persisted; the record is only created after every upload step succeeded.
func (h *VideoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxVideoSize+maxImageSize+1024*1024)

	if err := r.ParseMultipartForm(32 * 1024 * 1024); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "File too large. Maximum size is 500MB.")
		} else {
			writeError(w, http.StatusBadRequest, "File upload error")
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	insert := &models.InsertVideo{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		IsPublished: true,
	}
	if err := insert.Validate(); err != nil {
		handleStoreError(w, err)
		return
	}

	videoFile, videoHeader, err := r.FormFile("video")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Video file is required")
		return
	}
	defer videoFile.Close()

	if videoHeader.Size > maxVideoSize {
		writeError(w, http.StatusBadRequest, "File too large. Maximum size is 500MB.")
		return
	}
	videoMime, err := detectMime(videoFile, videoHeader)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read video file")
		return
	}
	if !isAllowedVideoType(videoMime, videoHeader.Filename) {
		writeError(w, http.StatusBadRequest,
			"Invalid video file type: "+videoMime+". Allowed types: MP4, MOV, AVI, MKV, WebM")
		return
	}

	var thumbFile multipart.File
	var thumbHeader *multipart.FileHeader
	if f, hdr, err := r.FormFile("thumbnail"); err == nil {
		defer f.Close()
		if hdr.Size > maxImageSize {
			writeError(w, http.StatusBadRequest, "File too large. Maximum size is 5MB.")
			return
		}
		imageMime, err := detectMime(f, hdr)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to read thumbnail file")
			return
		}
		if !isAllowedImageType(imageMime, hdr.Filename) {
			writeError(w, http.StatusBadRequest,
				"Invalid image file type: "+imageMime+". Allowed types: JPG, PNG, WebP")
			return
		}
		thumbFile, thumbHeader = f, hdr
	}

	// Stage onto local disk under per-request unique names.
	videoPath, err := h.stage(videoFile, uploader.KindVideo, "video", videoHeader.Filename)
	if err != nil {
		log.Printf("Error staging video: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to upload video", Details: err.Error()})
		return
	}

	var thumbPath string
	if thumbFile != nil {
		thumbPath, err = h.stage(thumbFile, uploader.KindImage, "thumbnail", thumbHeader.Filename)
		if err != nil {
			os.Remove(videoPath)
			log.Printf("Error staging thumbnail: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to upload video", Details: err.Error()})
			return
		}
	}

	insert.VideoURL, err = h.uploads.Store(r.Context(), videoPath, uploader.KindVideo)
	if err != nil {
		h.discard(videoPath, thumbPath)
		log.Printf("Error storing video: %v", err)
		handleStoreError(w, &models.UpstreamError{Message: "Failed to upload video", Err: err})
		return
	}

	if thumbPath != "" {
		insert.ThumbnailURL, err = h.uploads.Store(r.Context(), thumbPath, uploader.KindImage)
		if err != nil {
			h.discard("", thumbPath)
			log.Printf("Error storing thumbnail: %v", err)
			handleStoreError(w, &models.UpstreamError{Message: "Failed to upload video", Err: err})
			return
		}
	}

	video, err := h.store.CreateVideo(r.Context(), insert)
	if err != nil {
		log.Printf("Error saving video: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to upload video", Details: err.Error()})
		return
	}

	log.Printf("Video saved: id=%d title=%q storage=%s", video.ID, video.Title, h.uploads.Type())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"video":   video,
	})
}

func (h *VideoHandler) stage(src multipart.File, kind uploader.Kind, field, originalName string) (string, error) {
	dst, err := h.local.StagePath(kind, uploader.GenerateName(field, originalName))
	if err != nil {
		return "", err
	}
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}

func (h *VideoHandler) discard(paths ...string) {
	for _, p := range paths {
		if p != "" {
			os.Remove(p)
		}
	}
}

// detectMime prefers the declared part content type, falling back to sniffing
// the first 512 bytes. The reader is rewound before staging.
func detectMime(file multipart.File, header *multipart.FileHeader) (string, error) {
	if declared := header.Header.Get("Content-Type"); declared != "" && declared != "application/octet-stream" {
		return declared, nil
	}
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":        true,
	"video/mov":        true,
	"video/avi":        true,
	"video/x-msvideo":  true,
	"video/mkv":        true,
	"video/x-matroska": true,
	"video/webm":       true,
	"video/quicktime":  true,
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

func isAllowedVideoType(mime, filename string) bool {
	if allowedVideoTypes[mime] || strings.HasPrefix(mime, "video/") {
		return true
	}
	// Extension fallback for containers the sniffer reports as octet-stream.
	lower := strings.ToLower(filename)
	for _, ext := range []string{".mp4", ".mov", ".avi", ".mkv", ".webm"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func isAllowedImageType(mime, filename string) bool {
	if allowedImageTypes[mime] || strings.HasPrefix(mime, "image/") {
		return true
	}
	lower := strings.ToLower(filename)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".webp"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
