package models

import (
	"strings"
	"time"
)

type Video struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	VideoURL     string    `json:"videoUrl"`
	IsPublished  bool      `json:"isPublished"`
	CreatedAt    time.Time `json:"createdAt"`
}

// InsertVideo is the validated shape a video record is created from. The store
// performs no validation of its own; Validate must pass before CreateVideo.
type InsertVideo struct {
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	IsPublished  bool
}

func (v *InsertVideo) Validate() error {
	if strings.TrimSpace(v.Title) == "" {
		return &ValidationError{Message: "Title is required"}
	}
	return nil
}
