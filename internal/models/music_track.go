package models

import (
	"strings"
	"time"
)

type MusicTrack struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	AudioURL    string    `json:"audioUrl"`
	Duration    int       `json:"duration"` // seconds
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InsertMusicTrack struct {
	Title       string
	Artist      string
	AudioURL    string
	Duration    int
	IsPublished bool
}

func (m *InsertMusicTrack) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return &ValidationError{Message: "Title is required"}
	}
	if strings.TrimSpace(m.Artist) == "" {
		return &ValidationError{Message: "Artist is required"}
	}
	if strings.TrimSpace(m.AudioURL) == "" {
		return &ValidationError{Message: "Audio URL is required"}
	}
	return nil
}
