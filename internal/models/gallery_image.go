package models

import (
	"strings"
	"time"
)

type GalleryImage struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"imageUrl"`
	AltText     string    `json:"altText"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InsertGalleryImage struct {
	Title       string
	ImageURL    string
	AltText     string
	IsPublished bool
}

func (g *InsertGalleryImage) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return &ValidationError{Message: "Title is required"}
	}
	if strings.TrimSpace(g.ImageURL) == "" {
		return &ValidationError{Message: "Image URL is required"}
	}
	return nil
}
