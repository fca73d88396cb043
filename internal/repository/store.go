package repository

import (
	"context"

	"github.com/rfavors/Beatrepreneur/internal/models"
)

// Store is the metadata persistence contract. It is constructed once at process
// start and handed to handlers by reference; tests build a fresh MemStore each.
//
// Point lookups return nil, nil when no record matches. Create operations assign
// the id and creation timestamp and return the stored record.
type Store interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.InsertUser) (*models.User, error)

	GetMusicTracks(ctx context.Context) ([]models.MusicTrack, error)
	CreateMusicTrack(ctx context.Context, track *models.InsertMusicTrack) (*models.MusicTrack, error)

	GetVideos(ctx context.Context) ([]models.Video, error)
	CreateVideo(ctx context.Context, video *models.InsertVideo) (*models.Video, error)

	GetGalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	CreateGalleryImage(ctx context.Context, image *models.InsertGalleryImage) (*models.GalleryImage, error)
}
