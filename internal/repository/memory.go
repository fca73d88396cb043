package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rfavors/Beatrepreneur/internal/models"
)

var _ Store = (*MemStore)(nil)

// MemStore keeps all records in process memory. Contents are lost on restart;
// the storage-status endpoint surfaces that to operators. A single counter is
// shared across entity kinds, so ids are unique process-wide but not dense per
// kind.
type MemStore struct {
	mu            sync.RWMutex
	nextID        int
	users         map[int]*models.User
	musicTracks   map[int]*models.MusicTrack
	videos        map[int]*models.Video
	galleryImages map[int]*models.GalleryImage
}

func NewMemStore() *MemStore {
	return &MemStore{
		nextID:        1,
		users:         make(map[int]*models.User),
		musicTracks:   make(map[int]*models.MusicTrack),
		videos:        make(map[int]*models.Video),
		galleryImages: make(map[int]*models.GalleryImage),
	}
}

func (s *MemStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateUser(ctx context.Context, insert *models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == insert.Username {
			return nil, &models.ConflictError{Message: "username already taken"}
		}
	}

	user := &models.User{
		ID:        s.nextID,
		Username:  insert.Username,
		Password:  insert.Password,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.users[user.ID] = user

	copied := *user
	return &copied, nil
}

func (s *MemStore) GetMusicTracks(ctx context.Context) ([]models.MusicTrack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tracks := make([]models.MusicTrack, 0, len(s.musicTracks))
	for _, track := range s.musicTracks {
		if track.IsPublished {
			tracks = append(tracks, *track)
		}
	}
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].ID < tracks[j].ID })
	return tracks, nil
}

func (s *MemStore) CreateMusicTrack(ctx context.Context, insert *models.InsertMusicTrack) (*models.MusicTrack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	track := &models.MusicTrack{
		ID:          s.nextID,
		Title:       insert.Title,
		Artist:      insert.Artist,
		AudioURL:    insert.AudioURL,
		Duration:    insert.Duration,
		IsPublished: insert.IsPublished,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.musicTracks[track.ID] = track

	copied := *track
	return &copied, nil
}

func (s *MemStore) GetVideos(ctx context.Context) ([]models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	videos := make([]models.Video, 0, len(s.videos))
	for _, video := range s.videos {
		if video.IsPublished {
			videos = append(videos, *video)
		}
	}
	// ids increase with insertion, so this is insertion order
	sort.Slice(videos, func(i, j int) bool { return videos[i].ID < videos[j].ID })
	return videos, nil
}

func (s *MemStore) CreateVideo(ctx context.Context, insert *models.InsertVideo) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video := &models.Video{
		ID:           s.nextID,
		Title:        insert.Title,
		Description:  insert.Description,
		ThumbnailURL: insert.ThumbnailURL,
		VideoURL:     insert.VideoURL,
		IsPublished:  insert.IsPublished,
		CreatedAt:    time.Now(),
	}
	s.nextID++
	s.videos[video.ID] = video

	copied := *video
	return &copied, nil
}

func (s *MemStore) GetGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := make([]models.GalleryImage, 0, len(s.galleryImages))
	for _, image := range s.galleryImages {
		if image.IsPublished {
			images = append(images, *image)
		}
	}
	sort.Slice(images, func(i, j int) bool { return images[i].ID < images[j].ID })
	return images, nil
}

func (s *MemStore) CreateGalleryImage(ctx context.Context, insert *models.InsertGalleryImage) (*models.GalleryImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	image := &models.GalleryImage{
		ID:          s.nextID,
		Title:       insert.Title,
		ImageURL:    insert.ImageURL,
		AltText:     insert.AltText,
		IsPublished: insert.IsPublished,
		CreatedAt:   time.Now(),
	}
	s.nextID++
	s.galleryImages[image.ID] = image

	copied := *image
	return &copied, nil
}
