package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rfavors/Beatrepreneur/internal/models"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore implements the same contract as MemStore on a pgx pool, for
// deployments where uploads must survive a restart. Ids come from the serial
// columns, so they are dense per table rather than shared across kinds.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) GetUser(ctx context.Context, id int) (*models.User, error) {
	u := &models.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, insert *models.InsertUser) (*models.User, error) {
	u := &models.User{Username: insert.Username, Password: insert.Password}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, created_at`,
		insert.Username, insert.Password,
	).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return nil, &models.ConflictError{Message: "username already taken"}
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *PostgresStore) GetMusicTracks(ctx context.Context) ([]models.MusicTrack, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, artist, audio_url, duration, is_published, created_at
		 FROM music_tracks WHERE is_published ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tracks := []models.MusicTrack{}
	for rows.Next() {
		var t models.MusicTrack
		if err := rows.Scan(&t.ID, &t.Title, &t.Artist, &t.AudioURL, &t.Duration, &t.IsPublished, &t.CreatedAt); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

func (s *PostgresStore) CreateMusicTrack(ctx context.Context, insert *models.InsertMusicTrack) (*models.MusicTrack, error) {
	t := &models.MusicTrack{
		Title:       insert.Title,
		Artist:      insert.Artist,
		AudioURL:    insert.AudioURL,
		Duration:    insert.Duration,
		IsPublished: insert.IsPublished,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO music_tracks (title, artist, audio_url, duration, is_published)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		insert.Title, insert.Artist, insert.AudioURL, insert.Duration, insert.IsPublished,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PostgresStore) GetVideos(ctx context.Context) ([]models.Video, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, description, thumbnail_url, video_url, is_published, created_at
		 FROM videos WHERE is_published ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []models.Video{}
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.ThumbnailURL, &v.VideoURL, &v.IsPublished, &v.CreatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (s *PostgresStore) CreateVideo(ctx context.Context, insert *models.InsertVideo) (*models.Video, error) {
	v := &models.Video{
		Title:        insert.Title,
		Description:  insert.Description,
		ThumbnailURL: insert.ThumbnailURL,
		VideoURL:     insert.VideoURL,
		IsPublished:  insert.IsPublished,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO videos (title, description, thumbnail_url, video_url, is_published)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		insert.Title, insert.Description, insert.ThumbnailURL, insert.VideoURL, insert.IsPublished,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *PostgresStore) GetGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, image_url, alt_text, is_published, created_at
		 FROM gallery_images WHERE is_published ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []models.GalleryImage{}
	for rows.Next() {
		var g models.GalleryImage
		if err := rows.Scan(&g.ID, &g.Title, &g.ImageURL, &g.AltText, &g.IsPublished, &g.CreatedAt); err != nil {
			return nil, err
		}
		images = append(images, g)
	}
	return images, rows.Err()
}

func (s *PostgresStore) CreateGalleryImage(ctx context.Context, insert *models.InsertGalleryImage) (*models.GalleryImage, error) {
	g := &models.GalleryImage{
		Title:       insert.Title,
		ImageURL:    insert.ImageURL,
		AltText:     insert.AltText,
		IsPublished: insert.IsPublished,
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO gallery_images (title, image_url, alt_text, is_published)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		insert.Title, insert.ImageURL, insert.AltText, insert.IsPublished,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
