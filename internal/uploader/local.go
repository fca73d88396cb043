package uploader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

var _ Uploader = (*LocalUploader)(nil)

// LocalUploader keeps the staged file where it is and returns a path-based URL
// served by the /uploads static file handler. This storage does not survive a
// redeploy.
type LocalUploader struct {
	baseDir string
}

func NewLocalUploader(baseDir string) *LocalUploader {
	return &LocalUploader{baseDir: baseDir}
}

// StagePath returns the on-disk destination for a staged file, creating the
// kind's subdirectory on demand.
func (u *LocalUploader) StagePath(kind Kind, name string) (string, error) {
	dir := filepath.Join(u.baseDir, Subdir(kind))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	return filepath.Join(dir, name), nil
}

func (u *LocalUploader) Store(ctx context.Context, localPath string, kind Kind) (string, error) {
	if _, err := os.Stat(localPath); err != nil {
		return "", fmt.Errorf("staged file missing: %w", err)
	}
	return "/uploads/" + Subdir(kind) + "/" + filepath.Base(localPath), nil
}

func (u *LocalUploader) Type() string {
	return "local"
}
