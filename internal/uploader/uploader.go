package uploader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind selects the directory/folder an asset lands in and, for remote uploads,
// the provider resource type.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// Uploader turns a staged local file into a publicly resolvable URL. The file
// at localPath was already written by the caller under a per-request unique
// name, so implementations never race on disk.
type Uploader interface {
	// Store returns the final URL for the asset. Implementations that move the
	// bytes elsewhere remove the staged copy; for local storage the staged copy
	// is the permanent artifact.
	Store(ctx context.Context, localPath string, kind Kind) (string, error)

	// Type reports "cloud" or "local" for the storage-status endpoint.
	Type() string
}

// Subdir returns the uploads subdirectory for a kind.
func Subdir(kind Kind) string {
	if kind == KindVideo {
		return "videos"
	}
	return "thumbnails"
}

// GenerateName builds a collision-resistant filename: field prefix, millisecond
// timestamp, random suffix, original extension.
func GenerateName(field, originalName string) string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), suffix, filepath.Ext(originalName))
}
