package uploader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateName(t *testing.T) {
	name := GenerateName("video", "My Clip.MP4")

	if !strings.HasPrefix(name, "video-") {
		t.Errorf("Expected field prefix, got %q", name)
	}
	if !strings.HasSuffix(name, ".MP4") {
		t.Errorf("Expected original extension preserved, got %q", name)
	}
	if strings.Contains(name, " ") {
		t.Errorf("Generated name must not contain the original base name, got %q", name)
	}

	other := GenerateName("video", "My Clip.MP4")
	if name == other {
		t.Error("Expected two generated names to differ")
	}
}

func TestGenerateName_NoExtension(t *testing.T) {
	name := GenerateName("thumbnail", "raw")
	if strings.Contains(name, ".") {
		t.Errorf("Expected no extension for extensionless input, got %q", name)
	}
}

func TestSubdir(t *testing.T) {
	if Subdir(KindVideo) != "videos" {
		t.Errorf("Expected videos, got %q", Subdir(KindVideo))
	}
	if Subdir(KindImage) != "thumbnails" {
		t.Errorf("Expected thumbnails, got %q", Subdir(KindImage))
	}
}

func TestLocalUploader_StoreReturnsServedPath(t *testing.T) {
	base := t.TempDir()
	local := NewLocalUploader(base)

	path, err := local.StagePath(KindVideo, "video-123-abcd.mp4")
	if err != nil {
		t.Fatalf("StagePath failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("fake video"), 0644); err != nil {
		t.Fatalf("Writing staged file failed: %v", err)
	}

	url, err := local.Store(context.Background(), path, KindVideo)
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if url != "/uploads/videos/video-123-abcd.mp4" {
		t.Errorf("Expected /uploads/videos/video-123-abcd.mp4, got %q", url)
	}

	// Local mode keeps the staged copy as the permanent artifact.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected staged file to remain: %v", err)
	}
}

func TestLocalUploader_StagePathCreatesDirectories(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")
	local := NewLocalUploader(base)

	path, err := local.StagePath(KindImage, "thumbnail-1-ab.png")
	if err != nil {
		t.Fatalf("StagePath failed: %v", err)
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected thumbnails directory to exist: %v", err)
	}
}

func TestLocalUploader_StoreMissingFile(t *testing.T) {
	local := NewLocalUploader(t.TempDir())

	if _, err := local.Store(context.Background(), filepath.Join(t.TempDir(), "gone.mp4"), KindVideo); err == nil {
		t.Error("Expected error for missing staged file")
	}
}

func TestLocalUploader_Type(t *testing.T) {
	if got := NewLocalUploader(t.TempDir()).Type(); got != "local" {
		t.Errorf("Expected local, got %q", got)
	}
}
