package uploader

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestCloudinaryUploader_FallsBackToLocalOnFailure(t *testing.T) {
	base := t.TempDir()
	local := NewLocalUploader(base)

	// Credentials for a nonexistent account: the provider call cannot
	// succeed, so Store must degrade to the staged copy.
	cld, err := NewCloudinaryUploader("nonexistent-cloud", "000000000000000", "invalid-secret", local)
	if err != nil {
		t.Fatalf("NewCloudinaryUploader failed: %v", err)
	}

	path, err := local.StagePath(KindVideo, "video-123-abcd.mp4")
	if err != nil {
		t.Fatalf("StagePath failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("fake video"), 0644); err != nil {
		t.Fatalf("Writing staged file failed: %v", err)
	}

	url, err := cld.Store(context.Background(), path, KindVideo)
	if err != nil {
		t.Fatalf("Expected fallback to local copy, got error: %v", err)
	}
	if url != "/uploads/videos/video-123-abcd.mp4" {
		t.Errorf("Expected local fallback URL, got %q", url)
	}
	if strings.HasPrefix(url, "https://") {
		t.Errorf("Expected no provider URL from a failed upload, got %q", url)
	}

	// The staged copy is the only durable artifact after a provider
	// failure; it must survive.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected staged file retained after fallback: %v", err)
	}
}

func TestCloudinaryUploader_Type(t *testing.T) {
	cld, err := NewCloudinaryUploader("nonexistent-cloud", "000000000000000", "invalid-secret", NewLocalUploader(t.TempDir()))
	if err != nil {
		t.Fatalf("NewCloudinaryUploader failed: %v", err)
	}
	if got := cld.Type(); got != "cloud" {
		t.Errorf("Expected cloud, got %q", got)
	}
}
