package uploader

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	cldupload "github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var _ Uploader = (*CloudinaryUploader)(nil)

// CloudinaryUploader forwards staged files to Cloudinary and returns the
// durable secure URL. On provider failure it degrades to the already-staged
// local copy instead of failing the request; the error is logged.
type CloudinaryUploader struct {
	cld      *cloudinary.Cloudinary
	fallback *LocalUploader
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string, fallback *LocalUploader) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary client: %w", err)
	}
	return &CloudinaryUploader{cld: cld, fallback: fallback}, nil
}

func (u *CloudinaryUploader) Store(ctx context.Context, localPath string, kind Kind) (string, error) {
	base := filepath.Base(localPath)
	params := cldupload.UploadParams{
		PublicID:  strings.TrimSuffix(base, filepath.Ext(base)),
		Folder:    "beatrepreneur/" + Subdir(kind),
		Overwrite: api.Bool(true),
	}
	if kind == KindVideo {
		params.ResourceType = "video"
	} else {
		params.ResourceType = "image"
		// Normalize thumbnails to webp on the provider side.
		params.Format = "webp"
	}

	resp, err := u.cld.Upload.Upload(ctx, localPath, params)
	if err == nil && resp.SecureURL == "" {
		err = fmt.Errorf("cloudinary returned no URL (%s)", resp.Error.Message)
	}
	if err != nil {
		log.Printf("Cloudinary %s upload failed, keeping local copy: %v", kind, err)
		return u.fallback.Store(ctx, localPath, kind)
	}

	// The remote copy is authoritative; the staged file is no longer needed.
	if err := os.Remove(localPath); err != nil {
		log.Printf("Failed to clean up staged file %s: %v", localPath, err)
	}

	return resp.SecureURL, nil
}

func (u *CloudinaryUploader) Type() string {
	return "cloud"
}
