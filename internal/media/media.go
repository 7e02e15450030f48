// Copyright (c) 2026 NailDesigns.art. All rights reserved.

/*
Package media is the blob-store boundary: console image uploads go to
Cloudinary and come back as publicly resolvable URLs. No resizing or
transcoding happens server-side; the CDN serves the original.
*/
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/naildesignsart/naildesigns-art/internal/platform/apperr"
)

// Upload is the stored result of one upload.
type Upload struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Uploader abstracts the blob store for tests.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*Upload, error)
}

// CloudinaryUploader implements [Uploader] against Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	logger *slog.Logger
}

// NewCloudinaryUploader builds an uploader from a cloudinary:// URL.
func NewCloudinaryUploader(cloudinaryURL string, logger *slog.Logger) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("media: invalid cloudinary URL: %w", err)
	}
	return &CloudinaryUploader{client: client, logger: logger}, nil
}

// Upload stores the file under a time-prefixed public ID so repeated
// uploads of the same filename never collide, and returns the secure URL.
func (up *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (*Upload, error) {
	publicID := timePrefixedID(filename, time.Now())

	result, err := up.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
	})
	if err != nil {
		return nil, fmt.Errorf("media: upload failed: %w", err)
	}

	up.logger.Info("media_uploaded",
		slog.String("public_id", result.PublicID),
		slog.Int("bytes", result.Bytes),
	)

	return &Upload{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

// Disabled is an [Uploader] used when no blob store is configured; every
// upload fails with a clear unprocessable error instead of a nil panic.
type Disabled struct{}

func (Disabled) Upload(_ context.Context, _ io.Reader, _ string) (*Upload, error) {
	return nil, apperr.Unprocessable("Media uploads are not configured on this deployment")
}

// timePrefixedID builds images/{unixts}_{basename} with the extension
// dropped; Cloudinary derives the format from the content.
func timePrefixedID(filename string, now time.Time) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "upload"
	}
	return fmt.Sprintf("images/%d_%s", now.Unix(), base)
}
