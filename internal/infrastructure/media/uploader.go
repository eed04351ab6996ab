// Package media stores uploaded images and returns their public URLs.
package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/pkg/config"
)

// Uploader writes one object and returns the URL it is served from.
type Uploader interface {
	Upload(ctx context.Context, objectKey string, payload []byte, contentType string) (string, error)
	Name() string
}

// ObjectKey builds the storage key for an upload: images/YYYY/MM/<id>.<ext>.
func ObjectKey(id, ext string, now time.Time) string {
	return path.Join("images", now.UTC().Format("2006"), now.UTC().Format("01"), id+"."+strings.TrimPrefix(ext, "."))
}

// NewFromConfig returns the uploader selected by UPLOAD_BACKEND.
func NewFromConfig(ctx context.Context, logger *logging.ChanneledLogger) (Uploader, error) {
	switch config.UploadBackend {
	case "", "local":
		return NewLocalUploader(config.MediaDir, config.MediaBaseURL, logger), nil
	case "s3":
		return NewS3Uploader(ctx, S3Options{
			Bucket:          config.S3Bucket,
			Region:          config.S3Region,
			Endpoint:        config.S3Endpoint,
			AccessKeyID:     config.S3AccessKeyID,
			SecretAccessKey: config.S3SecretKey,
			PublicBaseURL:   config.S3PublicBaseURL,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", config.UploadBackend)
	}
}

func normalizeObjectKey(key string) string {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	key = strings.TrimPrefix(key, "/")
	for strings.Contains(key, "//") {
		key = strings.ReplaceAll(key, "//", "/")
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return ""
		}
	}
	return key
}
