package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// VariantWidths are the responsive WebP widths written next to each original.
var VariantWidths = []int{1200, 600, 300}

// LocalUploader writes uploads under a media directory served at baseURL.
type LocalUploader struct {
	basePath string
	baseURL  string
	logger   *logging.ChanneledLogger
}

func NewLocalUploader(basePath, baseURL string, logger *logging.ChanneledLogger) *LocalUploader {
	return &LocalUploader{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

func (u *LocalUploader) Name() string { return "local" }

// Upload writes the original and its WebP variants. A variant failure
// removes everything written for this upload.
func (u *LocalUploader) Upload(ctx context.Context, objectKey string, payload []byte, contentType string) (string, error) {
	key := normalizeObjectKey(objectKey)
	if key == "" {
		return "", fmt.Errorf("invalid object key")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	start := time.Now()
	fullPath := filepath.Join(u.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, payload, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	variants, err := u.writeVariants(ctx, fullPath, payload)
	if err != nil {
		os.Remove(fullPath)
		return "", err
	}

	u.logger.Media().Info("Stored upload",
		"key", key, "bytes", len(payload), "contentType", contentType, "variants", len(variants), "duration", time.Since(start))
	return u.baseURL + "/" + key, nil
}

// VariantPath returns the on-disk path of the width variant for original.
func VariantPath(original string, width int) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s_%dpx.webp", strings.TrimSuffix(original, ext), width)
}

func (u *LocalUploader) writeVariants(ctx context.Context, originalPath string, payload []byte) ([]string, error) {
	img, err := imaging.Decode(bytes.NewReader(payload), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	written := make([]string, 0, len(VariantWidths))
	for _, width := range VariantWidths {
		if err := ctx.Err(); err != nil {
			removeAll(written)
			return nil, err
		}
		resized := img
		if img.Bounds().Dx() > width {
			resized = imaging.Resize(img, width, 0, imaging.Lanczos)
		}
		thumbPath := VariantPath(originalPath, width)
		if err := webp.Save(thumbPath, resized, &webp.Options{Quality: 85}); err != nil {
			u.logger.Media().Error("Failed to save WebP variant", "path", thumbPath, "error", err.Error())
			removeAll(written)
			return nil, fmt.Errorf("failed to save WebP variant %dpx: %w", width, err)
		}
		written = append(written, thumbPath)
	}
	return written, nil
}

// Delete removes an upload and its variants by its served URL.
func (u *LocalUploader) Delete(url string) error {
	key := normalizeObjectKey(strings.TrimPrefix(url, u.baseURL))
	if key == "" {
		return fmt.Errorf("empty image path")
	}
	original := filepath.Join(u.basePath, filepath.FromSlash(key))
	if err := os.Remove(original); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove original image: %w", err)
	}
	for _, width := range VariantWidths {
		if err := os.Remove(VariantPath(original, width)); err != nil && !os.IsNotExist(err) {
			u.logger.Media().Warn("Failed to remove variant", "path", VariantPath(original, width), "error", err.Error())
		}
	}
	return nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}
