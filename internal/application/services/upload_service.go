package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/upload"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/media"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/gabriel-vasile/mimetype"
)

// UploadService checks images against the upload constraints and hands
// accepted ones to the configured uploader exactly once.
type UploadService struct {
	uploader    media.Uploader
	constraints upload.Constraints
	timeout     time.Duration
	perfTracker *performance.Tracker
	logger      *logging.ChanneledLogger
	now         func() time.Time
}

func NewUploadService(uploader media.Uploader, constraints upload.Constraints, timeout time.Duration, perfTracker *performance.Tracker, logger *logging.ChanneledLogger) *UploadService {
	if constraints.MaxBytes <= 0 {
		constraints.MaxBytes = upload.DefaultMaxBytes
	}
	if len(constraints.AllowedTypes) == 0 {
		constraints.AllowedTypes = upload.DefaultTypes
	}
	return &UploadService{
		uploader:    uploader,
		constraints: constraints,
		timeout:     timeout,
		perfTracker: perfTracker,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *UploadService) Constraints() upload.Constraints { return s.constraints }

// Upload returns the hosted URL for data. The size is checked first, then
// the sniffed MIME type; the uploader is only reached when both pass. A
// failure is reported once and never retried.
func (s *UploadService) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	marker := s.perfTracker.StartOperation("upload_image", filename)
	defer marker.Complete()

	if len(data) > s.constraints.MaxBytes {
		err := errors.WithDetails(upload.ErrTooLarge, "size", len(data), "max", s.constraints.MaxBytes)
		marker.SetError(err)
		s.logger.Media().Warn("Upload rejected", "reason", upload.ReasonTooLarge, "filename", filename, "size", len(data))
		return "", err
	}
	if len(data) == 0 {
		err := errors.WithDetails(upload.ErrUnsupportedType, "size", 0)
		marker.SetError(err)
		return "", err
	}

	mtype := mimetype.Detect(data)
	mime := mtype.String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !s.constraints.Allows(mime) {
		err := errors.WithDetails(upload.ErrUnsupportedType, "mime", mime)
		marker.SetError(err)
		s.logger.Media().Warn("Upload rejected", "reason", upload.ReasonUnsupportedType, "filename", filename, "mime", mime)
		return "", err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	key := media.ObjectKey(strings.ToLower(security.GenerateULID()), extensionFor(mtype, filename), s.now())
	url, err := s.uploader.Upload(ctx, key, data, mime)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = errors.WithDetails(errors.WithMessage(upload.ErrUploadTimeout, err.Error()), "backend", s.uploader.Name())
		} else {
			err = errors.WithDetails(errors.WithMessage(upload.ErrUploadFailed, err.Error()), "backend", s.uploader.Name())
		}
		marker.SetError(err)
		s.logger.Media().Error("Upload failed", "reason", upload.ReasonOf(err), "filename", filename, "error", err.Error())
		return "", err
	}
	if blocks.IsTransient(url) {
		err := fmt.Errorf("uploader returned a transient reference: %w", upload.ErrUploadFailed)
		marker.SetError(err)
		return "", err
	}

	marker.SetSuccess(true)
	marker.Complete()
	s.logger.Perf().Info("Performance for Upload request",
		"duration", marker.Duration, "backend", s.uploader.Name(), "bytes", len(data), "mime", mime)
	return url, nil
}

func extensionFor(mtype *mimetype.MIME, filename string) string {
	if ext := mtype.Extension(); ext != "" {
		return strings.TrimPrefix(ext, ".")
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}
