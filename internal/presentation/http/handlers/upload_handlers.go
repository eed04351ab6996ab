package handlers

import (
	"io"
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/domain/upload"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// multipartOverhead is the slack allowed above the file limit for headers
// and other form fields.
const multipartOverhead = 64 * 1024

// UploadHandlers serves the image upload side channel.
type UploadHandlers struct {
	uploadService *services.UploadService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

func NewUploadHandlers(uploadService *services.UploadService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *UploadHandlers {
	return &UploadHandlers{uploadService: uploadService, logger: logger, perfTracker: perfTracker}
}

// PostUpload handles POST /api/v1/admin/uploads (multipart field "file").
func (h *UploadHandlers) PostUpload(c *gin.Context) {
	start := time.Now()
	maxBytes := h.uploadService.Constraints().MaxBytes

	data, filename, err := readUpload(c, maxBytes)
	if err != nil {
		if errors.Is(err, upload.ErrTooLarge) {
			respondUploadError(c, err, maxBytes)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "a file is required", "details": err.Error()})
		return
	}

	url, err := h.uploadService.Upload(c.Request.Context(), data, filename)
	if err != nil {
		respondUploadError(c, err, maxBytes)
		return
	}

	h.logger.Media().Info("Upload request completed", "filename", filename, "size", len(data), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

// readUpload reads the "file" part, stopping one byte past maxBytes so an
// oversized file is detected without buffering all of it.
func readUpload(c *gin.Context, maxBytes int) ([]byte, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxBytes)+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, "", upload.ErrTooLarge
		}
		return nil, "", err
	}
	if fh.Size > int64(maxBytes) {
		return nil, fh.Filename, upload.ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fh.Filename, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxBytes)+1))
	if err != nil {
		return nil, fh.Filename, err
	}
	return data, fh.Filename, nil
}
