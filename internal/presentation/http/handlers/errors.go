// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/editor"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/domain/upload"
	"github.com/gin-gonic/gin"
)

// statusFor maps a domain error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, blocks.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, editor.ErrPersistence):
		return http.StatusServiceUnavailable
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, services.ErrNotLive),
		errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrConflict),
		errors.Is(err, editor.ErrSaveInFlight),
		errors.Is(err, editor.ErrUploadInFlight),
		errors.Is(err, editor.ErrAlreadyOpen),
		errors.Is(err, editor.ErrNotOpen):
		return http.StatusConflict
	case errors.Is(err, services.ErrProtected):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, blocks.ErrUnknownKind),
		errors.Is(err, blocks.ErrUnknownField),
		errors.Is(err, blocks.ErrNotAList),
		errors.Is(err, blocks.ErrNotAnImage),
		errors.Is(err, blocks.ErrInvalidValue),
		errors.Is(err, blocks.ErrIndexOutOfRange),
		errors.Is(err, editor.ErrUnknownOp):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// uploadStatus maps an upload failure reason onto an HTTP status.
func uploadStatus(r upload.Reason) int {
	switch r {
	case upload.ReasonTooLarge:
		return http.StatusRequestEntityTooLarge
	case upload.ReasonUnsupportedType:
		return http.StatusUnsupportedMediaType
	case upload.ReasonTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusBadGateway
	}
}

// respondError writes err with the status its kind implies. Validation
// failures carry their per-field messages so the editor can show them.
func respondError(c *gin.Context, err error) int {
	status := statusFor(err)
	body := gin.H{"error": err.Error()}

	if verr, ok := blocks.AsValidationError(err); ok {
		body["fields"] = verr.Fields
	}
	if status == http.StatusServiceUnavailable {
		body["retryable"] = true
	}
	if status == http.StatusInternalServerError {
		body["error"] = "internal server error"
	} else if details := errors.GetDetails(err); len(details) > 0 {
		body["details"] = detailMap(details)
	}

	c.JSON(status, body)
	return status
}

func respondUploadError(c *gin.Context, err error, maxBytes int) {
	reason := upload.ReasonOf(err)
	c.JSON(uploadStatus(reason), gin.H{
		"success": false,
		"reason":  reason,
		"error":   upload.Message(reason, maxBytes),
	})
}

func detailMap(kv []any) map[string]any {
	out := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			out[k] = kv[i+1]
		}
	}
	return out
}
