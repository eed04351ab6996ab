// Package upload defines the image upload contract: the constraints checked
// before anything leaves the process and the distinct ways an upload fails.
package upload

import (
	"fmt"
	"slices"

	"emperror.dev/errors"
)

const (
	ErrTooLarge        = errors.Sentinel("file is too large")
	ErrUnsupportedType = errors.Sentinel("file type is not supported")
	ErrUploadTimeout   = errors.Sentinel("upload timed out")
	ErrUploadFailed    = errors.Sentinel("upload failed")
)

// Reason is the machine-readable failure cause returned to clients.
type Reason string

const (
	ReasonTooLarge        Reason = "too-large"
	ReasonUnsupportedType Reason = "unsupported-type"
	ReasonTimeout         Reason = "timeout"
	ReasonFailed          Reason = "failed"
)

// DefaultMaxBytes is 5 MiB.
const DefaultMaxBytes = 5 * 1024 * 1024

// DefaultTypes are the accepted image MIME types. image/jpg is not a
// registered type but some clients send it.
var DefaultTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}

// Constraints bound what an upload may contain.
type Constraints struct {
	MaxBytes     int
	AllowedTypes []string
}

// DefaultConstraints returns the standard image constraints.
func DefaultConstraints() Constraints {
	return Constraints{MaxBytes: DefaultMaxBytes, AllowedTypes: slices.Clone(DefaultTypes)}
}

// Allows reports whether mime is in the allowed set.
func (c Constraints) Allows(mime string) bool {
	return slices.Contains(c.AllowedTypes, mime)
}

// ReasonOf maps an upload error onto its reason. Errors that are not one of
// the upload sentinels count as failed.
func ReasonOf(err error) Reason {
	switch {
	case errors.Is(err, ErrTooLarge):
		return ReasonTooLarge
	case errors.Is(err, ErrUnsupportedType):
		return ReasonUnsupportedType
	case errors.Is(err, ErrUploadTimeout):
		return ReasonTimeout
	default:
		return ReasonFailed
	}
}

var messages = map[Reason]string{
	ReasonTooLarge:        "The image is too large. Please choose a file under %s.",
	ReasonUnsupportedType: "This file type is not supported. Please upload a JPG, PNG, GIF or WebP image.",
	ReasonTimeout:         "The upload took too long. Check your connection and try again.",
	ReasonFailed:          "The image could not be uploaded. Please try again.",
}

// Message returns the user-facing text for r. maxBytes fills the size limit
// in the too-large message.
func Message(r Reason, maxBytes int) string {
	msg, ok := messages[r]
	if !ok {
		msg = messages[ReasonFailed]
	}
	if r == ReasonTooLarge {
		return fmt.Sprintf(msg, humanSize(maxBytes))
	}
	return msg
}

// humanSize formats n bytes as KB or MB.
func humanSize(n int) string {
	const mb = 1024 * 1024
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%d MB", n/mb)
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	default:
		return fmt.Sprintf("%d KB", (n+1023)/1024)
	}
}
