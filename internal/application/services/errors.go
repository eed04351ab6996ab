// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import "emperror.dev/errors"

const (
	// ErrInvalidInput marks a request the service refused before touching
	// storage.
	ErrInvalidInput = errors.Sentinel("invalid input")

	// ErrNotLive is returned for public lookups of pages that are not
	// published or have expired.
	ErrNotLive = errors.Sentinel("page is not live")

	// ErrProtected is returned when deleting a system template.
	ErrProtected = errors.Sentinel("resource is protected")

	// ErrSessionNotFound is returned for unknown or expired editor sessions.
	ErrSessionNotFound = errors.Sentinel("editor session not found")
)

func invalid(msg string, details ...any) error {
	return errors.WithDetails(errors.WithMessage(ErrInvalidInput, msg), details...)
}
