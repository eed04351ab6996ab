package editor

import "emperror.dev/errors"

const (
	ErrNotOpen        = errors.Sentinel("editor is not open")
	ErrAlreadyOpen    = errors.Sentinel("editor is already open")
	ErrSaveInFlight   = errors.Sentinel("a save is already in progress")
	ErrUploadInFlight = errors.Sentinel("an upload is still in progress")
	ErrUnknownOp      = errors.Sentinel("unknown editor operation")

	// ErrPersistence marks a failed write-back. The dialog stays open with its
	// working copy and the save may be retried.
	ErrPersistence = errors.Sentinel("saving the component failed")
)
