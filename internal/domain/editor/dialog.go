// Package editor holds the component edit dialog: a working copy of one
// component config that is only written back when saved.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
)

// State is the dialog lifecycle position.
type State int

const (
	Closed State = iota
	Open
	Saving
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Saving:
		return "saving"
	default:
		return "closed"
	}
}

// UpdateFunc persists a saved config. It is the only way a dialog writes
// anything outside itself.
type UpdateFunc func(ctx context.Context, cfg blocks.Config) error

// Operation is one edit to the working copy.
type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Index int             `json:"index"`
	To    int             `json:"to"`
	Value json.RawMessage `json:"value"`
}

const (
	OpSet    = "set"
	OpAppend = "append"
	OpUpdate = "update"
	OpRemove = "remove"
	OpMove   = "move"
)

// Dialog edits one component config. All edits land on a private working
// copy; the config passed to Open is never touched.
type Dialog struct {
	mu       sync.Mutex
	state    State
	kind     blocks.Kind
	working  blocks.Config
	uploads  map[string]bool
	onUpdate UpdateFunc
}

// NewDialog returns a closed dialog that saves through onUpdate.
func NewDialog(onUpdate UpdateFunc) *Dialog {
	return &Dialog{
		onUpdate: onUpdate,
		uploads:  make(map[string]bool),
	}
}

// Open snapshots current into the working copy.
func (d *Dialog) Open(current blocks.Config) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Closed {
		return ErrAlreadyOpen
	}
	working, err := blocks.Clone(current)
	if err != nil {
		return errors.Wrap(err, "snapshot config")
	}
	d.kind = current.Kind()
	d.working = working
	d.uploads = make(map[string]bool)
	d.state = Open
	return nil
}

func (d *Dialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Dialog) Kind() blocks.Kind {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.kind
}

// Working returns a copy of the working config.
func (d *Dialog) Working() (blocks.Config, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Closed {
		return nil, ErrNotOpen
	}
	return blocks.Clone(d.working)
}

// Apply runs op against the working copy. A rejected op leaves the working
// copy as it was.
func (d *Dialog) Apply(op Operation) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.editable(); err != nil {
		return err
	}

	var (
		next blocks.Config
		err  error
	)
	switch op.Op {
	case OpSet:
		next, err = blocks.Set(d.working, op.Path, op.Value)
	case OpAppend:
		next, err = blocks.Append(d.working, op.Path, op.Value)
	case OpUpdate:
		next, err = blocks.Update(d.working, op.Path, op.Index, op.Value)
	case OpRemove:
		next, err = blocks.Remove(d.working, op.Path, op.Index)
	case OpMove:
		next, err = blocks.Move(d.working, op.Path, op.Index, op.To)
	default:
		return errors.WithDetails(ErrUnknownOp, "op", op.Op)
	}
	if err != nil {
		return err
	}
	d.working = next
	return nil
}

// BeginUpload marks path as receiving an upload. Only one upload per path
// may run at a time, and Save is refused while any is pending.
func (d *Dialog) BeginUpload(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.editable(); err != nil {
		return err
	}
	if d.uploads[path] {
		return errors.WithDetails(ErrUploadInFlight, "path", path)
	}
	d.uploads[path] = true
	return nil
}

// CompleteUpload stores the hosted url at path.
func (d *Dialog) CompleteUpload(path, url string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.uploads, path)
	if d.state != Open {
		return ErrNotOpen
	}
	value, _ := json.Marshal(url)
	next, err := blocks.Set(d.working, path, value)
	if err != nil {
		return err
	}
	d.working = next
	return nil
}

// FailUpload clears the in-flight mark and leaves the working copy alone.
func (d *Dialog) FailUpload(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.uploads, path)
}

// Save validates the working copy and hands it to the update callback. On
// a validation error nothing is sent. On a callback error the dialog
// returns to Open with the working copy intact.
func (d *Dialog) Save(ctx context.Context) (blocks.Config, error) {
	d.mu.Lock()
	if err := d.editable(); err != nil {
		d.mu.Unlock()
		return nil, err
	}
	if len(d.uploads) > 0 {
		d.mu.Unlock()
		return nil, ErrUploadInFlight
	}
	if err := blocks.Validate(d.working); err != nil {
		d.mu.Unlock()
		return nil, err
	}
	cfg, err := blocks.Clone(d.working)
	if err != nil {
		d.mu.Unlock()
		return nil, err
	}
	d.state = Saving
	d.mu.Unlock()

	updateErr := d.onUpdate(ctx, cfg)

	d.mu.Lock()
	defer d.mu.Unlock()
	if updateErr != nil {
		d.state = Open
		return nil, fmt.Errorf("%w: %w", ErrPersistence, updateErr)
	}
	d.state = Closed
	d.working = nil
	return cfg, nil
}

// Cancel discards the working copy.
func (d *Dialog) Cancel() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case Closed:
		return ErrNotOpen
	case Saving:
		return ErrSaveInFlight
	}
	d.state = Closed
	d.working = nil
	d.uploads = make(map[string]bool)
	return nil
}

func (d *Dialog) editable() error {
	switch d.state {
	case Closed:
		return ErrNotOpen
	case Saving:
		return ErrSaveInFlight
	}
	return nil
}
