package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
)

func mustMigrate(t *testing.T, kind blocks.Kind, raw string) blocks.Config {
	t.Helper()
	cfg, err := blocks.Migrate(kind, []byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func encode(t *testing.T, cfg blocks.Config) []byte {
	t.Helper()
	b, err := blocks.Encode(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

type recorder struct {
	calls []blocks.Config
	err   error
}

func (r *recorder) update(_ context.Context, cfg blocks.Config) error {
	r.calls = append(r.calls, cfg)
	return r.err
}

func TestCancelLeavesSourceUntouched(t *testing.T) {
	src := mustMigrate(t, blocks.KindHero, `{"title":"Original"}`)
	before := encode(t, src)

	rec := &recorder{}
	d := NewDialog(rec.update)
	if err := d.Open(src); err != nil {
		t.Fatal(err)
	}
	if err := d.Apply(Operation{Op: OpSet, Path: "title", Value: json.RawMessage(`"Edited"`)}); err != nil {
		t.Fatal(err)
	}
	if err := d.Cancel(); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(before, encode(t, src)) {
		t.Error("source config changed during edit")
	}
	if len(rec.calls) != 0 {
		t.Errorf("update called %d times on cancel", len(rec.calls))
	}
	if d.State() != Closed {
		t.Errorf("state = %s, want closed", d.State())
	}
}

func TestAppendThenSave(t *testing.T) {
	rec := &recorder{}
	d := NewDialog(rec.update)
	if err := d.Open(mustMigrate(t, blocks.KindFAQ, `{}`)); err != nil {
		t.Fatal(err)
	}
	err := d.Apply(Operation{Op: OpAppend, Path: "items", Value: json.RawMessage(`{"question":"Q","answer":"A"}`)})
	if err != nil {
		t.Fatal(err)
	}

	saved, err := d.Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("update called %d times", len(rec.calls))
	}
	items := saved.(*blocks.FAQConfig).Items
	if len(items) != 1 || items[0].Question != "Q" || items[0].Answer != "A" || items[0].ID == "" {
		t.Errorf("unexpected saved items: %+v", items)
	}
	if d.State() != Closed {
		t.Errorf("state = %s after save", d.State())
	}
}

func TestSaveRejectsTransientImage(t *testing.T) {
	rec := &recorder{}
	d := NewDialog(rec.update)
	if err := d.Open(mustMigrate(t, blocks.KindCustomImage, `{}`)); err != nil {
		t.Fatal(err)
	}
	if err := d.Apply(Operation{Op: OpSet, Path: "desktopImage", Value: json.RawMessage(`"data:image/png;base64,AAAA"`)}); err != nil {
		t.Fatal(err)
	}

	_, err := d.Save(context.Background())
	verr, ok := blocks.AsValidationError(err)
	if !ok {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if verr.Fields[0].Path != "desktopImage" {
		t.Errorf("path = %q", verr.Fields[0].Path)
	}
	if len(rec.calls) != 0 {
		t.Error("update called for an invalid config")
	}
	if d.State() != Open {
		t.Errorf("state = %s, want open", d.State())
	}
}

func TestSaveFailureKeepsWorkingCopy(t *testing.T) {
	rec := &recorder{err: errors.New("database is locked")}
	d := NewDialog(rec.update)
	if err := d.Open(mustMigrate(t, blocks.KindHero, `{}`)); err != nil {
		t.Fatal(err)
	}
	if err := d.Apply(Operation{Op: OpSet, Path: "title", Value: json.RawMessage(`"Draft"`)}); err != nil {
		t.Fatal(err)
	}

	if _, err := d.Save(context.Background()); !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if d.State() != Open {
		t.Fatalf("state = %s, want open", d.State())
	}
	working, err := d.Working()
	if err != nil {
		t.Fatal(err)
	}
	if working.(*blocks.HeroConfig).Title != "Draft" {
		t.Error("working copy lost after failed save")
	}

	rec.err = nil
	if _, err := d.Save(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(rec.calls) != 2 {
		t.Errorf("update called %d times, want 2", len(rec.calls))
	}
}

func TestSaveInFlightRefusesEdits(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	d := NewDialog(func(context.Context, blocks.Config) error {
		close(entered)
		<-release
		return nil
	})
	if err := d.Open(mustMigrate(t, blocks.KindHero, `{}`)); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := d.Save(context.Background())
		done <- err
	}()
	<-entered

	if d.State() != Saving {
		t.Errorf("state = %s, want saving", d.State())
	}
	if _, err := d.Save(context.Background()); !errors.Is(err, ErrSaveInFlight) {
		t.Errorf("second save: expected ErrSaveInFlight, got %v", err)
	}
	if err := d.Apply(Operation{Op: OpSet, Path: "title", Value: json.RawMessage(`"x"`)}); !errors.Is(err, ErrSaveInFlight) {
		t.Errorf("apply: expected ErrSaveInFlight, got %v", err)
	}
	if err := d.Cancel(); !errors.Is(err, ErrSaveInFlight) {
		t.Errorf("cancel: expected ErrSaveInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestUploadInFlightBlocksSave(t *testing.T) {
	rec := &recorder{}
	d := NewDialog(rec.update)
	if err := d.Open(mustMigrate(t, blocks.KindCustomImage, `{}`)); err != nil {
		t.Fatal(err)
	}
	if err := d.BeginUpload("desktopImage"); err != nil {
		t.Fatal(err)
	}
	if err := d.BeginUpload("desktopImage"); !errors.Is(err, ErrUploadInFlight) {
		t.Errorf("expected ErrUploadInFlight for a second upload, got %v", err)
	}
	if _, err := d.Save(context.Background()); !errors.Is(err, ErrUploadInFlight) {
		t.Fatalf("expected ErrUploadInFlight, got %v", err)
	}

	if err := d.CompleteUpload("desktopImage", "https://cdn.example.com/a.webp"); err != nil {
		t.Fatal(err)
	}
	saved, err := d.Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := saved.(*blocks.CustomImageConfig).DesktopImage; got != "https://cdn.example.com/a.webp" {
		t.Errorf("desktopImage = %q", got)
	}
}

func TestFailedUploadLeavesWorkingCopy(t *testing.T) {
	d := NewDialog((&recorder{}).update)
	if err := d.Open(mustMigrate(t, blocks.KindCustomImage, `{"desktopImage":"/old.jpg"}`)); err != nil {
		t.Fatal(err)
	}
	if err := d.BeginUpload("desktopImage"); err != nil {
		t.Fatal(err)
	}
	d.FailUpload("desktopImage")

	working, _ := d.Working()
	if got := working.(*blocks.CustomImageConfig).DesktopImage; got != "/old.jpg" {
		t.Errorf("desktopImage = %q after failed upload", got)
	}
	if _, err := d.Save(context.Background()); err != nil {
		t.Errorf("save after failed upload: %v", err)
	}
}

func TestLifecycleErrors(t *testing.T) {
	d := NewDialog((&recorder{}).update)
	if _, err := d.Save(context.Background()); !errors.Is(err, ErrNotOpen) {
		t.Errorf("save on closed: %v", err)
	}
	if err := d.Cancel(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("cancel on closed: %v", err)
	}

	cfg := mustMigrate(t, blocks.KindHero, `{}`)
	if err := d.Open(cfg); err != nil {
		t.Fatal(err)
	}
	if err := d.Open(cfg); !errors.Is(err, ErrAlreadyOpen) {
		t.Errorf("second open: %v", err)
	}
	if err := d.Apply(Operation{Op: "rename"}); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("unknown op: %v", err)
	}
	if err := d.Apply(Operation{Op: OpSet, Path: "missing", Value: json.RawMessage(`1`)}); !errors.Is(err, blocks.ErrUnknownField) {
		t.Errorf("unknown field: %v", err)
	}
}
