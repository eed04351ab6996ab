package blocks

import (
	"encoding/json"
	"testing"

	"emperror.dev/errors"
)

func withItemIDs(t *testing.T, ids ...string) {
	t.Helper()
	prev := NewItemID
	i := 0
	NewItemID = func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
	t.Cleanup(func() { NewItemID = prev })
}

func faq(t *testing.T, raw string) *FAQConfig {
	t.Helper()
	cfg, err := Migrate(KindFAQ, []byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	return cfg.(*FAQConfig)
}

func TestAppendAddsItemAndID(t *testing.T) {
	withItemIDs(t, "new-1")
	orig := faq(t, `{"items":[{"id":"a","question":"Q0","answer":"A0"}]}`)

	next, err := Append(orig, "items", json.RawMessage(`{"question":"Q","answer":"A"}`))
	if err != nil {
		t.Fatal(err)
	}
	items := next.(*FAQConfig).Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "a" || items[1].Question != "Q" || items[1].Answer != "A" || items[1].ID != "new-1" {
		t.Errorf("unexpected items: %+v", items)
	}
	if len(orig.Items) != 1 {
		t.Error("Append modified its input")
	}
}

func TestUpdateKeepsExistingID(t *testing.T) {
	orig := faq(t, `{"items":[{"id":"keep","question":"Q","answer":"A"}]}`)
	next, err := Update(orig, "items", 0, json.RawMessage(`{"question":"Q2","answer":"A2"}`))
	if err != nil {
		t.Fatal(err)
	}
	item := next.(*FAQConfig).Items[0]
	if item.ID != "keep" || item.Question != "Q2" {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestRemoveAndMove(t *testing.T) {
	orig := faq(t, `{"items":[{"id":"1"},{"id":"2"},{"id":"3"}]}`)

	moved, err := Move(orig, "items", 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	got := moved.(*FAQConfig).Items
	if got[0].ID != "2" || got[1].ID != "3" || got[2].ID != "1" {
		t.Errorf("unexpected order after move: %+v", got)
	}

	removed, err := Remove(orig, "items", 1)
	if err != nil {
		t.Fatal(err)
	}
	if n := Len(removed, "items"); n != 2 {
		t.Errorf("expected 2 items after remove, got %d", n)
	}
	if _, err := Remove(orig, "items", 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSetNestedField(t *testing.T) {
	cfg, err := New(KindAgentContact)
	if err != nil {
		t.Fatal(err)
	}
	next, err := Set(cfg, "agent.phone", json.RawMessage(`"+62 812 0000"`))
	if err != nil {
		t.Fatal(err)
	}
	if got := next.(*AgentContactConfig).Agent.Phone; got != "+62 812 0000" {
		t.Errorf("agent.phone = %q", got)
	}
}

func TestFieldRule(t *testing.T) {
	gallery, _ := New(KindGallery)
	agent, _ := New(KindAgentContact)

	tests := []struct {
		cfg  Config
		path string
		want string
	}{
		{gallery, "images.0.url", "image"},
		{gallery, "images.0.caption", ""},
		{gallery, "title", ""},
		{agent, "agent.photo", "image"},
		{agent, "agent.email", "email"},
		{agent, "agent", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FieldRule(tt.cfg, tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FieldRule(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
	if _, err := FieldRule(gallery, "images.x.url"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestEditRejections(t *testing.T) {
	hero, _ := New(KindHero)
	gallery, _ := New(KindGallery)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"unknown field", func() error { _, err := Set(hero, "nope", json.RawMessage(`"x"`)); return err }, ErrUnknownField},
		{"empty path", func() error { _, err := Set(hero, "", json.RawMessage(`"x"`)); return err }, ErrUnknownField},
		{"mistyped value", func() error { _, err := Set(gallery, "columns", json.RawMessage(`"x"`)); return err }, ErrInvalidValue},
		{"invalid json", func() error { _, err := Set(gallery, "title", json.RawMessage(`{`)); return err }, ErrInvalidValue},
		{"append to scalar", func() error { _, err := Append(hero, "title", json.RawMessage(`"x"`)); return err }, ErrNotAList},
		{"move out of range", func() error { _, err := Move(gallery, "images", 0, 1); return err }, ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLenOnNonList(t *testing.T) {
	hero, _ := New(KindHero)
	if n := Len(hero, "title"); n != -1 {
		t.Errorf("Len on scalar = %d, want -1", n)
	}
}
