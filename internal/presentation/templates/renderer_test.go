package templates

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
)

func testPage() *content.LandingPage {
	return &content.LandingPage{
		ID:       "page-1",
		Title:    "Grand Residence",
		Slug:     "grand-residence",
		Status:   content.StatusPublished,
		Settings: json.RawMessage(`{"lang":"id","primaryColor":"#0f766e"}`),
		Content: []content.ComponentInstance{
			{ID: "hero-1", Type: blocks.KindHero, Config: json.RawMessage(`{"title":"Selamat Datang"}`)},
			{ID: "broken-1", Type: blocks.Kind("carousel"), Config: json.RawMessage(`{}`)},
			{ID: "faq-1", Type: blocks.KindFAQ, Config: json.RawMessage(`"not an object"`)},
			{ID: "gallery-1", Type: blocks.KindGallery, Config: json.RawMessage(`{"images":[{"src":"/a.jpg"}]}`)},
		},
	}
}

func TestRenderFragmentsIsolatesFailures(t *testing.T) {
	r := NewPageRenderer(logging.NewDiscardLogger())
	frags := r.RenderFragments(testPage(), rendering.RenderContext{Viewport: rendering.Mobile})

	if len(frags) != 4 {
		t.Fatalf("expected 4 fragments, got %d", len(frags))
	}
	if frags[0].Failed || !strings.Contains(string(frags[0].HTML), "Selamat Datang") {
		t.Errorf("hero not rendered: %+v", frags[0])
	}
	if !frags[1].Failed || !frags[1].Empty || frags[1].ComponentID != "broken-1" {
		t.Errorf("unknown kind should fall back: %+v", frags[1])
	}
	if frags[2].Failed || !frags[2].Empty {
		t.Errorf("non-object config should migrate to the empty state: %+v", frags[2])
	}
	if frags[3].Items != 1 || frags[3].Columns != 1 {
		t.Errorf("legacy gallery src not rendered at mobile: %+v", frags[3])
	}
}

func TestRenderPageDocument(t *testing.T) {
	r := NewPageRenderer(logging.NewDiscardLogger())
	out, err := r.RenderPage(testPage(), rendering.RenderContext{Now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatal(err)
	}
	html := string(out)
	for _, want := range []string{`<html lang="id">`, `<title>Grand Residence</title>`, `data-viewport="desktop"`, `id="lp-hero-1"`, `id="lp-gallery-1"`} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Index(html, "lp-hero-1") > strings.Index(html, "lp-gallery-1") {
		t.Error("components rendered out of order")
	}
}

func TestRenderComponentLeavesStoredConfig(t *testing.T) {
	r := NewPageRenderer(logging.NewDiscardLogger())
	ci := &content.ComponentInstance{ID: "g", Type: blocks.KindGallery, Config: json.RawMessage(`{"images":[{"src":"/a.jpg"}]}`)}
	before := string(ci.Config)
	r.RenderComponent(ci, rendering.RenderContext{})
	if string(ci.Config) != before {
		t.Error("stored config rewritten by render")
	}
}
