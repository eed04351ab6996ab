package components

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
)

func migrate(t *testing.T, kind blocks.Kind, raw string) blocks.Config {
	t.Helper()
	cfg, err := blocks.Migrate(kind, []byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestEmptyListsRenderEmptyState(t *testing.T) {
	tests := []struct {
		name string
		kind blocks.Kind
		raw  string
	}{
		{"gallery", blocks.KindGallery, `{"images":[]}`},
		{"faq", blocks.KindFAQ, `{"items":[]}`},
		{"pricing", blocks.KindPricing, `{"plans":[]}`},
		{"statistics", blocks.KindStatistics, `{"items":[]}`},
		{"timeline", blocks.KindTimeline, `{"items":[]}`},
		{"location", blocks.KindLocation, `{"locations":[]}`},
		{"unit slider", blocks.KindUnitSlider, `{"units":[]}`},
		{"progress slider", blocks.KindProgressSlider, `{"progressItems":[]}`},
		{"form", blocks.KindForm, `{"fields":[]}`},
		{"footer", blocks.KindFooter, `{"companyName":"Paramount Land","sections":[],"socialMedia":[]}`},
		{"agent list empty", blocks.KindAgentContact, `{"agents":[]}`},
		{"agent without name", blocks.KindAgentContact, `{"agent":{"name":""}}`},
		{"agent null", blocks.KindAgentContact, `{"agent":null}`},
		{"features", blocks.KindFeatures, `{"features":[]}`},
		{"testimonial", blocks.KindTestimonial, `{"testimonials":[]}`},
		{"facilities", blocks.KindFacilities, `{"facilities":[]}`},
		{"bank partnership", blocks.KindBankPartnership, `{"banks":[]}`},
		{"title description", blocks.KindTitleDescription, `{"title":""}`},
		{"copyright", blocks.KindCopyright, `{"companyName":"  "}`},
		{"location access", blocks.KindLocationAccess, `{"accessPoints":[],"nearbyLocations":[]}`},
		{"location access hidden lists", blocks.KindLocationAccess, `{"accessPoints":[{"name":"Tol"}],"nearbyLocations":[{"name":"Mall"}],"showAccessPoints":false,"showNearbyLocations":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag, err := Render(migrate(t, tt.kind, tt.raw), &rendering.RenderContext{ComponentID: "c1"})
			if err != nil {
				t.Fatal(err)
			}
			if !frag.Empty || frag.Items != 0 {
				t.Errorf("expected empty fragment, got empty=%v items=%d", frag.Empty, frag.Items)
			}
			msg := EmptyMessage(tt.kind)
			if frag.EmptyMessage != msg || !strings.Contains(string(frag.HTML), msg) {
				t.Errorf("empty message %q not rendered", msg)
			}
			if frag.ComponentID != "c1" || frag.Kind != tt.kind {
				t.Errorf("fragment identity = %q/%q", frag.ComponentID, frag.Kind)
			}
		})
	}
}

func TestFAQEmptyMessage(t *testing.T) {
	if got := EmptyMessage(blocks.KindFAQ); got != "No FAQs available." {
		t.Errorf("EmptyMessage(faq) = %q", got)
	}
}

func TestGalleryColumnsPerViewport(t *testing.T) {
	cfg := migrate(t, blocks.KindGallery, `{"columns":3,"images":[{"url":"/a.jpg"},{"url":"/b.jpg"},{"url":"/c.jpg"},{"url":"/d.jpg"}]}`)
	tests := []struct {
		viewport rendering.Viewport
		want     int
	}{
		{rendering.Desktop, 3},
		{rendering.Tablet, 2},
		{rendering.Mobile, 1},
	}
	for _, tt := range tests {
		frag, err := Render(cfg, &rendering.RenderContext{Viewport: tt.viewport})
		if err != nil {
			t.Fatal(err)
		}
		if frag.Columns != tt.want {
			t.Errorf("%s: columns = %d, want %d", tt.viewport, frag.Columns, tt.want)
		}
		if frag.Items != 4 {
			t.Errorf("%s: items = %d", tt.viewport, frag.Items)
		}
	}
}

func TestListKindsColumnsPerViewport(t *testing.T) {
	tests := []struct {
		kind blocks.Kind
		raw  string
		want [3]int
	}{
		{blocks.KindFeatures, `{"columns":4,"features":[{"title":"A"},{"title":"B"}]}`, [3]int{4, 2, 1}},
		{blocks.KindFeatures, `{"layout":"list","features":[{"title":"A"}]}`, [3]int{1, 1, 1}},
		{blocks.KindTestimonial, `{"testimonials":[{"name":"Budi","content":"Puas"}]}`, [3]int{3, 2, 1}},
		{blocks.KindFacilities, `{"columns":3,"facilities":[{"name":"Kolam"}]}`, [3]int{3, 2, 1}},
		{blocks.KindBankPartnership, `{"banks":[{"name":"Bank BCA"}]}`, [3]int{4, 3, 2}},
		{blocks.KindLocationAccess, `{"accessPoints":[{"name":"Tol"}],"nearbyLocations":[{"name":"Mall"}]}`, [3]int{2, 2, 1}},
	}
	for _, tt := range tests {
		cfg := migrate(t, tt.kind, tt.raw)
		for i, v := range []rendering.Viewport{rendering.Desktop, rendering.Tablet, rendering.Mobile} {
			frag, err := Render(cfg, &rendering.RenderContext{Viewport: v})
			if err != nil {
				t.Fatal(err)
			}
			if frag.Empty || frag.Columns != tt.want[i] {
				t.Errorf("%s %s: columns = %d, want %d (empty=%v)", tt.kind, v, frag.Columns, tt.want[i], frag.Empty)
			}
		}
	}
}

func TestTestimonialRatingAndInitials(t *testing.T) {
	cfg := migrate(t, blocks.KindTestimonial, `{"testimonials":[{"name":"Siti Rahma","content":"Lokasi strategis","rating":9}]}`)
	frag, err := Render(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	html := string(frag.HTML)
	if !strings.Contains(html, "★★★★★") || strings.Contains(html, "☆") {
		t.Error("rating not clamped to five stars")
	}
	if !strings.Contains(html, ">SR<") {
		t.Error("initials missing for testimonial without avatar")
	}
}

func TestCopyrightText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"defaults", `{}`, "© 2026 Paramount Land. All rights reserved."},
		{"fixed year", `{"year":"2024"}`, "© 2024 Paramount Land. All rights reserved."},
		{"no year", `{"showYear":false,"showAllRightsReserved":false}`, "© Paramount Land"},
		{"additional text", `{"additionalText":"Jakarta."}`, "© 2026 Paramount Land. All rights reserved. Jakarta."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := migrate(t, blocks.KindCopyright, tt.raw).(*blocks.CopyrightConfig)
			if got := CopyrightText(cfg, 2026); got != tt.want {
				t.Errorf("CopyrightText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleDescriptionParagraphs(t *testing.T) {
	cfg := migrate(t, blocks.KindTitleDescription, `{"title":"Cluster Melati","description":"Baris satu\n\nBaris dua","maxWidth":"800px"}`)
	frag, err := Render(cfg, &rendering.RenderContext{Viewport: rendering.Mobile})
	if err != nil {
		t.Fatal(err)
	}
	html := string(frag.HTML)
	if frag.Items != 2 || !strings.Contains(html, "<p>Baris dua</p>") {
		t.Errorf("paragraphs not split: items=%d", frag.Items)
	}
	if !strings.Contains(html, "max-w-6xl") || !strings.Contains(html, "text-2xl") {
		t.Error("legacy width or mobile title size not applied")
	}

	hidden := migrate(t, blocks.KindTitleDescription, `{"title":"T","showDescription":false,"showSubtitle":false}`)
	frag, _ = Render(hidden, nil)
	if frag.Items != 0 || strings.Contains(string(frag.HTML), "<h3") {
		t.Error("hidden subtitle or description rendered")
	}
}

func TestSlidersPerViewport(t *testing.T) {
	cfg := migrate(t, blocks.KindUnitSlider, `{"units":[{"name":"A"},{"name":"B"},{"name":"C"},{"name":"D"}]}`)
	for viewport, want := range map[rendering.Viewport]int{rendering.Desktop: 3, rendering.Tablet: 2, rendering.Mobile: 1} {
		frag, err := Render(cfg, &rendering.RenderContext{Viewport: viewport})
		if err != nil {
			t.Fatal(err)
		}
		if frag.Columns != want {
			t.Errorf("%s: per slide = %d, want %d", viewport, frag.Columns, want)
		}
	}
}

func TestSelectImage(t *testing.T) {
	both := migrate(t, blocks.KindCustomImage, `{"desktopImage":"/d.jpg","mobileImage":"/m.jpg"}`).(*blocks.CustomImageConfig)
	desktopOnly := migrate(t, blocks.KindCustomImage, `{"desktopImage":"/d.jpg"}`).(*blocks.CustomImageConfig)
	none := migrate(t, blocks.KindCustomImage, `{}`).(*blocks.CustomImageConfig)

	tests := []struct {
		name     string
		cfg      *blocks.CustomImageConfig
		viewport rendering.Viewport
		want     string
	}{
		{"mobile uses mobile image", both, rendering.Mobile, "/m.jpg"},
		{"tablet uses desktop image", both, rendering.Tablet, "/d.jpg"},
		{"desktop uses desktop image", both, rendering.Desktop, "/d.jpg"},
		{"mobile falls back to desktop", desktopOnly, rendering.Mobile, "/d.jpg"},
		{"nothing set", none, rendering.Mobile, blocks.PlaceholderImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectImage(tt.cfg, tt.viewport); got != tt.want {
				t.Errorf("SelectImage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCustomImagePlaceholderIsEmpty(t *testing.T) {
	frag, err := Render(migrate(t, blocks.KindCustomImage, `{}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !frag.Empty || frag.Image != blocks.PlaceholderImage {
		t.Errorf("expected placeholder empty state, got %+v", frag)
	}
}

func TestRenderDoesNotMutateConfig(t *testing.T) {
	raw := `{"progressItems":[{"title":"Struktur","percentage":140},{"title":"Atap","percentage":-5}]}`
	for _, kind := range blocks.Kinds() {
		cfg := migrate(t, kind, raw)
		before, _ := blocks.Encode(cfg)
		for _, v := range []rendering.Viewport{rendering.Desktop, rendering.Tablet, rendering.Mobile} {
			if _, err := Render(cfg, &rendering.RenderContext{Viewport: v, Editable: true}); err != nil {
				t.Fatalf("%s/%s: %v", kind, v, err)
			}
		}
		after, _ := blocks.Encode(cfg)
		if !bytes.Equal(before, after) {
			t.Errorf("%s: config changed by render", kind)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cfg := migrate(t, blocks.KindPromo, `{"title":"Promo Ramadhan","validUntil":"2026-03-10"}`)
	rc := &rendering.RenderContext{ComponentID: "p1", Viewport: rendering.Tablet, Now: now}

	a, err := Render(cfg, rc)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Render(cfg, rc)
	if a.HTML != b.HTML {
		t.Error("same input rendered differently")
	}
}

func TestEditableShowsEditControl(t *testing.T) {
	cfg := migrate(t, blocks.KindHero, `{}`)
	public, _ := Render(cfg, &rendering.RenderContext{ComponentID: "h1"})
	editable, _ := Render(cfg, &rendering.RenderContext{ComponentID: "h1", Editable: true})
	if strings.Contains(string(public.HTML), `data-edit=`) {
		t.Error("public render carries edit control")
	}
	if !strings.Contains(string(editable.HTML), `data-edit="h1"`) {
		t.Error("editable render lacks edit control")
	}
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	frag, err := Render(migrate(t, blocks.KindContent, `{"content":"**Hello**<script>alert(1)</script>"}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	html := string(frag.HTML)
	if !strings.Contains(html, "<strong>Hello</strong>") {
		t.Errorf("markdown not rendered: %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Error("raw script survived markdown rendering")
	}
}

func TestPromoCountdown(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		until string
		want  Countdown
	}{
		{"later today", "2026-03-01", Countdown{Hours: 11, Minutes: 59, Seconds: 59}},
		{"days ahead", "2026-03-03", Countdown{Days: 2, Hours: 11, Minutes: 59, Seconds: 59}},
		{"past", "2026-02-28", Countdown{Expired: true}},
		{"garbage", "soon", Countdown{Expired: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PromoCountdown(tt.until, now); got != tt.want {
				t.Errorf("PromoCountdown(%q) = %+v, want %+v", tt.until, got, tt.want)
			}
		})
	}
}

func TestFallbackIsMarkedFailed(t *testing.T) {
	frag := Fallback(blocks.KindGallery, &rendering.RenderContext{ComponentID: "g1"})
	if !frag.Failed || !frag.Empty || frag.ComponentID != "g1" || frag.Kind != blocks.KindGallery {
		t.Errorf("unexpected fallback: %+v", frag)
	}
}
