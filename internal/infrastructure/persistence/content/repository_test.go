package content

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/content"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/manager"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/caching/stores"
	schema "github.com/AtRiskMedia/landstack-go/internal/infrastructure/database"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/monitoring"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/persistence/database"
)

type fixture struct {
	pages     *LandingPageRepository
	templates *ComponentTemplateRepository
	inquiries *InquiryRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	logger := logging.NewDiscardLogger()

	db, err := database.OpenMemory(ctx, logger)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := schema.NewTableCreator().CreateSchema(ctx, db.DB); err != nil {
		t.Fatal(err)
	}

	cache := manager.NewManager(stores.NewMemoryStore(time.Minute, time.Minute), time.Minute, time.Minute, monitoring.NewCacheMonitor(), logger)
	return &fixture{
		pages:     NewLandingPageRepository(db.DB, cache, logger),
		templates: NewComponentTemplateRepository(db.DB, logger),
		inquiries: NewInquiryRepository(db.DB, logger),
	}
}

func samplePage(id, slug string) *content.LandingPage {
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	return &content.LandingPage{
		ID:        id,
		Title:     "Cluster Anggrek",
		Slug:      slug,
		Status:    content.StatusDraft,
		Settings:  json.RawMessage(`{}`),
		CreatedAt: now,
		UpdatedAt: now,
		Content: []content.ComponentInstance{
			{ID: id + "-hero", Type: blocks.KindHero, Config: json.RawMessage(`{"title":"Hero"}`), Order: 0, CreatedAt: now, UpdatedAt: now},
			{ID: id + "-faq", Type: blocks.KindFAQ, Config: json.RawMessage(`{"items":[]}`), Order: 1, CreatedAt: now, UpdatedAt: now},
		},
	}
}

func TestStoreAndFind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.pages.Store(ctx, samplePage("p1", "anggrek")); err != nil {
		t.Fatal(err)
	}
	page, err := f.pages.FindBySlug(ctx, "anggrek")
	if err != nil {
		t.Fatal(err)
	}
	if page.ID != "p1" || len(page.Content) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Content[0].Type != blocks.KindHero || page.Content[1].Type != blocks.KindFAQ {
		t.Errorf("components out of order: %s, %s", page.Content[0].Type, page.Content[1].Type)
	}
	if _, err := f.pages.FindByID(ctx, "missing"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateSlugConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.pages.Store(ctx, samplePage("p1", "same")); err != nil {
		t.Fatal(err)
	}
	if err := f.pages.Store(ctx, samplePage("p2", "same")); !errors.Is(err, repositories.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestReplaceComponentConfigInvalidatesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.pages.Store(ctx, samplePage("p1", "anggrek")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.pages.FindByID(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	if err := f.pages.ReplaceComponentConfig(ctx, "p1", "p1-hero", json.RawMessage(`{"title":"Baru"}`)); err != nil {
		t.Fatal(err)
	}

	page, err := f.pages.FindByID(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if got := string(page.Component("p1-hero").Config); got != `{"title":"Baru"}` {
		t.Errorf("config = %s", got)
	}
	if string(page.Component("p1-faq").Config) != `{"items":[]}` {
		t.Error("sibling component changed")
	}

	err = f.pages.ReplaceComponentConfig(ctx, "p1", "nope", json.RawMessage(`{}`))
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddAndRemoveComponent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.pages.Store(ctx, samplePage("p1", "anggrek")); err != nil {
		t.Fatal(err)
	}
	ci := &content.ComponentInstance{ID: "p1-promo", Type: blocks.KindPromo, Config: json.RawMessage(`{}`), UpdatedAt: time.Now()}
	if err := f.pages.AddComponent(ctx, "p1", ci); err != nil {
		t.Fatal(err)
	}
	if ci.Order != 2 {
		t.Errorf("order = %d, want 2", ci.Order)
	}
	if err := f.pages.RemoveComponent(ctx, "p1", "p1-faq"); err != nil {
		t.Fatal(err)
	}
	if err := f.pages.RemoveComponent(ctx, "p1", "p1-faq"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second remove, got %v", err)
	}

	page, _ := f.pages.FindByID(ctx, "p1")
	if len(page.Content) != 2 || page.Content[1].ID != "p1-promo" {
		t.Errorf("unexpected components: %+v", page.Content)
	}
}

func TestFindExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired := samplePage("p1", "expired")
	expired.Status = content.StatusPublished
	expired.ExpiresAt = &past
	running := samplePage("p2", "running")
	running.Status = content.StatusPublished
	running.ExpiresAt = &future
	draft := samplePage("p3", "draft")
	draft.ExpiresAt = &past

	for _, p := range []*content.LandingPage{expired, running, draft} {
		if err := f.pages.Store(ctx, p); err != nil {
			t.Fatal(err)
		}
	}
	pages, err := f.pages.FindExpired(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 1 || pages[0].ID != "p1" {
		t.Errorf("expired pages = %+v", pages)
	}
}

func TestInquiriesNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if err := f.pages.Store(ctx, samplePage("p1", "anggrek")); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"Budi", "Sari"} {
		inq := &content.Inquiry{
			ID:            name,
			LandingPageID: "p1",
			Name:          name,
			Phone:         "0812",
			Fields:        map[string]string{"budget": "500jt"},
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := f.inquiries.Store(ctx, inq); err != nil {
			t.Fatal(err)
		}
	}

	list, err := f.inquiries.ListByPage(ctx, "p1", 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != "Sari" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if list[1].Fields["budget"] != "500jt" || !list[1].CreatedAt.Equal(base) {
		t.Errorf("round trip lost data: %+v", list[1])
	}

	if err := f.pages.Delete(ctx, "p1"); err != nil {
		t.Fatal(err)
	}
	list, _ = f.inquiries.ListByPage(ctx, "p1", 10, 0)
	if len(list) != 0 {
		t.Errorf("inquiries survived page delete: %d", len(list))
	}
}

func TestTemplatesSystemFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, tpl := range []*content.ComponentTemplate{
		{ID: "t1", Name: "A custom hero", Type: blocks.KindHero, Config: json.RawMessage(`{}`), CreatedAt: now, UpdatedAt: now},
		{ID: "t2", Name: "Z system hero", Type: blocks.KindHero, Config: json.RawMessage(`{}`), IsSystem: true, CreatedAt: now, UpdatedAt: now},
		{ID: "t3", Name: "FAQ", Type: blocks.KindFAQ, Config: json.RawMessage(`{}`), CreatedAt: now, UpdatedAt: now},
	} {
		if err := f.templates.Store(ctx, tpl); err != nil {
			t.Fatal(err)
		}
	}

	heroes, err := f.templates.List(ctx, string(blocks.KindHero))
	if err != nil {
		t.Fatal(err)
	}
	if len(heroes) != 2 || heroes[0].ID != "t2" {
		t.Errorf("unexpected hero templates: %+v", heroes)
	}
	if err := f.templates.Delete(ctx, "missing"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
