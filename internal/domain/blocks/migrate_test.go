package blocks

import (
	"bytes"
	"encoding/json"
	"testing"

	"emperror.dev/errors"
)

var rawCorpus = []string{
	``,
	`null`,
	`{}`,
	`[]`,
	`"just a string"`,
	`42`,
	`{not json`,
	`{"title":5}`,
	`{"title":"Custom","subtitle":null}`,
	`{"customFlag":true,"nested":{"a":[1,2,3]}}`,
	`{"items":"nope","images":{},"columns":"wide"}`,
	`{"image":"/legacy.jpg","buttonText":"Go","buttonUrl":"https://example.com"}`,
	`{"images":[{"src":"/a.jpg"},{"url":"/b.jpg","alt":"B"}]}`,
	`{"items":[{"question":"Q1","answer":"A1"}],"searchable":false}`,
	`{"agent":null,"agents":[{"name":"A","position":"Lead"}]}`,
	`{"mainLocation":{"address":"Jl. TB Simatupang"},"accessPoints":[{"category":"Transportasi","items":[{"name":"MRT","distance":"500m"}]}],"nearbyPlaces":[{"name":"Mall","category":"Shopping"}]}`,
}

func TestMigrateIsIdempotentForEveryKind(t *testing.T) {
	for _, kind := range Kinds() {
		for _, raw := range rawCorpus {
			first, err := Migrate(kind, []byte(raw))
			if err != nil {
				t.Fatalf("%s %q: migrate: %v", kind, raw, err)
			}
			once, err := Encode(first)
			if err != nil {
				t.Fatalf("%s %q: encode: %v", kind, raw, err)
			}
			second, err := Migrate(kind, once)
			if err != nil {
				t.Fatalf("%s %q: second migrate: %v", kind, raw, err)
			}
			twice, err := Encode(second)
			if err != nil {
				t.Fatalf("%s %q: second encode: %v", kind, raw, err)
			}
			if !bytes.Equal(once, twice) {
				t.Errorf("%s %q: not idempotent\n first: %s\nsecond: %s", kind, raw, once, twice)
			}
		}
	}
}

func TestMigrateUnknownKind(t *testing.T) {
	_, err := Migrate(Kind("carousel"), []byte(`{}`))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestMigrateFillsDefaults(t *testing.T) {
	cfg, err := Migrate(KindGallery, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := cfg.(*GalleryConfig)
	if g.Columns != 3 || g.Layout != "grid" || !Bool(g.ShowCaptions) {
		t.Errorf("defaults not applied: %+v", g)
	}
	if g.Images == nil || len(g.Images) != 0 {
		t.Errorf("expected empty image list, got %#v", g.Images)
	}
}

func TestMigrateKeepsExplicitFalse(t *testing.T) {
	cfg, err := Migrate(KindFAQ, []byte(`{"searchable":false}`))
	if err != nil {
		t.Fatal(err)
	}
	if Bool(cfg.(*FAQConfig).Searchable) {
		t.Error("stored false was replaced by the default")
	}
}

func TestMigrateDropsMistypedField(t *testing.T) {
	cfg, err := Migrate(KindGallery, []byte(`{"columns":"wide","title":"Kept"}`))
	if err != nil {
		t.Fatal(err)
	}
	g := cfg.(*GalleryConfig)
	if g.Columns != 3 {
		t.Errorf("mistyped columns should fall back to 3, got %d", g.Columns)
	}
	if g.Title != "Kept" {
		t.Errorf("well-typed sibling lost: %q", g.Title)
	}
}

func TestLegacyImageAlias(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"legacy only", `{"image":"a.jpg"}`, "a.jpg"},
		{"both present", `{"image":"a.jpg","desktopImage":"d.jpg"}`, "d.jpg"},
		{"current only", `{"desktopImage":"d.jpg"}`, "d.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Migrate(KindCustomImage, []byte(tt.raw))
			if err != nil {
				t.Fatal(err)
			}
			if got := cfg.(*CustomImageConfig).DesktopImage; got != tt.want {
				t.Errorf("desktopImage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLegacyGallerySrcAlias(t *testing.T) {
	cfg, err := Migrate(KindGallery, []byte(`{"images":[{"src":"/old.jpg"},{"src":"/x.jpg","url":"/new.jpg"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	images := cfg.(*GalleryConfig).Images
	if images[0].URL != "/old.jpg" || images[1].URL != "/new.jpg" {
		t.Errorf("unexpected urls: %q %q", images[0].URL, images[1].URL)
	}
}

func TestLegacyCTAButtonAlias(t *testing.T) {
	cfg, err := Migrate(KindCTA, []byte(`{"buttonText":"Call","buttonUrl":"tel:123"}`))
	if err != nil {
		t.Fatal(err)
	}
	b := cfg.(*CTAConfig).PrimaryButton
	if b.Text != "Call" || b.URL != "tel:123" {
		t.Errorf("primary button = %+v", b)
	}
}

func TestLegacyAgentsPromotion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"list only", `{"agents":[{"name":"A"},{"name":"B"}]}`, "A"},
		{"null agent", `{"agent":null,"agents":[{"name":"A"}]}`, "A"},
		{"stored agent wins", `{"agent":{"name":"S"},"agents":[{"name":"A"}]}`, "S"},
		{"empty list", `{"agents":[]}`, ""},
		{"blank agent", `{"agent":{"name":""}}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Migrate(KindAgentContact, []byte(tt.raw))
			if err != nil {
				t.Fatal(err)
			}
			if got := cfg.(*AgentContactConfig).Agent.Name; got != tt.want {
				t.Errorf("agent.name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLegacyLocationAccessShape(t *testing.T) {
	raw := `{
		"mainLocation": {"name": "Paramount Land Residence", "address": "Jl. TB Simatupang No. 1"},
		"accessPoints": [
			{"category": "Transportasi", "items": [
				{"name": "Stasiun MRT Lebak Bulus", "distance": "500m", "time": "5 menit jalan kaki"},
				{"name": "Tol Dalam Kota", "distance": "1km", "time": "5 menit berkendara"}
			]},
			{"category": "Pendidikan", "items": [{"name": "SMP Internasional", "distance": "1.2km"}]}
		],
		"nearbyPlaces": [{"name": "RS Pondok Indah", "category": "Hospital", "distance": "1.5km", "time": "8 menit"}]
	}`
	cfg, err := Migrate(KindLocationAccess, []byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	c := cfg.(*LocationAccessConfig)
	if c.Address != "Jl. TB Simatupang No. 1" {
		t.Errorf("address = %q", c.Address)
	}
	if len(c.AccessPoints) != 3 || c.AccessPoints[2].Category != "Pendidikan" || c.AccessPoints[0].Time != "5 menit jalan kaki" {
		t.Errorf("access points not flattened: %+v", c.AccessPoints)
	}
	if len(c.NearbyLocations) != 1 || c.NearbyLocations[0].Type != "hospital" || c.NearbyLocations[0].Description != "8 menit" {
		t.Errorf("nearby places not mapped: %+v", c.NearbyLocations)
	}

	current, err := Migrate(KindLocationAccess, []byte(`{"address":"Baru","mainLocation":{"address":"Lama"},"nearbyLocations":[],"nearbyPlaces":[{"name":"X"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if c := current.(*LocationAccessConfig); c.Address != "Baru" || len(c.NearbyLocations) != 0 {
		t.Errorf("current fields overridden by legacy ones: %q %d", c.Address, len(c.NearbyLocations))
	}
}

func TestUnknownFieldsSurviveEncode(t *testing.T) {
	cfg, err := Migrate(KindHero, []byte(`{"title":"T","trackingPixel":{"id":"px-1"}}`))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Encode(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatal(err)
	}
	if string(doc["trackingPixel"]) != `{"id":"px-1"}` {
		t.Errorf("unknown field not preserved: %s", out)
	}
	if _, ok := cfg.(*HeroConfig).Unknown()["trackingPixel"]; !ok {
		t.Error("Unknown() does not report the preserved field")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"hero", KindHero},
		{"custom-image", KindCustomImage},
		{"customImage", KindCustomImage},
		{"custom_image", KindCustomImage},
		{" unitSlider ", KindUnitSlider},
		{"agent-contact", KindAgentContact},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("carousel"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg, err := Migrate(KindFAQ, []byte(`{"items":[{"id":"1","question":"Q","answer":"A"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	clone, err := Clone(cfg)
	if err != nil {
		t.Fatal(err)
	}
	clone.(*FAQConfig).Items[0].Question = "changed"
	if cfg.(*FAQConfig).Items[0].Question != "Q" {
		t.Error("clone shares item storage with the original")
	}
}
