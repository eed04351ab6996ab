package blocks

import (
	"testing"

	"emperror.dev/errors"
)

func TestDefaultsValidate(t *testing.T) {
	for _, kind := range Kinds() {
		cfg, err := New(kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if err := Validate(cfg); err != nil {
			t.Errorf("%s defaults fail validation: %v", kind, err)
		}
	}
}

func TestValidateRejectsTransientImages(t *testing.T) {
	for _, ref := range []string{"data:image/png;base64,AAAA", "blob:http://localhost/123", " DATA:image/gif;base64,R0"} {
		cfg, _ := Migrate(KindCustomImage, []byte(`{"desktopImage":"`+ref+`"}`))
		err := Validate(cfg)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%q: expected ErrValidation, got %v", ref, err)
		}
		verr, ok := AsValidationError(err)
		if !ok || len(verr.Fields) != 1 || verr.Fields[0].Path != "desktopImage" {
			t.Errorf("%q: unexpected fields %+v", ref, verr)
		}
	}
}

func TestValidateNestedPaths(t *testing.T) {
	cfg, _ := Migrate(KindGallery, []byte(`{"images":[{"url":"/ok.jpg"},{"url":"data:image/png;base64,AA"}]}`))
	verr, ok := AsValidationError(Validate(cfg))
	if !ok {
		t.Fatal("expected a validation error")
	}
	if verr.Fields[0].Path != "images.1.url" {
		t.Errorf("path = %q", verr.Fields[0].Path)
	}
}

func TestValidateEmailAndLinks(t *testing.T) {
	tests := []struct {
		kind Kind
		raw  string
		path string
	}{
		{KindForm, `{"notifyEmail":"not-an-email"}`, "notifyEmail"},
		{KindHero, `{"ctaUrl":"https://exa mple.com"}`, "ctaUrl"},
		{KindVideo, `{"videoUrl":"data:text/html,hi"}`, "videoUrl"},
		{KindBankPartnership, `{"banks":[{"name":"BCA","logo":"blob:http://localhost/9"}]}`, "banks.0.logo"},
		{KindBankPartnership, `{"banks":[{"name":"BCA","website":"https://b ca.co.id"}]}`, "banks.0.website"},
		{KindTestimonial, `{"testimonials":[{"name":"A","avatar":"data:image/png;base64,AA"}]}`, "testimonials.0.avatar"},
		{KindFacilities, `{"facilities":[{"name":"Gym","image":"data:image/png;base64,AA"}]}`, "facilities.0.image"},
		{KindCopyright, `{"links":[{"label":"Privasi","url":"https://exa mple.com"}]}`, "links.0.url"},
	}
	for _, tt := range tests {
		cfg, _ := Migrate(tt.kind, []byte(tt.raw))
		verr, ok := AsValidationError(Validate(cfg))
		if !ok {
			t.Errorf("%s: expected a validation error", tt.kind)
			continue
		}
		if verr.Fields[0].Path != tt.path {
			t.Errorf("%s: path = %q, want %q", tt.kind, verr.Fields[0].Path, tt.path)
		}
	}
}

func TestValidateAcceptsRelativeAndAnchors(t *testing.T) {
	cfg, _ := Migrate(KindHero, []byte(`{"ctaUrl":"#contact","backgroundImage":"/media/images/hero.webp"}`))
	if err := Validate(cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestIsTransient(t *testing.T) {
	if !IsTransient("data:image/png;base64,AA") || !IsTransient("blob:x") {
		t.Error("transient refs not detected")
	}
	if IsTransient("https://cdn.example.com/a.png") || IsTransient("/a.png") {
		t.Error("hosted refs reported as transient")
	}
}
