package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
)

func TestObjectKey(t *testing.T) {
	at := time.Date(2026, 3, 9, 23, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	if got := ObjectKey("01J", ".webp", at); got != "images/2026/03/01J.webp" {
		t.Errorf("ObjectKey = %q", got)
	}
	if got := ObjectKey("01J", "png", time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)); got != "images/2026/12/01J.png" {
		t.Errorf("ObjectKey = %q", got)
	}
}

func TestNormalizeObjectKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/images/a.png", "images/a.png"},
		{`images\2026\a.png`, "images/2026/a.png"},
		{"images//a.png", "images/a.png"},
		{"images/../../etc/passwd", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := normalizeObjectKey(tt.in); got != tt.want {
			t.Errorf("normalizeObjectKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.NRGBA{G: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLocalUploaderWritesVariants(t *testing.T) {
	dir := t.TempDir()
	u := NewLocalUploader(dir, "https://cdn.example.com/media/", logging.NewDiscardLogger())

	url, err := u.Upload(context.Background(), "images/2026/03/unit.png", testPNG(t, 800, 400), "image/png")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://cdn.example.com/media/images/2026/03/unit.png" {
		t.Errorf("url = %q", url)
	}

	original := filepath.Join(dir, "images", "2026", "03", "unit.png")
	if _, err := os.Stat(original); err != nil {
		t.Fatalf("original missing: %v", err)
	}
	for _, w := range VariantWidths {
		if _, err := os.Stat(VariantPath(original, w)); err != nil {
			t.Errorf("variant %dpx missing: %v", w, err)
		}
	}

	if err := u.Delete(url); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(original); !os.IsNotExist(err) {
		t.Error("original not removed")
	}
	if _, err := os.Stat(VariantPath(original, 300)); !os.IsNotExist(err) {
		t.Error("variant not removed")
	}
}

func TestLocalUploaderRejectsUndecodable(t *testing.T) {
	dir := t.TempDir()
	u := NewLocalUploader(dir, "/media", logging.NewDiscardLogger())

	if _, err := u.Upload(context.Background(), "images/x.png", []byte("not an image"), "image/png"); err == nil {
		t.Fatal("undecodable payload accepted")
	}
	if _, err := os.Stat(filepath.Join(dir, "images", "x.png")); !os.IsNotExist(err) {
		t.Error("original left behind after a failed upload")
	}
	if _, err := u.Upload(context.Background(), "../escape.png", testPNG(t, 4, 4), "image/png"); err == nil {
		t.Error("key outside the media dir accepted")
	}
}

func TestLocalUploaderHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	u := NewLocalUploader(t.TempDir(), "/media", logging.NewDiscardLogger())
	if _, err := u.Upload(ctx, "images/a.png", testPNG(t, 4, 4), "image/png"); err == nil {
		t.Error("cancelled upload succeeded")
	}
}

func TestVariantPath(t *testing.T) {
	if got := VariantPath("/m/images/a.jpeg", 600); got != "/m/images/a_600px.webp" {
		t.Errorf("VariantPath = %q", got)
	}
}
