package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/domain/upload"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
)

type fakeUploader struct {
	calls int
	keys  []string
	url   string
	err   error
	wait  bool
}

func (f *fakeUploader) Name() string { return "fake" }

func (f *fakeUploader) Upload(ctx context.Context, key string, _ []byte, _ string) (string, error) {
	f.calls++
	f.keys = append(f.keys, key)
	if f.wait {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.err != nil {
		return "", f.err
	}
	if f.url != "" {
		return f.url, nil
	}
	return "https://cdn.example.com/" + key, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newUploadService(u *fakeUploader, maxBytes int, timeout time.Duration) *UploadService {
	c := upload.DefaultConstraints()
	c.MaxBytes = maxBytes
	return NewUploadService(u, c, timeout, performance.NewTracker(nil), logging.NewDiscardLogger())
}

func TestUploadAcceptsImage(t *testing.T) {
	u := &fakeUploader{}
	svc := newUploadService(u, upload.DefaultMaxBytes, time.Second)
	svc.now = func() time.Time { return time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC) }

	url, err := svc.Upload(context.Background(), pngBytes(t), "Denah Unit.PNG")
	if err != nil {
		t.Fatal(err)
	}
	if u.calls != 1 {
		t.Fatalf("uploader called %d times", u.calls)
	}
	if !strings.HasPrefix(u.keys[0], "images/2026/05/") || !strings.HasSuffix(u.keys[0], ".png") {
		t.Errorf("key = %q", u.keys[0])
	}
	if url != "https://cdn.example.com/"+u.keys[0] {
		t.Errorf("url = %q", url)
	}
}

func TestUploadSizeCheckedBeforeType(t *testing.T) {
	u := &fakeUploader{}
	svc := newUploadService(u, 1024, time.Second)

	oversizedText := bytes.Repeat([]byte("not an image "), 200)
	_, err := svc.Upload(context.Background(), oversizedText, "notes.txt")
	if !errors.Is(err, upload.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if u.calls != 0 {
		t.Error("uploader reached for an oversized file")
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	u := &fakeUploader{}
	svc := newUploadService(u, upload.DefaultMaxBytes, time.Second)

	inputs := map[string][]byte{
		"pdf":  []byte("%PDF-1.7\n1 0 obj\n<<>>\nendobj\n"),
		"svg":  []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`),
		"text": []byte("hello"),
		"none": nil,
	}
	for name, data := range inputs {
		if _, err := svc.Upload(context.Background(), data, name); !errors.Is(err, upload.ErrUnsupportedType) {
			t.Errorf("%s: expected ErrUnsupportedType, got %v", name, err)
		}
	}
	if u.calls != 0 {
		t.Errorf("uploader called %d times", u.calls)
	}
}

func TestUploadTimeoutIsDistinct(t *testing.T) {
	u := &fakeUploader{wait: true}
	svc := newUploadService(u, upload.DefaultMaxBytes, 10*time.Millisecond)

	_, err := svc.Upload(context.Background(), pngBytes(t), "a.png")
	if !errors.Is(err, upload.ErrUploadTimeout) {
		t.Fatalf("expected ErrUploadTimeout, got %v", err)
	}
	if upload.ReasonOf(err) != upload.ReasonTimeout {
		t.Errorf("reason = %s", upload.ReasonOf(err))
	}
	if u.calls != 1 {
		t.Errorf("uploader called %d times, want exactly one attempt", u.calls)
	}
}

func TestUploadFailureIsNotRetried(t *testing.T) {
	u := &fakeUploader{err: errors.New("503 service unavailable")}
	svc := newUploadService(u, upload.DefaultMaxBytes, time.Second)

	_, err := svc.Upload(context.Background(), pngBytes(t), "a.png")
	if !errors.Is(err, upload.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if u.calls != 1 {
		t.Errorf("uploader called %d times", u.calls)
	}
}

func TestUploadNeverReturnsTransientReference(t *testing.T) {
	for _, ref := range []string{
		"data:image/png;base64,AAAA",
		"blob:https://cdn.example.com/2f1c",
		" BLOB:http://localhost/x",
	} {
		t.Run(ref, func(t *testing.T) {
			u := &fakeUploader{url: ref}
			svc := newUploadService(u, upload.DefaultMaxBytes, time.Second)

			url, err := svc.Upload(context.Background(), pngBytes(t), "a.png")
			if !errors.Is(err, upload.ErrUploadFailed) || url != "" {
				t.Fatalf("expected ErrUploadFailed and no url, got %q %v", url, err)
			}
		})
	}
}
