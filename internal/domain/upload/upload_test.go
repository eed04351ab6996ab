package upload

import (
	"fmt"
	"strings"
	"testing"
)

func TestReasonOf(t *testing.T) {
	tests := []struct {
		err  error
		want Reason
	}{
		{ErrTooLarge, ReasonTooLarge},
		{fmt.Errorf("wrapped: %w", ErrUnsupportedType), ReasonUnsupportedType},
		{ErrUploadTimeout, ReasonTimeout},
		{ErrUploadFailed, ReasonFailed},
		{fmt.Errorf("connection reset"), ReasonFailed},
	}
	for _, tt := range tests {
		if got := ReasonOf(tt.err); got != tt.want {
			t.Errorf("ReasonOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestMessagesAreDistinct(t *testing.T) {
	seen := map[string]Reason{}
	for _, r := range []Reason{ReasonTooLarge, ReasonUnsupportedType, ReasonTimeout, ReasonFailed} {
		msg := Message(r, DefaultMaxBytes)
		if prev, dup := seen[msg]; dup {
			t.Errorf("%s and %s share the message %q", prev, r, msg)
		}
		seen[msg] = r
	}
}

func TestTooLargeMessageNamesLimit(t *testing.T) {
	if msg := Message(ReasonTooLarge, DefaultMaxBytes); !strings.Contains(msg, "5 MB") {
		t.Errorf("message = %q", msg)
	}
	if msg := Message(ReasonTooLarge, 512*1024); !strings.Contains(msg, "512 KB") {
		t.Errorf("message = %q", msg)
	}
}

func TestDefaultConstraints(t *testing.T) {
	c := DefaultConstraints()
	for _, mime := range []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"} {
		if !c.Allows(mime) {
			t.Errorf("%s not allowed", mime)
		}
	}
	if c.Allows("image/svg+xml") || c.Allows("application/pdf") {
		t.Error("non-raster type allowed")
	}
	c.AllowedTypes[0] = "text/plain"
	if DefaultTypes[0] != "image/jpeg" {
		t.Error("constraints share storage with DefaultTypes")
	}
}
