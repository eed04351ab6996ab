package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/AtRiskMedia/landstack-go/internal/application/services"
	"github.com/AtRiskMedia/landstack-go/internal/domain/blocks"
	"github.com/AtRiskMedia/landstack-go/internal/domain/editor"
	"github.com/AtRiskMedia/landstack-go/internal/domain/repositories"
	"github.com/AtRiskMedia/landstack-go/internal/domain/upload"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/performance"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/AtRiskMedia/landstack-go/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cfg, _ := blocks.Migrate(blocks.KindCustomImage, []byte(`{"desktopImage":"data:image/png;base64,AA"}`))
	validation := blocks.Validate(cfg)

	tests := []struct {
		err  error
		want int
	}{
		{validation, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", editor.ErrPersistence, errors.New("disk full")), http.StatusServiceUnavailable},
		{fmt.Errorf("page x: %w", repositories.ErrNotFound), http.StatusNotFound},
		{services.ErrNotLive, http.StatusNotFound},
		{repositories.ErrConflict, http.StatusConflict},
		{editor.ErrSaveInFlight, http.StatusConflict},
		{editor.ErrUploadInFlight, http.StatusConflict},
		{errors.WithDetails(blocks.ErrUnknownField, "path", "x"), http.StatusBadRequest},
		{errors.WithDetails(blocks.ErrNotAnImage, "path", "title"), http.StatusBadRequest},
		{editor.ErrUnknownOp, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRespondErrorBodies(t *testing.T) {
	cfg, _ := blocks.Migrate(blocks.KindForm, []byte(`{"notifyEmail":"nope"}`))
	verr := blocks.Validate(cfg)

	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, body map[string]any)
	}{
		{"validation carries fields", verr, func(t *testing.T, body map[string]any) {
			fields, _ := body["fields"].([]any)
			if len(fields) != 1 {
				t.Errorf("fields = %v", body["fields"])
			}
		}},
		{"persistence is retryable", fmt.Errorf("%w: %w", editor.ErrPersistence, errors.New("locked")), func(t *testing.T, body map[string]any) {
			if body["retryable"] != true {
				t.Errorf("retryable = %v", body["retryable"])
			}
		}},
		{"internal errors are masked", errors.New("sql: secret table"), func(t *testing.T, body map[string]any) {
			if body["error"] != "internal server error" {
				t.Errorf("error = %v", body["error"])
			}
		}},
		{"details are exposed", errors.WithDetails(blocks.ErrUnknownField, "path", "agent.fax"), func(t *testing.T, body map[string]any) {
			details, _ := body["details"].(map[string]any)
			if details["path"] != "agent.fax" {
				t.Errorf("details = %v", body["details"])
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			tt.check(t, body)
		})
	}
}

type countingUploader struct {
	calls int
	err   error
}

func (u *countingUploader) Name() string { return "counting" }

func (u *countingUploader) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn.example.com/" + key, nil
}

func multipartBody(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPostUploadStatuses(t *testing.T) {
	logger := logging.NewDiscardLogger()
	tracker := performance.NewTracker(nil)

	tests := []struct {
		name      string
		data      []byte
		uploadErr error
		status    int
		reason    upload.Reason
		calls     int
	}{
		{"accepted", tinyPNG(t), nil, http.StatusOK, "", 1},
		{"too large", bytes.Repeat([]byte{0x89}, 4096), nil, http.StatusRequestEntityTooLarge, upload.ReasonTooLarge, 0},
		{"wrong type", []byte("%PDF-1.7\n"), nil, http.StatusUnsupportedMediaType, upload.ReasonUnsupportedType, 0},
		{"backend failure", tinyPNG(t), errors.New("bucket missing"), http.StatusBadGateway, upload.ReasonFailed, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &countingUploader{err: tt.uploadErr}
			svc := services.NewUploadService(u, upload.Constraints{MaxBytes: 1024, AllowedTypes: upload.DefaultTypes}, time.Second, tracker, logger)
			h := NewUploadHandlers(svc, logger, tracker)

			r := gin.New()
			r.POST("/uploads", h.PostUpload)
			body, contentType := multipartBody(t, "photo.png", tt.data)
			req := httptest.NewRequest(http.MethodPost, "/uploads", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.status, w.Body.String())
			}
			if u.calls != tt.calls {
				t.Errorf("uploader calls = %d, want %d", u.calls, tt.calls)
			}
			var resp map[string]any
			json.Unmarshal(w.Body.Bytes(), &resp)
			if tt.reason != "" && resp["reason"] != string(tt.reason) {
				t.Errorf("reason = %v, want %s", resp["reason"], tt.reason)
			}
			if tt.status == http.StatusOK && !strings.HasPrefix(fmt.Sprint(resp["url"]), "https://cdn.example.com/images/") {
				t.Errorf("url = %v", resp["url"])
			}
		})
	}
}

func TestPostUploadWithoutFile(t *testing.T) {
	logger := logging.NewDiscardLogger()
	tracker := performance.NewTracker(nil)
	svc := services.NewUploadService(&countingUploader{}, upload.DefaultConstraints(), time.Second, tracker, logger)
	r := gin.New()
	r.POST("/uploads", NewUploadHandlers(svc, logger, tracker).PostUpload)

	req := httptest.NewRequest(http.MethodPost, "/uploads", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestPostLogin(t *testing.T) {
	hash, err := security.HashPassword("rahasia")
	if err != nil {
		t.Fatal(err)
	}
	settings := AuthSettings{AdminEmail: "admin@example.com", AdminPasswordHash: hash, JWTSecret: "secret", TokenTTL: time.Hour}
	h := NewAuthHandlers(settings, logging.NewDiscardLogger(), performance.NewTracker(nil))
	r := gin.New()
	r.POST("/login", h.PostLogin)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"email":"Admin@Example.com","password":"rahasia"}`, http.StatusOK},
		{"wrong password", `{"email":"admin@example.com","password":"salah"}`, http.StatusUnauthorized},
		{"wrong email", `{"email":"other@example.com","password":"rahasia"}`, http.StatusUnauthorized},
		{"missing fields", `{"email":"admin@example.com"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.status != http.StatusOK {
				return
			}
			var resp struct {
				Token string `json:"token"`
			}
			json.Unmarshal(w.Body.Bytes(), &resp)
			claims, err := security.ValidateJWT(resp.Token, "secret")
			if err != nil {
				t.Fatal(err)
			}
			if admin, err := security.AdminFromClaims(claims); err != nil || admin.Email != "admin@example.com" {
				t.Errorf("admin = %+v, %v", admin, err)
			}
			if !strings.Contains(w.Header().Get("Set-Cookie"), middleware.AuthCookie+"=") {
				t.Error("auth cookie not set")
			}
		})
	}
}

func TestPostLoginUnconfigured(t *testing.T) {
	h := NewAuthHandlers(AuthSettings{AdminEmail: "admin@example.com"}, logging.NewDiscardLogger(), performance.NewTracker(nil))
	r := gin.New()
	r.POST("/login", h.PostLogin)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"admin@example.com","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d", w.Code)
	}
}
