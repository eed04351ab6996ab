package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/security"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDetectViewport(t *testing.T) {
	const (
		iphone    = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
		ipad      = "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"
		android   = "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Mobile Safari/537.36"
		tab       = "Mozilla/5.0 (Linux; Android 12; SM-X700) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"
		desktop   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"
		googlebot = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	)
	tests := []struct {
		name  string
		query string
		hint  string
		ua    string
		want  rendering.Viewport
	}{
		{"query wins", "tablet", "?1", iphone, rendering.Tablet},
		{"unknown query is desktop", "watch", "", iphone, rendering.Desktop},
		{"client hint", "", "?1", desktop, rendering.Mobile},
		{"iphone", "", "", iphone, rendering.Mobile},
		{"ipad", "", "", ipad, rendering.Tablet},
		{"android phone", "", "", android, rendering.Mobile},
		{"android tablet", "", "", tab, rendering.Tablet},
		{"desktop", "", "?0", desktop, rendering.Desktop},
		{"bot", "", "", googlebot, rendering.Desktop},
		{"no user agent", "", "", "", rendering.Desktop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectViewport(tt.query, tt.hint, tt.ua); got != tt.want {
				t.Errorf("DetectViewport = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPublicViewportIgnoresQuery(t *testing.T) {
	const (
		desktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"
		iphone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	)
	r := gin.New()
	echo := func(c *gin.Context) { c.String(http.StatusOK, string(GetViewport(c))) }
	r.GET("/lp/:slug", DeviceViewport(), echo)
	r.GET("/preview", Viewport(), echo)

	tests := []struct {
		name   string
		target string
		ua     string
		want   string
	}{
		{"public desktop with query", "/lp/promo?viewport=mobile", desktop, "desktop"},
		{"public phone with query", "/lp/promo?viewport=desktop", iphone, "mobile"},
		{"preview honours query", "/preview?viewport=mobile", desktop, "mobile"},
		{"preview falls back to device", "/preview", iphone, "mobile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.Header.Set("User-Agent", tt.ua)
			r.ServeHTTP(w, req)
			if got := w.Body.String(); got != tt.want {
				t.Errorf("viewport = %s, want %s", got, tt.want)
			}
		})
	}
}

func protectedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/admin", AdminAuth(secret, logging.NewDiscardLogger()), func(c *gin.Context) {
		c.String(http.StatusOK, AdminEmail(c))
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	const secret = "test-secret"
	r := protectedRouter(secret)
	good, _, err := security.GenerateAdminToken("admin@example.com", secret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	otherSecret, _, _ := security.GenerateAdminToken("admin@example.com", "other", time.Hour)
	notAdmin, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "visitor@example.com", "role": "viewer", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+good) }, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AuthCookie, Value: good}) }, http.StatusOK},
		{"wrong secret", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+otherSecret) }, http.StatusUnauthorized},
		{"not admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+notAdmin) }, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.status == http.StatusOK && w.Body.String() != "admin@example.com" {
				t.Errorf("admin email = %q", w.Body.String())
			}
		})
	}
}

func TestQueryTokenOnlyForUpgrades(t *testing.T) {
	const secret = "test-secret"
	r := protectedRouter(secret)
	token, _, _ := security.GenerateAdminToken("admin@example.com", secret, time.Hour)

	plain := httptest.NewRequest(http.MethodGet, "/admin?token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, plain)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("query token accepted without upgrade: %d", w.Code)
	}

	upgrade := httptest.NewRequest(http.MethodGet, "/admin?token="+token, nil)
	upgrade.Header.Set("Upgrade", "websocket")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, upgrade)
	if w.Code != http.StatusOK {
		t.Errorf("query token rejected on upgrade: %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/submit", RateLimit(2, logging.NewDiscardLogger()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests && w.Header().Get("Retry-After") != "30" {
			t.Errorf("Retry-After = %q", w.Header().Get("Retry-After"))
		}
	}
	if codes[0] != http.StatusCreated || codes[1] != http.StatusCreated || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}

	other := httptest.NewRequest(http.MethodPost, "/submit", nil)
	other.RemoteAddr = "198.51.100.1:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, other)
	if w.Code != http.StatusCreated {
		t.Errorf("separate client limited: %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(logging.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "upstream-123" || w.Header().Get(RequestIDHeader) != "upstream-123" {
		t.Errorf("supplied id not kept: body=%q header=%q", w.Body.String(), w.Header().Get(RequestIDHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 65))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); len(got) != 26 {
		t.Errorf("oversized id not replaced with a ulid: %q", got)
	}
}
