package middleware

import (
	"strings"

	"github.com/AtRiskMedia/landstack-go/internal/domain/entities/rendering"
	"github.com/gin-gonic/gin"
	"github.com/mssola/useragent"
)

const viewportKey = "viewport"

// Viewport resolves the layout class for admin previews. An explicit
// ?viewport= wins, then the Sec-CH-UA-Mobile client hint, then the
// User-Agent.
func Viewport() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(viewportKey, DetectViewport(c.Query("viewport"), c.GetHeader("Sec-CH-UA-Mobile"), c.GetHeader("User-Agent")))
		c.Next()
	}
}

// DeviceViewport resolves the layout class for public pages from the
// requesting device only. ?viewport= is ignored.
func DeviceViewport() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(viewportKey, DetectDevice(c.GetHeader("Sec-CH-UA-Mobile"), c.GetHeader("User-Agent")))
		c.Next()
	}
}

// DetectViewport applies the resolution order used by Viewport.
func DetectViewport(query, mobileHint, userAgent string) rendering.Viewport {
	if query != "" {
		return rendering.ParseViewport(query)
	}
	return DetectDevice(mobileHint, userAgent)
}

// DetectDevice classifies the client from its hint and User-Agent.
func DetectDevice(mobileHint, userAgent string) rendering.Viewport {
	if mobileHint == "?1" {
		return rendering.Mobile
	}
	if userAgent == "" {
		return rendering.Desktop
	}

	ua := useragent.New(userAgent)
	switch {
	case ua.Bot():
		return rendering.Desktop
	case isTablet(ua, userAgent):
		return rendering.Tablet
	case ua.Mobile():
		return rendering.Mobile
	default:
		return rendering.Desktop
	}
}

func isTablet(ua *useragent.UserAgent, raw string) bool {
	if ua.Platform() == "iPad" || strings.Contains(raw, "Tablet") {
		return true
	}
	// Android tablets omit the Mobile token.
	return strings.Contains(raw, "Android") && !strings.Contains(raw, "Mobile")
}

// GetViewport returns the viewport set by Viewport or DeviceViewport,
// defaulting to desktop.
func GetViewport(c *gin.Context) rendering.Viewport {
	if v, ok := c.Get(viewportKey); ok {
		if vp, ok := v.(rendering.Viewport); ok {
			return vp
		}
	}
	return rendering.Desktop
}
