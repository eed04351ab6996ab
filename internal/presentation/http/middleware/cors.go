package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the admin frontend to call the API. origins is a
// comma-separated list; "*" allows any origin without credentials.
func CORSMiddleware(origins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
			"X-Requested-With", "X-Request-ID", "Cache-Control",
			"Sec-CH-UA-Mobile",
		},
		ExposeHeaders: []string{
			"Content-Type", "Cache-Control", "X-Request-ID",
		},
	}

	var allow []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allow = append(allow, o)
		}
	}
	if len(allow) == 0 || (len(allow) == 1 && allow[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allow
		config.AllowCredentials = true
	}

	return cors.New(config)
}
