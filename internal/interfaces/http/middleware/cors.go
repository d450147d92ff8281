// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prestigeweddings/storefront-backend/internal/config"
)

// CORS lets the storefront page call the API from its own origin. The
// allowed-origin rules are split into exact matches and "*.domain" suffix
// rules once, at setup time.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowAll := false
	exact := make(map[string]struct{})
	var suffixes []string

	for _, allowed := range cfg.Security.CORSAllowedOrigins {
		switch {
		case allowed == "*":
			allowAll = true
		case strings.HasPrefix(allowed, "*."):
			suffixes = append(suffixes, strings.TrimPrefix(allowed, "*"))
		default:
			exact[allowed] = struct{}{}
		}
	}

	methods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	headers := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	originAllowed := func(origin string) bool {
		if allowAll {
			return true
		}
		if _, ok := exact[origin]; ok {
			return true
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(origin, suffix) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		c.Header("Vary", "Origin")
		if origin != "" && originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
