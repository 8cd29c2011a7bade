package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds the baseline security headers.
//
// frameAncestors lists the origins allowed to embed our HTML (the live
// preview is shown in an iframe by the builder). With none given, framing
// is denied outright.
func SecurityHeadersMiddleware(frameAncestors ...string) gin.HandlerFunc {
	ancestors := "'none'"
	if len(frameAncestors) > 0 {
		ancestors = "'self' " + strings.Join(frameAncestors, " ")
	}

	csp := "default-src 'self'; " +
		"script-src 'self'; " +
		// Preview pages carry an inline stylesheet and inline data: photos
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; " +
		"font-src 'self'; " +
		"connect-src 'self'; " +
		"frame-ancestors " + ancestors + "; " +
		"base-uri 'self'; " +
		"form-action 'self'"

	return func(c *gin.Context) {
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		c.Header("X-Content-Type-Options", "nosniff")
		if len(frameAncestors) == 0 {
			c.Header("X-Frame-Options", "DENY")
		}
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")
		c.Header("Content-Security-Policy", csp)

		// Workspace responses hold personal data
		if c.GetHeader(WorkspaceHeaderName) != "" || hasCookie(c, WorkspaceCookieName) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
		}

		c.Next()
	}
}

func hasCookie(c *gin.Context, name string) bool {
	v, err := c.Cookie(name)
	return err == nil && v != ""
}
