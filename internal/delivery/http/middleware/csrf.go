package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"cvcraft-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	CSRFTokenCookieName = "csrf_token"
	CSRFTokenHeaderName = "X-CSRF-Token"
	// 32 bytes = 64 hex chars
	CSRFTokenLength = 32
	CSRFTokenExpiry = 24 * time.Hour
)

func newCSRFToken() (string, error) {
	buf := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Every response makes sure a readable csrf_token cookie exists. Mutating
// requests must echo its value in the X-CSRF-Token header. Exempt routes,
// given as "METHOD /path", still get the cookie but are not checked;
// opening a workspace is exempt because it is the browser's first call.
// Rejections go through c.Error so ErrorHandler renders them.
func CSRFMiddleware(secure bool, exemptRoutes ...string) gin.HandlerFunc {
	exempt := make(map[string]bool, len(exemptRoutes))
	for _, route := range exemptRoutes {
		exempt[route] = true
	}

	return func(c *gin.Context) {
		token, err := ensureCSRFCookie(c, secure)
		if err != nil {
			c.Error(apperror.Internal(err))
			c.Abort()
			return
		}

		if isSafeMethod(c.Request.Method) || exempt[c.Request.Method+" "+c.Request.URL.Path] {
			c.Next()
			return
		}

		sent := c.GetHeader(CSRFTokenHeaderName)
		switch {
		case sent == "":
			c.Error(apperror.Forbidden("Missing CSRF token"))
			c.Abort()
			return
		case subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1:
			c.Error(apperror.Forbidden("Invalid CSRF token"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// ensureCSRFCookie returns the caller's token, issuing a fresh one when the
// cookie is absent. A freshly issued token can never match a header, so a
// first mutating request without the cookie is always rejected.
func ensureCSRFCookie(c *gin.Context, secure bool) (string, error) {
	if token, err := c.Cookie(CSRFTokenCookieName); err == nil && len(token) == 2*CSRFTokenLength {
		return token, nil
	}
	token, err := newCSRFToken()
	if err != nil {
		return "", err
	}
	// HttpOnly off so the frontend can read it back
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CSRFTokenCookieName, token, int(CSRFTokenExpiry.Seconds()), "/", "", secure, false)
	return token, nil
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
