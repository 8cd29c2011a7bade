package middleware

import (
	"net/http"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	WorkspaceCookieName = "cv_workspace"
	WorkspaceHeaderName = "X-Workspace-ID"
	WorkspaceCookieTTL  = 180 * 24 * time.Hour
)

// Workspace reads the caller's workspace id from the X-Workspace-ID header,
// falling back to the cv_workspace cookie. Malformed ids are dropped.
func Workspace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(WorkspaceHeaderName)
		if id == "" {
			id, _ = c.Cookie(WorkspaceCookieName)
		}
		if _, err := uuid.Parse(id); err != nil {
			id = ""
		}
		c.Set(string(domain.KeyWorkspaceID), id)
		c.Next()
	}
}

// RequireWorkspace rejects requests that carry no workspace id.
func RequireWorkspace() gin.HandlerFunc {
	return func(c *gin.Context) {
		if WorkspaceID(c) == "" {
			c.Error(apperror.BadRequest("Missing workspace id. Open a workspace first."))
			c.Abort()
			return
		}
		c.Next()
	}
}

func WorkspaceID(c *gin.Context) string {
	return c.GetString(string(domain.KeyWorkspaceID))
}

// SetWorkspaceCookie remembers the workspace in the browser. The cookie is
// HttpOnly; scripts read the id from the response body instead.
func SetWorkspaceCookie(c *gin.Context, id string, secure bool) {
	c.Set(string(domain.KeyWorkspaceID), id)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(WorkspaceCookieName, id, int(WorkspaceCookieTTL.Seconds()), "/", "", secure, true)
}

func ClearWorkspaceCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(WorkspaceCookieName, "", -1, "/", "", secure, true)
}
