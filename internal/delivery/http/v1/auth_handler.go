package v1

import (
	"net/http"
	"strings"

	"cvcraft-backend/internal/delivery/http/middleware"
	"cvcraft-backend/internal/delivery/http/response"
	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	identityUC   domain.IdentityUsecase
	workspaceUC  domain.WorkspaceUsecase
	frontendURL  string
	cookieSecure bool
}

type AuthHandlerConfig struct {
	FrontendURL  string
	CookieSecure bool
	// Applied to the sign-in endpoints only
	RateLimit gin.HandlerFunc
}

func NewAuthHandler(public, scoped *gin.RouterGroup, identityUC domain.IdentityUsecase, workspaceUC domain.WorkspaceUsecase, cfg AuthHandlerConfig) {
	handler := &AuthHandler{
		identityUC:   identityUC,
		workspaceUC:  workspaceUC,
		frontendURL:  strings.TrimRight(cfg.FrontendURL, "/"),
		cookieSecure: cfg.CookieSecure,
	}
	limit := cfg.RateLimit
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}

	// The callback is reached by Google's redirect; the workspace travels in the state
	public.GET("/auth/google/callback", limit, handler.GoogleCallback)

	scoped.GET("/google/login", limit, handler.GoogleLogin)
	scoped.POST("/token", limit, handler.TokenSignIn)
	scoped.POST("/logout", handler.Logout)
	scoped.GET("/session", handler.Session)
}

// safeNext keeps post-login redirects on the frontend.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	return next
}

// GoogleLogin godoc
// @Summary      Sign in with Google
// @Description  Redirects to Google's consent screen. After the callback the browser lands on the frontend at `next`.
// @Tags         auth
// @Param        X-Workspace-ID  header  string  true   "Workspace id"
// @Param        next            query   string  false  "Frontend path to return to"
// @Success      302
// @Failure      503  {object}  response.Response
// @Router       /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	url, err := h.identityUC.SignInURL(middleware.WorkspaceID(c), safeNext(c.Query("next")))
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// GoogleCallback godoc
// @Summary      Google sign-in callback
// @Tags         auth
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "Signed state"
// @Success      302
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if reason := c.Query("error"); reason != "" {
		c.Error(apperror.Unauthorized("Google sign-in was cancelled"))
		return
	}

	_, signIn, err := h.identityUC.CompleteSignIn(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		if signIn != nil {
			h.notice(c, signIn.WorkspaceID, err)
		}
		c.Error(err)
		return
	}

	middleware.SetWorkspaceCookie(c, signIn.WorkspaceID, h.cookieSecure)
	c.Redirect(http.StatusFound, h.frontendURL+safeNext(signIn.Next))
}

// TokenSignIn godoc
// @Summary      Sign in with an access token
// @Description  Exchanges a Supabase access token for a workspace session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        X-Workspace-ID  header    string                     true  "Workspace id"
// @Param        body            body      domain.TokenSignInRequest  true  "Access token"
// @Success      200  {object}  response.Response{data=domain.Session}
// @Failure      401  {object}  response.Response
// @Router       /auth/token [post]
func (h *AuthHandler) TokenSignIn(c *gin.Context) {
	var req domain.TokenSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("access_token is required"))
		return
	}

	workspaceID := middleware.WorkspaceID(c)
	session, err := h.identityUC.SignInWithToken(c.Request.Context(), workspaceID, req.AccessToken)
	if err != nil {
		h.notice(c, workspaceID, err)
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Signed in", session)
}

// Logout godoc
// @Summary      Sign out
// @Description  The workspace flushes its pending save and switches to local storage.
// @Tags         auth
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.identityUC.SignOut(c.Request.Context(), middleware.WorkspaceID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Signed out", nil)
}

// Session godoc
// @Summary      Current session
// @Description  data is null for anonymous workspaces.
// @Tags         auth
// @Produce      json
// @Param        X-Workspace-ID  header    string  true  "Workspace id"
// @Success      200  {object}  response.Response{data=domain.Session}
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.identityUC.GetSession(c.Request.Context(), middleware.WorkspaceID(c))
	if err != nil {
		c.Error(apperror.New(http.StatusBadGateway, "Could not read the session", err))
		return
	}
	if session == nil {
		response.Success(c, http.StatusOK, "Anonymous", nil)
		return
	}
	response.Success(c, http.StatusOK, "Signed in", session)
}

// notice mirrors an identity failure into the workspace so the builder can
// show it. Workspaces that are not open are skipped.
func (h *AuthHandler) notice(c *gin.Context, workspaceID string, err error) {
	if workspaceID == "" {
		return
	}
	_ = h.workspaceUC.Notify(c.Request.Context(), workspaceID, domain.NoticeError, err.Error())
}
