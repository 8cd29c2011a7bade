package v1

import (
	"cvcraft-backend/config"
	"cvcraft-backend/internal/delivery/http/middleware"
	"cvcraft-backend/internal/domain"
	"cvcraft-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	WorkspaceUC  domain.WorkspaceUsecase
	PreviewUC    domain.PreviewUsecase
	IdentityUC   domain.IdentityUsecase
	SuggestionUC domain.SuggestionUsecase
	ShareUC      domain.ShareUsecase
	HealthUC     usecase.HealthUsecase
	RateLimiter  *middleware.RateLimiter
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}

	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	// Global Middlewares
	r.Use(middleware.CORSMiddleware([]string{cfg.FrontendURL}, gin.Mode() == gin.ReleaseMode)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.FrontendURL))
	r.Use(middleware.ErrorHandler())

	globalLimit := middleware.DefaultRateLimitConfig()
	globalLimit.Limit = cfg.RateLimitGlobalThreshold
	globalLimit.Window = cfg.RateLimitWindow()
	authLimit := middleware.AuthRateLimitConfig()
	authLimit.Limit = cfg.RateLimitAuthThreshold
	authLimit.Window = cfg.RateLimitWindow()

	v1 := r.Group("/v1")
	v1.Use(limiter.Middleware(globalLimit))
	v1.Use(middleware.Workspace())
	v1.Use(middleware.CSRFMiddleware(cfg.CookieSecure, "POST /v1/workspace"))

	NewHealthHandler(v1, deps.HealthUC)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	uploadLimit := limiter.Middleware(middleware.UploadRateLimitConfig())

	workspace := v1.Group("/workspace", middleware.RequireWorkspace())
	{
		NewWorkspaceHandler(v1, workspace, deps.WorkspaceUC, cfg.CookieSecure)
		NewPreviewHandler(v1, workspace, deps.PreviewUC, uploadLimit)
		NewShareHandler(v1, workspace, deps.ShareUC, uploadLimit)

		suggestions := workspace.Group("/suggestions", limiter.Middleware(middleware.SuggestionRateLimitConfig()))
		NewSuggestionHandler(suggestions, deps.SuggestionUC)
	}

	auth := v1.Group("/auth", middleware.RequireWorkspace())
	NewAuthHandler(v1, auth, deps.IdentityUC, deps.WorkspaceUC, AuthHandlerConfig{
		FrontendURL:  cfg.FrontendURL,
		CookieSecure: cfg.CookieSecure,
		RateLimit:    limiter.Middleware(authLimit),
	})

	return r
}
