package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"pass-config-engine/internal/handler/api"
	"pass-config-engine/internal/handler/middleware"
	"pass-config-engine/internal/pkg/config"
	"pass-config-engine/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers the router mounts.
type Handlers struct {
	fx.In

	Drafts  *api.DraftHandler
	URLs    *api.TempURLHandler
	Library *api.LibraryHandler
	Pricing *api.PricingHandler
	Sellers *api.SellerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.RequestMetrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		drafts := apiGroup.Group("/drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Drafts.Begin},
				{Method: http.MethodGet, Path: "/:sessionId", Handler: h.Drafts.Load},
				{Method: http.MethodDelete, Path: "/:sessionId", Handler: h.Drafts.Clear},
				{Method: http.MethodPost, Path: "/:sessionId/recheck", Handler: h.Drafts.Recheck},
				{Method: http.MethodPut, Path: "/:sessionId/limits", Handler: h.Drafts.ConfigureLimits},
				{Method: http.MethodPut, Path: "/:sessionId/pricing", Handler: h.Drafts.SetPricing},
				{Method: http.MethodGet, Path: "/:sessionId/pricing/preview", Handler: h.Pricing.Preview},
				{Method: http.MethodPut, Path: "/:sessionId/delivery", Handler: h.Drafts.SetDeliveryMethod},
				{Method: http.MethodPut, Path: "/:sessionId/delivery/landing-page", Handler: h.Drafts.ChooseLandingPage},
				{Method: http.MethodPut, Path: "/:sessionId/welcome-email", Handler: h.Drafts.ChooseWelcomeTemplate},
				{Method: http.MethodPut, Path: "/:sessionId/rebuy-email", Handler: h.Drafts.ConfigureRebuy},
				{Method: http.MethodPut, Path: "/:sessionId/future-qr", Handler: h.Drafts.SetFutureQR},
				{Method: http.MethodPost, Path: "/:sessionId/artifacts", Handler: h.Drafts.RegisterArtifact},
				{Method: http.MethodPost, Path: "/:sessionId/promote", Handler: h.Drafts.Promote},
			})

			urls := drafts.Group("/:sessionId/urls")
			addRoutes(urls, []route{
				{Method: http.MethodGet, Path: "", Handler: h.URLs.List},
				{Method: http.MethodPost, Path: "", Handler: h.URLs.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.URLs.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.URLs.Delete},
			})
		}

		configurations := apiGroup.Group("/configurations")
		{
			addRoutes(configurations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Library.List},
				{Method: http.MethodPost, Path: "/bulk-delete", Handler: h.Library.BulkDelete},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Library.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Library.UpdateMetadata},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Library.Delete},
				{Method: http.MethodPost, Path: "/:id/assign", Handler: h.Library.Assign},
				{Method: http.MethodPost, Path: "/:id/clone", Handler: h.Library.Clone},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Pricing.Quote},
			{Method: http.MethodGet, Path: "/sellers/unassigned", Handler: h.Sellers.Unassigned},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
