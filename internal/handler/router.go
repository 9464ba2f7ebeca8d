package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-widget/internal/handler/api"
	"booking-widget/internal/handler/middleware"
	"booking-widget/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, widgetHandler *api.WidgetHandler, sessionMiddleware *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, widgetHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, widgetHandler *api.WidgetHandler, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		widget := apiGroup.Group("/widget")
		{
			// rate plans are shared by every session
			addRoutes(widget, []route{
				{Method: http.MethodGet, Path: "/rate-plans", Handler: widgetHandler.RatePlans},
			})

			addRoutes(widget, []route{
				{Method: http.MethodGet, Path: "", Handler: widgetHandler.Get, Mw: []gin.HandlerFunc{sessionMiddleware.RequireSession()}},
				{Method: http.MethodPost, Path: "/search", Handler: widgetHandler.Search, Mw: []gin.HandlerFunc{sessionMiddleware.RequireSession()}},
				{Method: http.MethodPost, Path: "/select", Handler: widgetHandler.Select, Mw: []gin.HandlerFunc{sessionMiddleware.RequireSession()}},
				{Method: http.MethodPost, Path: "/cancel", Handler: widgetHandler.Cancel, Mw: []gin.HandlerFunc{sessionMiddleware.RequireSession()}},
				{Method: http.MethodPost, Path: "/confirm", Handler: widgetHandler.Confirm, Mw: []gin.HandlerFunc{sessionMiddleware.RequireSession()}},
				{Method: http.MethodPost, Path: "/dismiss", Handler: widgetHandler.Dismiss, Mw: []gin.HandlerFunc{sessionMiddleware.RequireSession()}},
			})
		}
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
