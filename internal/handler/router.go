package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"workspace-booking/internal/handler/api"
	"workspace-booking/internal/handler/middleware"
	"workspace-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	bookingHandler *api.BookingHandler,
	resourceHandler *api.ResourceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, resourceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	resourceHandler *api.ResourceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
		})

		addRoutes(apiGroup.Group("/resources"), []route{
			{Method: http.MethodGet, Path: "", Handler: resourceHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: resourceHandler.Get},
			// Lists contact details of other requesters.
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: resourceHandler.ListBookings, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: resourceHandler.Availability},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/extension-options", Handler: bookingHandler.ExtensionOptions},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin.Group("/bookings"), []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListAll},
				{Method: http.MethodPut, Path: "/:id/status", Handler: bookingHandler.SetStatus},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: bookingHandler.Extend},
				{Method: http.MethodPut, Path: "/:id/associations/:accountId", Handler: bookingHandler.AttachDetails},
				{Method: http.MethodPut, Path: "/:id/contract", Handler: bookingHandler.AttachContract},
			})

			addRoutes(admin.Group("/resources"), []route{
				{Method: http.MethodPost, Path: "", Handler: resourceHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: resourceHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: resourceHandler.Delete},
			})

			addRoutes(admin.Group("/reports"), []route{
				{Method: http.MethodGet, Path: "/accepted", Handler: resourceHandler.Report},
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
