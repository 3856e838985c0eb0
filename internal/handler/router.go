package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fleetsync/internal/handler/api"
	"fleetsync/internal/handler/middleware"
	"fleetsync/internal/pkg/config"
	"fleetsync/internal/pkg/metrics"
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
	m *metrics.Registry,
	syncHandler *api.SyncHandler,
	fleetHandler *api.FleetHandler,
	alertHandler *api.AlertHandler,
	configHandler *api.ConfigHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, m, syncHandler, fleetHandler, alertHandler, configHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	m *metrics.Registry,
	syncHandler *api.SyncHandler,
	fleetHandler *api.FleetHandler,
	alertHandler *api.AlertHandler,
	configHandler *api.ConfigHandler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Gatherer, promhttp.HandlerOpts{})))

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/sync", Handler: syncHandler.ImportSnapshot},
			{Method: http.MethodGet, Path: "/equipment", Handler: fleetHandler.ListEquipment},
			{Method: http.MethodGet, Path: "/maintenance", Handler: fleetHandler.ListMaintenance},
			{Method: http.MethodGet, Path: "/inventory", Handler: fleetHandler.ListInventory},
		})

		alerts := apiGroup.Group("/alerts")
		{
			addRoutes(alerts, []route{
				{Method: http.MethodGet, Path: "", Handler: alertHandler.ListOpen},
				{Method: http.MethodGet, Path: "/unread-count", Handler: alertHandler.UnreadCount},
				{Method: http.MethodPost, Path: "/sweep", Handler: alertHandler.Sweep},
				{Method: http.MethodPatch, Path: "/:id/read", Handler: alertHandler.MarkRead},
				{Method: http.MethodPatch, Path: "/:id/dismiss", Handler: alertHandler.Dismiss},
			})
		}

		sysconfig := apiGroup.Group("/config")
		{
			addRoutes(sysconfig, []route{
				{Method: http.MethodGet, Path: "/thresholds", Handler: configHandler.GetThresholds},
				{Method: http.MethodPut, Path: "/thresholds", Handler: configHandler.UpdateThresholds},
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
