package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"meetup-capture/internal/handler/api"
	"meetup-capture/internal/handler/middleware"
	"meetup-capture/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Meetup      *api.MeetupHandler
	Transaction *api.TransactionHandler
	Webhook     *api.PaymentWebhookHandler
	Auth        *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST("/webhooks/payments", h.Webhook.Receive)

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		meetups := apiGroup.Group("/meetups")
		addRoutes(meetups, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Meetup.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Meetup.Get},
			{Method: http.MethodPost, Path: "/:id/codes", Handler: h.Meetup.GenerateCode},
			{Method: http.MethodPost, Path: "/:id/verify", Handler: h.Meetup.Verify},
			{Method: http.MethodGet, Path: "/:id/capture-events", Handler: h.Meetup.CaptureEvents},
		})

		transactions := apiGroup.Group("/transactions")
		addRoutes(transactions, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Transaction.Get},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
