package handlers

import (
	"html/template"
	"net/http"

	_ "wifi_io_panel/docs"
	"wifi_io_panel/internal/logger"
	"wifi_io_panel/internal/service"
	"wifi_io_panel/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// PanelVersion is shown in the page header.
const PanelVersion = "0.0.1"

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	log       *logger.Logger
	templates *template.Template
	static    http.FileSystem
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		services:  services,
		log:       log,
		templates: web.Templates(),
		static:    http.FS(web.Static()),
	}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)
	router.SetHTMLTemplate(h.templates)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	// The page lives under /app like on the board itself.
	router.GET("/", h.redirectToApp)
	router.GET("/app/*path", h.app)

	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerStatusRoutes(api)
		h.registerGPIORoutes(api)
		api.GET("/notifications", h.getNotifications)
	}
}

func (h *Handler) registerStatusRoutes(api *gin.RouterGroup) {
	status := api.Group("/status")
	{
		status.GET("", h.getStatus)
		status.POST("/refresh", h.refreshStatus)
	}
}

func (h *Handler) registerGPIORoutes(api *gin.RouterGroup) {
	gpio := api.Group("/gpio")
	{
		gpio.GET("", h.getGpioList)
		gpio.POST("/:pin/push", h.pushGPIO)
	}
}
