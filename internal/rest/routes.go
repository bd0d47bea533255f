package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	apiV1Prefix = "/api/v1"
	adminPrefix = apiV1Prefix + "/admin"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
	metricsPath = "/metrics"
	rpcPath     = "/v1/rpc/"
)

// RegisterRoutes builds the echo engine. rpc, when set, is mounted at /v1/rpc/.
func (h *NewsHandler) RegisterRoutes(rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	h.registerAPIRoutes(e)
	h.registerAdminRoutes(e)
	h.registerServiceRoutes(e, rpc)

	return e
}

func (h *NewsHandler) registerAPIRoutes(e *echo.Echo) {
	api := e.Group(apiV1Prefix)

	api.GET("/home", h.Home)
	api.GET("/categories", h.Categories)
	api.GET("/categories/:name/articles", h.ArticlesByCategory)
	api.GET("/articles/:id", h.ArticleByID)
	api.GET("/articles/:id/body", h.ArticleBody)
	api.GET("/search", h.Search)
	api.GET("/videos", h.Videos)
	api.GET("/videos/:id", h.VideoByID)
	api.GET("/videos/:id/description", h.VideoDescription)
	api.GET("/ads/:type", h.Ad)
	api.GET("/popups", h.Popups)
	api.POST("/popups/:id/dismiss", h.DismissPopup)
	api.POST("/reports", h.SubmitReport)
}

func (h *NewsHandler) registerAdminRoutes(e *echo.Echo) {
	admin := e.Group(adminPrefix)
	auth := h.requireAdmin

	admin.POST("/login", h.Login)
	admin.POST("/logout", h.Logout)

	admin.GET("/articles", h.AdminArticles, auth)
	admin.POST("/articles", h.PublishArticle, auth)
	admin.PUT("/articles/:id", h.EditArticle, auth)
	admin.DELETE("/articles/:id", h.DeleteArticle, auth)
	admin.POST("/articles/:id/move", h.MoveArticle, auth)
	admin.GET("/orphans", h.OrphanedArticles, auth)

	admin.GET("/ads", h.AdminAds, auth)
	admin.POST("/ads", h.CreateAd, auth)
	admin.PUT("/ads/:id", h.EditAd, auth)
	admin.DELETE("/ads/:id", h.DeleteAd, auth)
	admin.POST("/ads/:id/toggle", h.ToggleAd, auth)

	admin.GET("/reports", h.Reports, auth)
	admin.PUT("/password", h.ChangePassword, auth)
	admin.PUT("/categories", h.UpdateCategories, auth)

	admin.POST("/videos", h.CreateVideo, auth)
	admin.PUT("/videos/:id", h.EditVideo, auth)
	admin.DELETE("/videos/:id", h.DeleteVideo, auth)

	admin.GET("/reporters", h.AdminReporters, auth)
	admin.PUT("/reporters", h.UpdateReporters, auth)
}

func (h *NewsHandler) registerServiceRoutes(e *echo.Echo, rpc http.Handler) {
	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.SwaggerDoc)
	e.GET(metricsPath, echo.WrapHandler(h.metrics.Handler()))

	if rpc != nil {
		e.Any(rpcPath, echo.WrapHandler(rpc))
	}
}

func (h *NewsHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		duration := time.Since(start)
		req := c.Request()
		status := c.Response().Status

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		h.metrics.observeRequest(req.Method, route, status, duration)

		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds(),
			"remote_addr", req.RemoteAddr,
		)

		return nil
	}
}
