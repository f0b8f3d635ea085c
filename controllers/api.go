package controllers

import (
	"net/http"

	"crush-hub/internal/config"
	"crush-hub/internal/env"
	"crush-hub/internal/logger"
	"crush-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIController struct {
	server       *services.Server
	enableReload bool
}

/**
 * Create new API controller instance
 * @param {*services.Server} server - Server instance providing the health report
 * @param {bool} enableReload - register POST /api/v1/reload
 * @returns {*APIController} New API controller instance
 * @example
 * controller := controllers.NewAPIController(services.NewServer(), false)
 */
func NewAPIController(server *services.Server, enableReload bool) *APIController {
	return &APIController{
		server:       server,
		enableReload: enableReload,
	}
}

/**
 * Register service level routes to Gin engine
 * @param {*gin.Engine} r - Gin router instance
 * @description
 * - Registers routes for:
 *   - Service index and health probes
 *   - Prometheus metrics
 *   - Config reload, only when server.enable_reload is set. The route has
 *     no authentication, so it stays off unless the listener is private.
 */
func (a *APIController) RegisterRoutes(r *gin.Engine) {
	r.GET("/", a.Index)
	r.GET("/healthz", a.Healthz)
	r.GET("/api/health", a.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if a.enableReload {
		r.POST("/api/v1/reload", a.ReloadConfig)
	}
}

// @Summary 服务索引
// @Description 列出服务提供的接口
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (a *APIController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "crush-hub",
		"version": env.SoftwareVer,
		"endpoints": []string{
			"/api/config",
			"/api/skills",
			"/api/health",
			"/api/install/unix",
			"/api/install/windows",
			"/api/download/crush/{platform}/{arch}",
		},
	})
}

// @Summary 重新加载配置
// @Description 重新加载应用配置文件，校验失败时保留当前配置
// @Tags Config
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/reload [post]
func (a *APIController) ReloadConfig(c *gin.Context) {
	if err := config.ReloadConfig(); err != nil {
		logger.Errorf("Reload config failed: %v", err)
		respondError(c, http.StatusInternalServerError, errInternal, "Failed to reload configuration: "+err.Error())
		return
	}
	logger.Info("Configuration reloaded")
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Configuration reloaded successfully",
	})
}

// @Summary 健康检查
// @Description 返回服务状态、版本、启动时间和关键指标
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (a *APIController) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, a.server.GetHealthz())
}
