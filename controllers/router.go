package controllers

import (
	"crush-hub/internal/config"
	"crush-hub/internal/logger"
	"crush-hub/internal/middleware"
	"crush-hub/internal/skills"
	"crush-hub/services"

	"github.com/gin-gonic/gin"
)

/**
 * Build the gin engine with all routes and middleware
 * @param {*config.AppConfig} cfg - configuration used for router level settings
 * @param {*services.Server} server - health reporter
 * @returns {*gin.Engine} ready to serve
 * @description
 * - Unknown routes answer 404, wrong methods 405 with an Allow header, panics 500
 * - Forwarding headers are honoured only from cfg.Server.TrustedProxies;
 *   with none configured the client IP is the socket peer
 * - The download rate limiter is sized from cfg once; a reload does not resize it
 */
func NewRouter(cfg *config.AppConfig, server *services.Server) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		logger.Warnf("Invalid trusted proxies %v, trusting none: %v", cfg.Server.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(Recovery(), middleware.RequestID(), middleware.AccessLog(), middleware.MetricsMiddleware())
	r.NoRoute(NotFound)

	NewAPIController(server, cfg.Server.EnableReload).RegisterRoutes(r)
	NewResourceController(skills.Catalog).RegisterRoutes(r)

	var guards []gin.HandlerFunc
	if limiter := middleware.NewRateLimiter(cfg.Download.RateLimit, cfg.Download.Burst); limiter != nil {
		guards = append(guards, limiter.Middleware())
	}
	NewDistributionController(guards...).RegisterRoutes(r)

	r.NoMethod(MethodNotAllowed(r.Routes()))
	return r
}
