package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"crush-hub/internal/baseurl"
	"crush-hub/internal/binaries"
	"crush-hub/internal/config"
	"crush-hub/internal/logger"
	"crush-hub/internal/scripts"
	"crush-hub/services"

	"github.com/gin-gonic/gin"
)

// DistributionController serves install scripts and binary download redirects.
type DistributionController struct {
	downloadGuards []gin.HandlerFunc
}

/**
 * Create new distribution controller instance
 * @param {...gin.HandlerFunc} downloadGuards - middleware run before download redirects (rate limiting)
 * @returns {*DistributionController} New controller instance
 */
func NewDistributionController(downloadGuards ...gin.HandlerFunc) *DistributionController {
	return &DistributionController{downloadGuards: downloadGuards}
}

func (d *DistributionController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/install/:kind", d.InstallScript)

	handlers := append(append([]gin.HandlerFunc{}, d.downloadGuards...), d.Download)
	api.GET("/download/crush/:platform/:arch", handlers...)
}

// resolveBase reads the environment derived config and the request Host and
// hands them to the resolver.
func resolveBase(c *gin.Context) baseurl.Context {
	pub := config.App().Public
	return baseurl.Resolve(pub.BaseURL, c.Request.Host, pub.DeploymentHost)
}

// @Summary 获取安装脚本
// @Description 返回 unix (bash) 或 windows (PowerShell) 安装脚本，脚本中的地址为当前服务地址
// @Tags Distribution
// @Produce plain
// @Param kind path string true "unix | windows"
// @Success 200 {string} string
// @Failure 404 {object} models.ErrorResponse
// @Router /api/install/{kind} [get]
func (d *DistributionController) InstallScript(c *gin.Context) {
	kind := c.Param("kind")
	script, err := scripts.Render(kind, resolveBase(c).String())
	if err != nil {
		if errors.Is(err, scripts.ErrUnknownScript) {
			respondError(c, http.StatusNotFound, errNotFound,
				fmt.Sprintf("No install script for '%s'. Available: unix, windows", kind))
			return
		}
		logger.Errorf("Render install script failed: %v", err)
		respondError(c, http.StatusInternalServerError, errInternal, "Failed to generate install script")
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(script))
}

// @Summary 下载 crush 二进制
// @Description 重定向到 /binaries/{platform}/{arch}/crush 静态文件
// @Tags Distribution
// @Param platform path string true "linux | darwin | windows"
// @Param arch path string true "amd64 | arm64"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Router /api/download/crush/{platform}/{arch} [get]
func (d *DistributionController) Download(c *gin.Context) {
	target, rej := binaries.Validate(c.Param("platform"), c.Param("arch"), resolveBase(c))
	if rej != nil {
		services.RecordDownloadRejection(string(rej.Kind))
		respondError(c, http.StatusBadRequest, string(rej.Kind), rej.Message)
		return
	}
	services.RecordDownloadRedirect(target.Platform, target.Arch)
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", config.App().Download.CacheMaxAge))
	c.Redirect(http.StatusFound, target.URL)
}
