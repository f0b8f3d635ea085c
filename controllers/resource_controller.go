package controllers

import (
	"net/http"
	"time"

	"crush-hub/internal/config"
	"crush-hub/internal/crushcfg"
	"crush-hub/internal/env"
	"crush-hub/internal/logger"
	"crush-hub/internal/models"
	"crush-hub/internal/skills"

	"github.com/gin-gonic/gin"
)

// ResourceController serves the configuration template and the skill catalog.
type ResourceController struct {
	catalog []skills.Skill
}

func NewResourceController(catalog []skills.Skill) *ResourceController {
	return &ResourceController{catalog: catalog}
}

func (rc *ResourceController) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/config", rc.GetConfig)
	api.GET("/skills", rc.ListSkills)
}

// @Summary 获取配置模板
// @Description 返回 crush 配置模板，updated_at 为请求时间
// @Tags Resources
// @Produce json
// @Success 200 {object} crushcfg.Document
// @Failure 500 {object} models.ErrorResponse
// @Router /api/config [get]
func (rc *ResourceController) GetConfig(c *gin.Context) {
	doc, err := crushcfg.BuildWithOverrides(time.Now(), env.SoftwareVer, config.App().Template)
	if err != nil {
		logger.Errorf("Build config template failed: %v", err)
		respondError(c, http.StatusInternalServerError, errInternal, err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// @Summary 获取 Skills 列表
// @Description 返回可用 skills，未知分类返回空列表且 total 为 0
// @Tags Resources
// @Produce json
// @Param category query string false "creative | design | docs | dev"
// @Success 200 {object} models.SkillsResponse
// @Router /api/skills [get]
func (rc *ResourceController) ListSkills(c *gin.Context) {
	list := skills.Filter(rc.catalog, c.Query("category"))
	c.JSON(http.StatusOK, models.SkillsResponse{
		Total:  len(list),
		Skills: list,
	})
}
