package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-bot-go/internal/service"
	"campus-bot-go/pkg/log"
)

// AnalyticsHandler 负责处理使用统计页的请求。
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler 创建一个新的 AnalyticsHandler 实例。
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview 返回全部使用统计。
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analyticsService.Overview()
	if err != nil {
		log.Error("Overview: failed to aggregate analytics", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    http.StatusInternalServerError,
			"message": "Failed to load analytics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    http.StatusOK,
		"message": "success",
		"data":    overview,
	})
}
