package lead

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultService 由 Init 装配，handler 层统一通过它访问评分服务
var defaultService *Service

// generateRequest 定义单用户线索生成接口的请求体
type generateRequest struct {
	UserID string `json:"userId"`
}

// GetLeads 处理 GET /api/lead/leads （仅管理员）
// 只读接口：合并已有线索与用户名册，不触发任何评分写入。
func GetLeads(c *gin.Context) {
	leads, err := defaultService.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "无法读取线索列表"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(leads),
		"leads":   leads,
		"message": "线索列表获取成功",
	})
}

// GenerateLead 处理 POST /api/lead/generate-lead （仅管理员）
func GenerateLead(c *gin.Context) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "缺少userId"})
		return
	}

	enriched, err := defaultService.GenerateLead(body.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUserID):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "用户ID格式无效"})
		case errors.Is(err, ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户不存在"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "线索生成失败"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "线索生成成功",
		"data":    enriched,
	})
}

// UpdateAllLeads 处理 POST /api/lead/update-all-leads （仅管理员）
func UpdateAllLeads(c *gin.Context) {
	result, err := defaultService.RefreshAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "批量刷新失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "线索批量刷新完成",
		"data":    result,
	})
}
