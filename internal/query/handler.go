package query

import (
	"net/http"
	"time"

	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// submitRequest 定义了咨询提交接口的请求体结构
type submitRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	ContactNo string `json:"contactNo" binding:"required"`
	Text      string `json:"query" binding:"required"`
	Expertise string `json:"expertise" binding:"required"`
}

// resolveRequest 定义了咨询关闭接口的请求体结构
type resolveRequest struct {
	ID uint `json:"id" binding:"required"`
}

// SubmitQuery 处理 POST /api/query/submit （公开）
func SubmitQuery(c *gin.Context) {
	var body submitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "所有字段都是必填的"})
		return
	}

	q := Query{
		Name:      body.Name,
		Email:     body.Email,
		ContactNo: body.ContactNo,
		Text:      body.Text,
		Expertise: body.Expertise,
		Status:    StatusPending,
	}
	if err := database.DB.Create(&q).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "咨询提交失败"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "咨询已提交"})
}

// GetQueries 处理 GET /api/query/list （仅管理员）
// 除了完整列表外，还返回后台仪表盘需要的统计数据。
func GetQueries(c *gin.Context) {
	var queries []Query
	if err := database.DB.Order("created_at desc").Find(&queries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "无法读取咨询列表"})
		return
	}

	resolved := make([]Query, 0)
	pending := 0
	for _, q := range queries {
		if q.Status == StatusResolved {
			resolved = append(resolved, q)
		} else {
			pending++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"totalQueries":     len(queries),
		"queryResolved":    len(resolved),
		"pendingQueries":   pending,
		"completedQueries": resolved,
		"lineData":         dailySeries(queries, time.Now()),
		"barData":          expertiseCounts(queries),
		"queries":          queries,
	})
}

// ResolveQuery 处理 POST /api/query/resolve （仅管理员）
func ResolveQuery(c *gin.Context) {
	var body resolveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误: " + err.Error()})
		return
	}

	result := database.DB.Model(&Query{}).Where("id = ?", body.ID).Update("status", StatusResolved)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "咨询不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "咨询已关闭"})
}
