package food

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/gin-gonic/gin"
)

// uploadDir 是菜品图片的保存目录，由路由层以静态目录的形式对外暴露
const uploadDir = "uploads"

// AddFood 处理 POST /api/food/add （仅管理员）
// 请求是multipart表单：image文件 + name/description/price/category字段
func AddFood(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	category := c.PostForm("category")
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if name == "" || err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "缺少菜品名称或价格不合法"})
		return
	}

	// 图片是可选的；存在时以时间戳前缀保存，避免文件名冲突
	var filename string
	if file, err := c.FormFile("image"); err == nil {
		filename = fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "图片保存失败"})
			return
		}
	}

	item := Food{
		Name:        name,
		Description: description,
		Price:       price,
		Image:       filename,
		Category:    category,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "菜品保存失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "菜品已添加"})
}

// ListFood 处理 GET /api/food/list
func ListFood(c *gin.Context) {
	var items []Food
	if err := database.DB.Order("id asc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "无法读取菜单"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

// RemoveFood 处理 POST /api/food/remove （仅管理员）
func RemoveFood(c *gin.Context) {
	var body struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误: " + err.Error()})
		return
	}

	result := database.DB.Delete(&Food{}, body.ID)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "菜品删除失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "菜品不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "菜品已删除"})
}
