package cart

import (
	"errors"
	"net/http"

	"github.com/Shinkhal/QuickEats/internal/user"
	"github.com/gin-gonic/gin"
)

// cartItemRequest 定义了购物车增删接口的请求体结构
type cartItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// respondCartError 把购物车操作的业务错误映射为HTTP响应。
func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidUserID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "用户ID格式不正确"})
	case errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户不存在"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "购物车操作失败"})
	}
}

// AddToCart 处理 POST /api/cart/add
func AddToCart(c *gin.Context) {
	var body cartItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误: " + err.Error()})
		return
	}

	items, err := AddItem(user.CurrentUserID(c), body.ItemID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已加入购物车", "cartData": items})
}

// RemoveFromCart 处理 POST /api/cart/remove
func RemoveFromCart(c *gin.Context) {
	var body cartItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误: " + err.Error()})
		return
	}

	items, err := RemoveItem(user.CurrentUserID(c), body.ItemID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已从购物车移除", "cartData": items})
}

// GetCart 处理 POST /api/cart/get
func GetCart(c *gin.Context) {
	items, err := Items(user.CurrentUserID(c))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cartData": items})
}
