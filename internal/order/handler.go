package order

import (
	"errors"
	"net/http"

	"github.com/Shinkhal/QuickEats/internal/user"
	"github.com/gin-gonic/gin"
)

// placeOrderRequest 定义了下单接口的请求体结构
type placeOrderRequest struct {
	Items   []Item  `json:"items" binding:"required,min=1"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Address Address `json:"address" binding:"required"`
}

// verifyPaymentRequest 定义了支付验签接口的请求体结构
type verifyPaymentRequest struct {
	OrderID        string `json:"order_id" binding:"required"`
	GatewayOrderID string `json:"gateway_order_id" binding:"required"`
	PaymentID      string `json:"payment_id" binding:"required"`
	Signature      string `json:"signature" binding:"required"`
}

// updateStatusRequest 定义了订单状态更新接口的请求体结构
type updateStatusRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required,oneof='Food Processing' 'Out for delivery' 'Delivered'"`
}

// PlaceOrder 处理 POST /api/order/place
func PlaceOrder(c *gin.Context) {
	var body placeOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "缺少必需的订单信息: " + err.Error()})
		return
	}
	if body.Address.Email == "" || body.Address.Phone == "" || body.Address.FirstName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "收货地址不完整"})
		return
	}

	newOrder, err := Place(PlaceInput{
		UserID:  user.CurrentUserID(c),
		Items:   body.Items,
		Amount:  body.Amount,
		Address: body.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "用户ID格式不正确"})
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户不存在"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "下单失败"})
		}
		return
	}

	// 返回前端拉起支付所需的全部字段
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Order Created",
		"ord_id":   newOrder.ID,
		"order_id": newOrder.GatewayOrderID,
		"amount":   newOrder.Amount,
		"key_id":   paymentCfg.KeyID,
		"name":     body.Address.FirstName + " " + body.Address.LastName,
		"email":    body.Address.Email,
		"contact":  body.Address.Phone,
	})
}

// VerifyOrder 处理 POST /api/order/verify
func VerifyOrder(c *gin.Context) {
	var body verifyPaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求参数不合法"})
		return
	}

	err := VerifyPayment(body.OrderID, body.GatewayOrderID, body.PaymentID, body.Signature)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		case errors.Is(err, ErrSignatureMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "支付校验失败"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "支付校验失败"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "支付成功"})
}

// UserOrders 处理 POST /api/order/userorders
func UserOrders(c *gin.Context) {
	orders, err := FindByUser(user.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "无法读取订单"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

// ListOrders 处理 GET /api/order/list （仅管理员）
func ListOrders(c *gin.Context) {
	orders, err := FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "无法读取订单列表"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

// UpdateOrderStatus 处理 POST /api/order/status （仅管理员）
func UpdateOrderStatus(c *gin.Context) {
	var body updateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求格式错误: " + err.Error()})
		return
	}

	if err := UpdateStatus(body.OrderID, body.Status); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "状态更新失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "订单状态已更新"})
}
