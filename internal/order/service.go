package order

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/notify"
	"github.com/Shinkhal/QuickEats/internal/platform/config"
	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/Shinkhal/QuickEats/internal/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOrderNotFound 表示订单不存在。
var ErrOrderNotFound = errors.New("订单不存在")

// ErrSignatureMismatch 表示支付网关验签失败。
var ErrSignatureMismatch = errors.New("支付签名校验失败")

// paymentCfg 保存支付网关的验签配置，在模块初始化时注入。
var paymentCfg config.PaymentConfig

// PlaceInput 是下单服务的输入。
type PlaceInput struct {
	UserID  string
	Items   []Item
	Amount  float64
	Address Address
}

// Place 创建一个新订单。
// 下单成功后清空用户购物车，并异步发送确认邮件。
func Place(input PlaceInput) (*Order, error) {
	// 下单用户必须存在
	u, err := user.FindByID(input.UserID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("无法生成订单ID: %w", err)
	}

	newOrder := Order{
		ID:            id.String(),
		UserID:        u.ID,
		Items:         input.Items,
		Amount:        input.Amount,
		Status:        StatusProcessing,
		PaymentStatus: PaymentPending,
		// 网关订单号在真实部署中来自网关下单接口；这里取本地订单号的衍生值
		GatewayOrderID: "order_" + id.String(),
		Address:        input.Address,
	}

	// 订单写入和购物车清空放在同一个事务中
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newOrder).Error; err != nil {
			return fmt.Errorf("无法创建订单: %w", err)
		}
		if err := tx.Model(&user.User{}).Where("id = ?", u.ID).Update("cart", nil).Error; err != nil {
			return fmt.Errorf("无法清空购物车: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notify.SendOrderConfirmationAsync(input.Address.FirstName, input.Address.Email, newOrder.ID, newOrder.Amount)
	return &newOrder, nil
}

// VerifyPayment 校验支付网关回调的HMAC签名，并据此标记订单支付状态。
// 签名算法与网关一致：HMAC-SHA256(gatewayOrderID + "|" + paymentID)的hex编码。
func VerifyPayment(orderID, gatewayOrderID, paymentID, signature string) error {
	var o Order
	if err := database.DB.First(&o, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("查询订单 %s 失败: %w", orderID, err)
	}

	mac := hmac.New(sha256.New, []byte(paymentCfg.Secret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	// hmac.Equal 保证时间恒定的比较
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		// 验签失败也要落库，让后台能看到失败的支付尝试
		database.DB.Model(&o).Update("payment_status", PaymentFailed)
		return ErrSignatureMismatch
	}

	updates := map[string]any{
		"payment_status": PaymentCompleted,
		"payment_id":     paymentID,
	}
	if err := database.DB.Model(&o).Updates(updates).Error; err != nil {
		return fmt.Errorf("无法更新订单 %s 的支付状态: %w", orderID, err)
	}
	return nil
}

// UpdateStatus 更新订单的配送状态（仅后台），并异步发送WhatsApp通知。
func UpdateStatus(orderID, status string) error {
	var o Order
	if err := database.DB.First(&o, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("查询订单 %s 失败: %w", orderID, err)
	}

	if err := database.DB.Model(&o).Update("status", status).Error; err != nil {
		return fmt.Errorf("无法更新订单 %s 的状态: %w", orderID, err)
	}

	notify.SendOrderStatusWhatsAppAsync(o.Address.Phone, o.ID, status)
	return nil
}
