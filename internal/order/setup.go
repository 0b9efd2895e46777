package order

import (
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/platform/config"
	"github.com/Shinkhal/QuickEats/internal/platform/database"
)

// PrimeDB 负责初始化order模块的数据库部分
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Order{}, &Item{}); err != nil {
		return fmt.Errorf("无法迁移order表: %w", err)
	}
	fmt.Println("Order数据库表迁移成功。")
	return nil
}

// Configure 注入支付网关的验签配置。
func Configure(cfg config.PaymentConfig) {
	paymentCfg = cfg
}
