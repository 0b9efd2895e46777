package order

import (
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/Shinkhal/QuickEats/internal/user"
)

// FindByUser 返回一个用户的全部订单（含条目），新订单在前。
func FindByUser(userID string) ([]Order, error) {
	if err := user.ValidateID(userID); err != nil {
		return nil, err
	}
	var orders []Order
	err := database.DB.Preload("Items").Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取用户 %s 的订单: %w", userID, err)
	}
	return orders, nil
}

// FindAll 返回系统内的全部订单（含条目），供后台使用。
func FindAll() ([]Order, error) {
	var orders []Order
	if err := database.DB.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("无法读取订单列表: %w", err)
	}
	return orders, nil
}
