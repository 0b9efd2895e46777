package food

import (
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/platform/database"
)

// PrimeDB 负责初始化food模块的数据库部分
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Food{}); err != nil {
		return fmt.Errorf("无法迁移food表: %w", err)
	}
	fmt.Println("Food数据库表迁移成功。")
	return nil
}
