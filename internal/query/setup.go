package query

import (
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/platform/database"
)

// PrimeDB 负责初始化query模块的数据库部分
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Query{}); err != nil {
		return fmt.Errorf("无法迁移query表: %w", err)
	}
	fmt.Println("Query数据库表迁移成功。")
	return nil
}
