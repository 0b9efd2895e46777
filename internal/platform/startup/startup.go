package startup

import (
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/food"
	"github.com/Shinkhal/QuickEats/internal/lead"
	"github.com/Shinkhal/QuickEats/internal/order"
	"github.com/Shinkhal/QuickEats/internal/platform/metadata"
	"github.com/Shinkhal/QuickEats/internal/query"
	"github.com/Shinkhal/QuickEats/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口，
// 按依赖顺序完成各模块的数据库迁移和服务装配。
func InitializeApplication() error {
	fmt.Println("开始应用初始化...")

	if err := metadata.PrimeDB(); err != nil {
		return err
	}
	if err := user.PrimeDB(); err != nil {
		return err
	}
	if err := food.PrimeDB(); err != nil {
		return err
	}
	if err := order.PrimeDB(); err != nil {
		return err
	}
	if err := query.PrimeDB(); err != nil {
		return err
	}
	if err := lead.PrimeDB(); err != nil {
		return err
	}

	lead.Init()

	fmt.Println("应用初始化完成！")
	return nil
}
