package lead

import (
	"errors"
	"fmt"
	"time"

	"github.com/Shinkhal/QuickEats/internal/order"
	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/Shinkhal/QuickEats/internal/platform/metadata"
	"github.com/Shinkhal/QuickEats/internal/user"
)

// PrimeDB 负责初始化lead模块的数据库部分
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Lead{}); err != nil {
		return fmt.Errorf("无法迁移lead表: %w", err)
	}
	fmt.Println("Lead数据库表迁移成功。")
	return nil
}

// Init 装配生产环境的评分服务：用户名册与订单统计来自数据库，
// 会话时长来自Redis测量（不可用时退回合成估算）。
func Init() {
	svc := NewService(
		&gormUserDirectory{},
		&gormOrderDirectory{},
		NewRepository(database.DB),
		NewMeasuredEstimator(),
	)
	svc.WithCheckpoint(func(at time.Time, processed int) {
		if err := metadata.SetLastLeadRefresh(database.DB, at, processed); err != nil {
			fmt.Printf("无法记录线索刷新时间: %v\n", err)
		}
	})
	defaultService = svc
}

// gormUserDirectory 把user包的仓库函数适配成评分服务的用户名册
type gormUserDirectory struct{}

func (*gormUserDirectory) ValidateID(id string) error {
	if err := user.ValidateID(id); err != nil {
		return ErrInvalidUserID
	}
	return nil
}

func (*gormUserDirectory) FindMember(id string) (*Member, error) {
	u, err := user.FindByID(id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &Member{ID: u.ID, Name: u.Name, Email: u.Email, Cart: u.CartItems()}, nil
}

func (*gormUserDirectory) ListMembers() ([]Member, error) {
	users, err := user.ListAll()
	if err != nil {
		return nil, err
	}
	members := make([]Member, len(users))
	for i := range users {
		u := &users[i]
		members[i] = Member{ID: u.ID, Name: u.Name, Email: u.Email, Cart: u.CartItems()}
	}
	return members, nil
}

// gormOrderDirectory 把order包的仓库函数适配成评分服务的订单统计
type gormOrderDirectory struct{}

func (*gormOrderDirectory) StatsFor(userID string) (OrderStats, error) {
	orders, err := order.FindByUser(userID)
	if err != nil {
		return OrderStats{}, err
	}
	stats := OrderStats{Count: len(orders)}
	for i := range orders {
		stats.ItemCount += orders[i].TotalQuantity()
	}
	return stats, nil
}

func (*gormOrderDirectory) StatsAll() (map[string]OrderStats, error) {
	orders, err := order.FindAll()
	if err != nil {
		return nil, err
	}
	byUser := make(map[string]OrderStats)
	for i := range orders {
		o := &orders[i]
		stats := byUser[o.UserID]
		stats.Count++
		stats.ItemCount += o.TotalQuantity()
		byUser[o.UserID] = stats
	}
	return byUser, nil
}
