package user

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 用户角色枚举
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CartData 是用户购物车的内容映射。
// Key: 菜品ID, Value: 数量。
type CartData map[string]int

// User 定义了用户在数据库中的持久化模型。
type User struct {
	// ID 是用户的主键，UUID v7格式，注册时生成后不可变。
	ID string `gorm:"primarykey;type:varchar(36)"`

	// Name 是用户的显示名称。
	Name string `gorm:"not null"`

	// Email 是用户的登录凭证，全局唯一。
	Email string `gorm:"uniqueIndex;not null"`

	// Password 存储bcrypt哈希，永远不会出现在任何API响应中。
	Password string `gorm:"not null" json:"-"`

	// Age 和 Gender 只对普通用户要求，管理员账号可以为空。
	Age    int
	Gender string

	// Role 是用户的角色，"user" 或 "admin"。
	Role string `gorm:"not null;default:user"`

	// Cart 以JSON列的形式存储购物车映射，允许为空映射。
	Cart datatypes.JSONType[CartData]

	// 部分gorm.Model，由GORM自动管理
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Profile 是用户的非敏感身份投影，用于需要展示用户信息的列表场景。
type Profile struct {
	ID    string
	Name  string
	Email string
}

// CartItems 返回购物车映射的副本，nil安全。
func (u *User) CartItems() CartData {
	items := u.Cart.Data()
	if items == nil {
		return CartData{}
	}
	return items
}
