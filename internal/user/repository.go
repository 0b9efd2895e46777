package user

import (
	"errors"
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/platform/database"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ValidateID 检查一个用户标识是否是合法的UUID。
// 存储层以UUID作为主键，不合法的标识连查询都不会发起。
func ValidateID(id string) error {
	if id == "" {
		return ErrInvalidUserID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidUserID
	}
	return nil
}

// FindByID 按主键查找用户。
// 标识格式错误返回 ErrInvalidUserID，记录不存在返回 ErrUserNotFound。
func FindByID(id string) (*User, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	var u User
	if err := database.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("查询用户 %s 失败: %w", id, err)
	}
	return &u, nil
}

// FindByEmail 按邮箱查找用户，用于登录和注册查重。
// 未找到时返回 (nil, nil)，调用方据此区分业务分支。
func FindByEmail(email string) (*User, error) {
	var u User
	err := database.DB.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("按邮箱查询用户失败: %w", err)
	}
	return &u, nil
}

// Create 持久化一个新用户。
func Create(u *User) error {
	if err := database.DB.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("无法创建用户: %w", err)
	}
	return nil
}

// SaveCart 更新指定用户的购物车映射。
func SaveCart(id string, cart CartData) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	result := database.DB.Model(&User{}).Where("id = ?", id).Update("cart", datatypes.NewJSONType(cart))
	if result.Error != nil {
		return fmt.Errorf("无法更新用户 %s 的购物车: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListProfiles 返回所有用户的身份投影（ID、名称、邮箱），按创建时间排序。
func ListProfiles() ([]Profile, error) {
	var users []User
	if err := database.DB.Select("id", "name", "email").Order("created_at asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("无法读取用户列表: %w", err)
	}
	profiles := make([]Profile, len(users))
	for i, u := range users {
		profiles[i] = Profile{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return profiles, nil
}

// ListIDs 返回所有用户的主键，用于批量重算。
func ListIDs() ([]string, error) {
	var ids []string
	if err := database.DB.Model(&User{}).Order("created_at asc").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("无法读取用户ID列表: %w", err)
	}
	return ids, nil
}

// ListAll 返回所有用户的完整记录（含购物车），按创建时间排序。
func ListAll() ([]User, error) {
	var users []User
	if err := database.DB.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("无法读取用户列表: %w", err)
	}
	return users, nil
}
