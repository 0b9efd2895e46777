package food

import "gorm.io/gorm"

// Food 定义了菜单项在数据库中的持久化模型
type Food struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// Name 是菜品名称
	Name string `gorm:"not null" json:"name"`

	// Description 是菜品描述
	Description string `json:"description"`

	// Price 是菜品单价
	Price float64 `gorm:"not null" json:"price"`

	// Image 是上传后保存的图片文件名
	Image string `json:"image"`

	// Category 是菜品分类，例如 "Salad"、"Rolls"
	Category string `gorm:"index" json:"category"`
}
