package query

import "gorm.io/gorm"

// 客户咨询的处理状态
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// Query 定义了客户咨询在数据库中的持久化模型
type Query struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// Name 是提交人的姓名
	Name string `gorm:"not null" json:"name"`

	// Email 是提交人的联系邮箱
	Email string `gorm:"not null" json:"email"`

	// ContactNo 是提交人的联系电话
	ContactNo string `gorm:"not null" json:"contactNo"`

	// Text 是咨询内容
	Text string `gorm:"not null" json:"query"`

	// Expertise 是咨询的分类标签，例如 "Delivery"、"Payment"
	Expertise string `gorm:"index" json:"expertise"`

	// Status 是处理状态，"pending" 或 "resolved"
	Status string `gorm:"not null;default:pending" json:"status"`
}
