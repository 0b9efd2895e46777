package order

import (
	"time"

	"gorm.io/gorm"
)

// 订单状态枚举
const (
	StatusProcessing     = "Food Processing"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
)

// 支付状态枚举
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

// Address 是订单的收货地址，内嵌在订单记录中。
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Item 是订单中的一个条目。
type Item struct {
	ID      uint   `gorm:"primarykey" json:"-"`
	OrderID string `gorm:"index;type:varchar(36)" json:"-"`

	// FoodID 是下单时菜品的ID快照
	FoodID string `json:"id"`

	// Name 和 Price 是下单时的菜品快照，菜单后续变动不影响历史订单
	Name  string  `json:"name"`
	Price float64 `json:"price"`

	// Quantity 是购买数量
	Quantity int `json:"quantity"`
}

// Order 定义了订单在数据库中的持久化模型。
// 每个订单只属于一个用户；从线索评分的视角看订单是只读的。
type Order struct {
	// ID 是订单的主键，UUID v7格式。
	ID string `gorm:"primarykey;type:varchar(36)" json:"id"`

	// UserID 是下单用户的ID。
	UserID string `gorm:"index;not null;type:varchar(36)" json:"userId"`

	// Items 是订单的全部条目。
	Items []Item `gorm:"foreignKey:OrderID" json:"items"`

	// Amount 是订单总金额。
	Amount float64 `gorm:"not null" json:"amount"`

	// Status 是配送状态。
	Status string `gorm:"not null" json:"status"`

	// PaymentStatus 是支付状态。
	PaymentStatus string `gorm:"not null" json:"paymentStatus"`

	// GatewayOrderID 是支付网关侧的订单号，验签时使用。
	GatewayOrderID string `json:"orderId"`

	// PaymentID 是支付完成后网关返回的支付流水号。
	PaymentID string `json:"paymentId,omitempty"`

	// Address 是收货地址快照。
	Address Address `gorm:"embedded;embeddedPrefix:addr_" json:"address"`

	// 部分gorm.Model，由GORM自动管理
	CreatedAt time.Time      `json:"date"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TotalQuantity 返回订单内所有条目的数量之和。
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
