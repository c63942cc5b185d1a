package models

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusComplete OrderStatus = "complete"
	OrderStatusFailed   OrderStatus = "failed"
)

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string      `gorm:"unique;not null" json:"reference"`
	UserID    string      `gorm:"index;not null" json:"user_id"`
	User      *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem carries a snapshot of the product name and unit price taken at
// order-creation time, so later catalog edits never change past orders.
type OrderItem struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint     `gorm:"index;not null" json:"order_id"`
	ProductID   uint     `gorm:"not null" json:"product_id"`
	Product     *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductName string   `json:"product_name"`
	UnitPrice   float64  `gorm:"not null" json:"unit_price"`
	Quantity    int      `gorm:"not null" json:"quantity"`
}
