package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ProductType is one of the two fixed badge product kinds.
type ProductType string

const (
	ProductStandard ProductType = "standard"
	ProductPremium  ProductType = "premium"
)

// Order represents a QR badge purchase placed at checkout.
type Order struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductType  ProductType     `gorm:"type:varchar(20);not null" json:"product_type"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CustomerName string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	Phone        string          `gorm:"type:varchar(20);not null" json:"phone"`
	Address      string          `gorm:"type:text;not null" json:"address"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	QRCode       string          `gorm:"type:varchar(36)" json:"qr_code,omitempty"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	OrderDate    time.Time       `gorm:"autoCreateTime" json:"order_date"`

	User *Account `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// IsPending checks if the order is still in its initial state.
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsDelivered checks if the order reached its terminal state.
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

// ValidProductType reports whether t is one of the two fixed product kinds.
func ValidProductType(t string) bool {
	return ProductType(t) == ProductStandard || ProductType(t) == ProductPremium
}
