package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest carries every commerce field; all are mandatory except
// the optional QR code reference. Price arrives as a string and is parsed
// into a decimal by the order usecase.
type CreateOrderRequest struct {
	UserID       string `json:"userId" validate:"required"`
	ProductType  string `json:"productType" validate:"required,oneof=standard premium"`
	ProductName  string `json:"productName" validate:"required"`
	Price        string `json:"price" validate:"required"`
	CustomerName string `json:"customerName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	QRCode       string `json:"qrCode"`
}

// CreatedOrder is the checkout response subset.
type CreatedOrder struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type OrderResponse struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	ProductType  string          `json:"product_type"`
	ProductName  string          `json:"product_name"`
	Price        decimal.Decimal `json:"price"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Quantity     int             `json:"quantity"`
	QRCode       string          `json:"qr_code,omitempty"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"order_date"`
}
