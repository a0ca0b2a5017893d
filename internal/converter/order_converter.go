package converter

import (
	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/domain/entity"
)

func OrderToResponse(order *entity.Order) *dto.OrderResponse {
	if order == nil {
		return nil
	}

	return &dto.OrderResponse{
		ID:           order.ID,
		UserID:       order.UserID,
		ProductType:  string(order.ProductType),
		ProductName:  order.ProductName,
		Price:        order.Price,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Address:      order.Address,
		Quantity:     order.Quantity,
		QRCode:       order.QRCode,
		Status:       string(order.Status),
		OrderDate:    order.OrderDate,
	}
}

func OrdersToResponses(orders []entity.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *OrderToResponse(&orders[i]))
	}
	return responses
}
