package service

import (
	"context"

	"socksflow/internal/domain/entity"
)

// OrderQuery filters and pages the order history.
type OrderQuery struct {
	Status   entity.OrderStatus // Empty means all.
	Page     int                // 1-based.
	PageSize int
}

// OrderService is the order and payment part of the external API.
// Cancellation and payment are advisory requests; the API decides.
type OrderService interface {
	ListOrders(ctx context.Context, token string, query OrderQuery) (*entity.OrderPage, error)
	GetOrder(ctx context.Context, token string, id int64) (*entity.Order, error)
	CancelOrder(ctx context.Context, token string, id int64) error
	CreatePayment(ctx context.Context, token string, orderID int64, method entity.PaymentMethod) (*entity.PaymentInstruction, error)
}
