package usecase

import (
	"context"

	"socksflow/internal/domain/entity"
	"socksflow/internal/session"
)

// PaymentView is what the payment page renders.
type PaymentView struct {
	Order       *entity.Order
	Instruction *entity.PaymentInstruction
	QRCode      []byte // PNG of the redirect URL, empty when the API returned a form
}

// OrderUsecase reads the order history and forwards payment and cancellation requests.
type OrderUsecase interface {
	List(ctx context.Context, sess *session.Session, status entity.OrderStatus, page int) (*entity.OrderPage, error)
	Get(ctx context.Context, sess *session.Session, id int64) (*entity.Order, error)
	Cancel(ctx context.Context, sess *session.Session, id int64) error
	Pay(ctx context.Context, sess *session.Session, id int64, method entity.PaymentMethod) (*PaymentView, error)
}
