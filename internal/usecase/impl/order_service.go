package impl

import (
	"context"
	"log/slog"
	"strconv"

	"socksflow/config"
	deliverycontext "socksflow/internal/delivery/context"
	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/mutation"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"go.uber.org/fx"
)

type orderService struct {
	orders   service.OrderService
	qrcode   service.QRCodeService
	tracker  *mutation.Tracker
	pageSize int
	logger   *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Orders  service.OrderService
	QRCode  service.QRCodeService
	Tracker *mutation.Tracker
	Config  *config.Config
	Logger  *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orders:   params.Orders,
		qrcode:   params.QRCode,
		tracker:  params.Tracker,
		pageSize: params.Config.Orders.PageSize,
		logger:   params.Logger,
	}
}

// List returns one page of the order history. Unknown statuses list everything.
func (s *orderService) List(ctx context.Context, sess *session.Session, status entity.OrderStatus, page int) (*entity.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if !status.IsValid() {
		status = ""
	}

	result, err := s.orders.ListOrders(ctx, sess.Token(), service.OrderQuery{
		Status:   status,
		Page:     page,
		PageSize: s.pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return result, nil
}

// Get returns one order.
func (s *orderService) Get(ctx context.Context, sess *session.Session, id int64) (*entity.Order, error) {
	order, err := s.orders.GetOrder(ctx, sess.Token(), id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get order %d", id)
	}

	return order, nil
}

// Cancel asks the API to cancel the order.
func (s *orderService) Cancel(ctx context.Context, sess *session.Session, id int64) error {
	key := mutation.Key{Session: sess.ID(), Resource: orderResource(id), Action: "cancel"}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		return s.orders.CancelOrder(ctx, sess.Token(), id)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to cancel order %d", id)
	}

	return nil
}

// Pay requests a payment for a pending order. The QR code is a convenience;
// failing to render it does not fail the payment.
func (s *orderService) Pay(ctx context.Context, sess *session.Session, id int64, method entity.PaymentMethod) (*usecase.PaymentView, error) {
	order, err := s.orders.GetOrder(ctx, sess.Token(), id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get order %d", id)
	}
	if !order.CanPay() {
		return nil, errors.Wrapf(domainerrors.ErrTransitionNotAllowed, "order %d is %s", id, order.Status)
	}
	if method == "" {
		method = entity.PaymentAlipay
	}

	var instruction *entity.PaymentInstruction
	key := mutation.Key{Session: sess.ID(), Resource: orderResource(id), Action: "pay"}
	err = s.tracker.Run(ctx, key, func(ctx context.Context) error {
		var err error
		instruction, err = s.orders.CreatePayment(ctx, sess.Token(), id, method)

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create payment for order %d", id)
	}

	view := &usecase.PaymentView{Order: order, Instruction: instruction}
	if instruction.RedirectURL != "" {
		png, err := s.qrcode.PaymentQR(instruction.RedirectURL)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to render payment QR code",
				slog.Int64("order_id", id),
				slog.Any("error", err),
			)
		} else {
			view.QRCode = png
		}
	}

	return view, nil
}

func orderResource(id int64) string {
	return "order:" + strconv.FormatInt(id, 10)
}
