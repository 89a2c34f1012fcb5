package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/entity"
	"socksflow/internal/errors"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const pathOrders = "/dashboard/orders"

// OrderHandler serves the order history, cancellation and payment.
type OrderHandler struct {
	responder
	orders usecase.OrderUsecase
}

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	Orders usecase.OrderUsecase
	Logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		responder: responder{logger: params.Logger},
		orders:    params.Orders,
	}
}

// List renders one page of the order history, optionally filtered by status.
func (h *OrderHandler) List(c echo.Context) error {
	status := entity.OrderStatus(c.QueryParam("status"))
	page, _ := strconv.Atoi(c.QueryParam("page"))

	result, err := h.orders.List(c.Request().Context(), middleware.GetSession(c), status, page)
	if err != nil {
		return errors.WithStack(err)
	}
	if !status.IsValid() {
		status = ""
	}

	return h.render(c, http.StatusOK, "orders", "Orders", view.OrdersData{
		Page:     result,
		Status:   status,
		Statuses: view.OrderStatuses,
	})
}

// Show renders one order.
func (h *OrderHandler) Show(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.Get(c.Request().Context(), middleware.GetSession(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, http.StatusOK, "order", "Order "+order.Number, view.OrderData{Order: order})
}

// Cancel requests cancellation of an order.
func (h *OrderHandler) Cancel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orders.Cancel(c.Request().Context(), middleware.GetSession(c), id); err != nil {
		return h.fail(c, orderURL(id), err, nil)
	}

	return h.success(c, orderURL(id), "Cancellation requested.")
}

// Pay starts a payment and renders the hand-off page. It is not redirected:
// the payment instruction is single use.
func (h *OrderHandler) Pay(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var form payForm
	if err := bind(c, &form); err != nil {
		return h.fail(c, orderURL(id), err, formValues(c, "method"))
	}

	payment, err := h.orders.Pay(c.Request().Context(), middleware.GetSession(c), id, entity.PaymentMethod(form.Method))
	if err != nil {
		return h.fail(c, orderURL(id), err, formValues(c, "method"))
	}

	return h.render(c, http.StatusOK, "payment", "Payment", view.PaymentData{Payment: payment})
}

func orderURL(id int64) string {
	return pathOrders + "/" + strconv.FormatInt(id, 10)
}
