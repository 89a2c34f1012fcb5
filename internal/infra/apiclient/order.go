package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/service"
)

func orderPath(id int64) string {
	return "/orders/" + strconv.FormatInt(id, 10)
}

// ListOrders returns one page of the order history.
func (c *Client) ListOrders(ctx context.Context, token string, query service.OrderQuery) (*entity.OrderPage, error) {
	q := url.Values{}
	if query.Status != "" {
		q.Set("status", orderStatusToWire(query.Status))
	}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(query.PageSize))
	}

	var out orderListDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: "/orders", token: token, query: q}, &out); err != nil {
		return nil, err
	}

	page := &entity.OrderPage{
		Items:    make([]entity.Order, 0, len(out.Items)),
		Total:    out.Total,
		Page:     out.Page,
		PageSize: out.PageSize,
	}
	for i := range out.Items {
		page.Items = append(page.Items, out.Items[i].toEntity())
	}

	return page, nil
}

// GetOrder returns one order.
func (c *Client) GetOrder(ctx context.Context, token string, id int64) (*entity.Order, error) {
	var out orderDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: orderPath(id), token: token}, &out); err != nil {
		return nil, err
	}
	order := out.toEntity()

	return &order, nil
}

// CancelOrder asks the API to cancel; it may refuse.
func (c *Client) CancelOrder(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   orderPath(id) + "/cancel",
		token:  token,
		body:   cancelOrderRequest{},
	}, nil)
}

// CreatePayment opens a payment with the chosen provider.
func (c *Client) CreatePayment(ctx context.Context, token string, orderID int64, method entity.PaymentMethod) (*entity.PaymentInstruction, error) {
	var out paymentDTO
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/payments/" + strconv.FormatInt(orderID, 10) + "/" + url.PathEscape(string(method)),
		token:  token,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &entity.PaymentInstruction{
		PaymentID:   out.PaymentID,
		RedirectURL: out.PayURL,
		FormHTML:    out.FormHTML,
	}, nil
}
