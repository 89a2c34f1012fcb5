package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/service"
)

func subscriptionPath(id int64) string {
	return "/subscriptions/" + strconv.FormatInt(id, 10)
}

func toStylePreferences(p entity.DeliveryPreferences) *stylePreferences {
	if p.Size == "" && p.Note == "" {
		return nil
	}

	return &stylePreferences{Size: p.Size, Note: p.Note}
}

// ListSubscriptions returns every subscription of the user.
func (c *Client) ListSubscriptions(ctx context.Context, token string) ([]entity.Subscription, error) {
	var out []subscriptionDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: "/subscriptions", token: token}, &out); err != nil {
		return nil, err
	}

	subs := make([]entity.Subscription, 0, len(out))
	for i := range out {
		subs = append(subs, out[i].toEntity())
	}

	return subs, nil
}

// GetSubscription returns one subscription.
func (c *Client) GetSubscription(ctx context.Context, token string, id int64) (*entity.Subscription, error) {
	var out subscriptionDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: subscriptionPath(id), token: token}, &out); err != nil {
		return nil, err
	}
	sub := out.toEntity()

	return &sub, nil
}

// CreateSubscription subscribes to planCode. The API also opens the first order.
func (c *Client) CreateSubscription(ctx context.Context, token, planCode string, params *service.CreateSubscriptionParams) (*entity.Subscription, error) {
	var out createSubscriptionResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/subscriptions",
		token:  token,
		body: createSubscriptionRequest{
			PlanCode:          planCode,
			ShippingAddress:   fromShippingAddress(params.ShippingAddress),
			StylePreferences:  toStylePreferences(params.Preferences),
			DeliveryFrequency: params.Preferences.Frequency.Months(),
			PaymentMethod:     string(params.PaymentMethod),
			AutoRenew:         params.AutoRenew,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	sub := out.Subscription.toEntity()

	return &sub, nil
}

// PauseSubscription requests active -> paused.
func (c *Client) PauseSubscription(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodPost, path: subscriptionPath(id) + "/pause", token: token}, nil)
}

// ResumeSubscription requests paused -> active.
func (c *Client) ResumeSubscription(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodPost, path: subscriptionPath(id) + "/resume", token: token}, nil)
}

// CancelSubscription requests cancellation.
func (c *Client) CancelSubscription(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodPost, path: subscriptionPath(id) + "/cancel", token: token}, nil)
}

// UpdatePreferences changes frequency, size and note.
func (c *Client) UpdatePreferences(ctx context.Context, token string, id int64, prefs entity.DeliveryPreferences) (*entity.Subscription, error) {
	var out subscriptionDTO
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   subscriptionPath(id),
		token:  token,
		body: updateSubscriptionRequest{
			DeliveryFrequency: prefs.Frequency.Months(),
			StylePreferences:  toStylePreferences(prefs),
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	sub := out.toEntity()

	return &sub, nil
}
