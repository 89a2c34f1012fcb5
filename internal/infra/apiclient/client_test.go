package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socksflow/config"
	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "tok-123"

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Params{
		Config: &config.Config{API: &config.APIConfig{BaseURL: srv.URL + "/api/v1/", Timeout: 5 * time.Second}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()

	assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "lilei@example.com", body.Email)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "access",
			"refresh_token": "refresh",
			"token_type":    "bearer",
			"expires_in":    1800,
		})
	}))

	tokens, err := client.Login(context.Background(), "lilei@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantCode    int
	}{
		{
			name:        "string detail",
			status:      http.StatusUnauthorized,
			body:        `{"detail":"Incorrect email or password"}`,
			wantMessage: "Incorrect email or password",
			wantCode:    http.StatusUnauthorized,
		},
		{
			name:        "validation detail list",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"},{"msg":"field required"}]}`,
			wantMessage: "value is not a valid email address; field required",
			wantCode:    http.StatusUnprocessableEntity,
		},
		{
			name:        "no detail falls back",
			status:      http.StatusBadRequest,
			body:        `{}`,
			wantMessage: domainerrors.GenericFailureMessage,
			wantCode:    http.StatusBadRequest,
		},
		{
			name:        "server error hides detail",
			status:      http.StatusInternalServerError,
			body:        `{"detail":"Traceback ..."}`,
			wantMessage: domainerrors.GenericFailureMessage,
			wantCode:    http.StatusBadGateway,
		},
		{
			name:        "non json body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: domainerrors.GenericFailureMessage,
			wantCode:    http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))

			_, err := client.Login(context.Background(), "a@b.c", "x")
			require.Error(t, err)

			var apiErr *domainerrors.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status())
			assert.Equal(t, tt.wantMessage, apiErr.Message())
			assert.Equal(t, tt.wantCode, apiErr.HTTPCode())
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(Params{
		Config: &config.Config{API: &config.APIConfig{BaseURL: srv.URL, Timeout: time.Second}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err := client.ListAddresses(context.Background(), testToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestClient_UnauthorizedIsDetected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
	}))

	_, err := client.ListSubscriptions(context.Background(), testToken)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestClient_FetchUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":          7,
			"email":       "lilei@example.com",
			"name":        "Li Lei",
			"phone":       "13800138000",
			"is_verified": true,
			"created_at":  "2024-05-01T08:30:00",
		})
	})
	mux.HandleFunc("/api/v1/addresses", func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"items": []map[string]any{{
				"id": 3, "name": "Li Lei", "phone": "13800138000", "province": "Zhejiang",
				"city": "Hangzhou", "district": "Xihu", "address": "1 Wensan Rd",
				"zip_code": nil, "is_default": true, "tag": "home", "updated_at": "2024-05-02T10:00:00Z",
			}},
			"total": 1,
		})
	})
	mux.HandleFunc("/api/v1/users/me/size-profile", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "not found"})
	})

	client := newTestClient(t, mux)

	user, err := client.FetchUser(context.Background(), testToken)
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "13800138000", user.Phone)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), user.CreatedAt)
	require.Len(t, user.Addresses, 1)
	assert.Equal(t, "1 Wensan Rd", user.Addresses[0].Detail)
	assert.Equal(t, entity.AddressTagHome, user.Addresses[0].Tag)
	assert.Nil(t, user.SizeProfile)
	assert.False(t, user.HasSockSize())
}

func TestClient_FetchUser_PropagatesFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "expired"})
	})
	mux.HandleFunc("/api/v1/addresses", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"items": []any{}, "total": 0})
	})
	mux.HandleFunc("/api/v1/users/me/size-profile", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"sock_size": "M"})
	})

	client := newTestClient(t, mux)

	_, err := client.FetchUser(context.Background(), testToken)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestClient_UpdateProfile(t *testing.T) {
	var gotUser updateUserRequest
	var gotSize sizeProfileRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotUser))
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 7})
	})
	mux.HandleFunc("/api/v1/users/me/size-profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotSize))
			writeJSON(t, w, http.StatusOK, map[string]any{"sock_size": gotSize.SockSize})

			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"sock_size": "L", "shoe_size": "42"})
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 7, "phone": "13800138000"})
	})
	mux.HandleFunc("/api/v1/addresses", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"items": []any{}, "total": 0})
	})

	client := newTestClient(t, mux)

	phone := "13800138000"
	user, err := client.UpdateProfile(context.Background(), testToken, &service.ProfileUpdate{
		Phone:       &phone,
		SizeProfile: &entity.SizeProfile{SockSize: "L", ShoeSize: "42"},
	})
	require.NoError(t, err)

	require.NotNil(t, gotUser.Phone)
	assert.Equal(t, phone, *gotUser.Phone)
	assert.Nil(t, gotUser.Name)
	assert.Equal(t, "L", gotSize.SockSize)
	assert.Equal(t, "L", user.SizeProfile.SockSize)
	assert.Equal(t, "42", user.SizeProfile.ShoeSize)
}

func TestClient_CreateSubscription(t *testing.T) {
	var got createSubscriptionRequest

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBearer(t, r)
		assert.Equal(t, "/api/v1/subscriptions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"subscription": map[string]any{
				"id":                 11,
				"plan_code":          "standard",
				"plan_name":          "Standard Box",
				"status":             "active",
				"price_monthly":      "49.90",
				"started_at":         "2024-05-01T00:00:00",
				"next_delivery_at":   "2024-06-01T00:00:00",
				"delivery_frequency": 2,
				"style_preferences":  `{"size":"L","note":"no wool"}`,
			},
			"order": map[string]any{"id": 99},
		})
	}))

	sub, err := client.CreateSubscription(context.Background(), testToken, "standard", &service.CreateSubscriptionParams{
		Preferences: entity.DeliveryPreferences{Frequency: entity.FrequencyBimonthly, Size: "L", Note: "no wool"},
		ShippingAddress: entity.ShippingAddress{
			RecipientName: "Li Lei", RecipientPhone: "13800138000",
			Province: "Zhejiang", City: "Hangzhou", District: "Xihu", Detail: "1 Wensan Rd",
		},
		PaymentMethod: entity.PaymentAlipay,
		AutoRenew:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "standard", got.PlanCode)
	assert.Equal(t, 2, got.DeliveryFrequency)
	assert.Equal(t, "1 Wensan Rd", got.ShippingAddress.Address)
	assert.Nil(t, got.ShippingAddress.ZipCode)
	assert.Equal(t, "alipay", got.PaymentMethod)

	assert.Equal(t, int64(11), sub.ID)
	assert.True(t, decimal.RequireFromString("49.90").Equal(sub.Price))
	assert.Equal(t, "CNY", sub.Currency)
	assert.Equal(t, entity.FrequencyBimonthly, sub.Preferences.Frequency)
	assert.Equal(t, "no wool", sub.Preferences.Note)
	require.NotNil(t, sub.NextDeliveryAt)
	assert.Nil(t, sub.CurrentPeriodEnd)
}

func TestClient_SubscriptionTransitions(t *testing.T) {
	var paths []string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 5, "status": "paused"})
	}))

	ctx := context.Background()
	require.NoError(t, client.PauseSubscription(ctx, testToken, 5))
	require.NoError(t, client.ResumeSubscription(ctx, testToken, 5))
	require.NoError(t, client.CancelSubscription(ctx, testToken, 5))

	assert.Equal(t, []string{
		"/api/v1/subscriptions/5/pause",
		"/api/v1/subscriptions/5/resume",
		"/api/v1/subscriptions/5/cancel",
	}, paths)
}

func TestClient_ListOrders(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "delivered", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"total":     11,
			"page":      2,
			"page_size": 10,
			"items": []map[string]any{{
				"id":              1,
				"order_number":    "SF20240501001",
				"status":          "delivered",
				"total_amount":    "49.90",
				"items":           []map[string]any{{"name": "Standard Box", "quantity": 1, "unit_price": "49.90", "subtotal": "49.90"}},
				"shipping_address": map[string]any{"name": "Li Lei", "phone": "13800138000", "province": "Zhejiang", "city": "Hangzhou", "district": "Xihu", "address": "1 Wensan Rd"},
				"tracking_number": "SF123456",
				"created_at":      "2024-05-01T00:00:00",
				"delivered_at":    "2024-05-04T00:00:00",
			}},
		})
	}))

	page, err := client.ListOrders(context.Background(), testToken, service.OrderQuery{Status: entity.OrderCompleted, Page: 2, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	order := page.Items[0]
	assert.Equal(t, entity.OrderCompleted, order.Status)
	require.NotNil(t, order.Logistics)
	assert.Equal(t, "SF123456", order.Logistics.TrackingNumber)
	require.NotNil(t, order.CompletedAt)
	assert.Equal(t, "Li Lei", order.ShippingAddress.RecipientName)
	assert.False(t, page.HasNext())
}

func TestClient_CreatePayment(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/payments/42/alipay", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"payment_id": 5,
			"payment_no": "P001",
			"pay_url":    "https://openapi.alipay.com/gateway.do?x=1",
		})
	}))

	pay, err := client.CreatePayment(context.Background(), testToken, 42, entity.PaymentAlipay)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pay.PaymentID)
	assert.Equal(t, "https://openapi.alipay.com/gateway.do?x=1", pay.RedirectURL)
	assert.Empty(t, pay.FormHTML)
}

func TestClient_AddressMutations(t *testing.T) {
	var calls []string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			var body addressRequest
			if r.ContentLength > 0 {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			}
			writeJSON(t, w, http.StatusOK, map[string]any{"id": 3, "name": body.Name, "is_default": true})
		}
	}))

	ctx := context.Background()
	input := &service.AddressInput{RecipientName: "Li Lei", RecipientPhone: "13800138000", Tag: entity.AddressTagWork}

	created, err := client.CreateAddress(ctx, testToken, input)
	require.NoError(t, err)
	assert.Equal(t, "Li Lei", created.RecipientName)

	_, err = client.UpdateAddress(ctx, testToken, 3, input)
	require.NoError(t, err)
	require.NoError(t, client.SetDefaultAddress(ctx, testToken, 3))
	require.NoError(t, client.DeleteAddress(ctx, testToken, 3))

	assert.Equal(t, []string{
		"POST /api/v1/addresses",
		"PUT /api/v1/addresses/3",
		"POST /api/v1/addresses/3/default",
		"DELETE /api/v1/addresses/3",
	}, calls)
}

func TestClient_UpdateAddress_Body(t *testing.T) {
	tests := []struct {
		name  string
		input *service.AddressInput
		check func(t *testing.T, body map[string]any)
	}{
		{
			name:  "editing the default address leaves the flag alone",
			input: &service.AddressInput{RecipientName: "Han", PostalCode: "310000", Tag: entity.AddressTagHome},
			check: func(t *testing.T, body map[string]any) {
				assert.NotContains(t, body, "is_default")
				assert.Equal(t, "310000", body["zip_code"])
				assert.Equal(t, "home", body["tag"])
			},
		},
		{
			name:  "choosing default sends it",
			input: &service.AddressInput{RecipientName: "Han", IsDefault: true},
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["is_default"])
			},
		},
		{
			name:  "blank postal code and tag are cleared",
			input: &service.AddressInput{RecipientName: "Han"},
			check: func(t *testing.T, body map[string]any) {
				require.Contains(t, body, "zip_code")
				assert.Nil(t, body["zip_code"])
				require.Contains(t, body, "tag")
				assert.Nil(t, body["tag"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				writeJSON(t, w, http.StatusOK, map[string]any{"id": 1, "name": "Han", "is_default": true})
			}))

			updated, err := client.UpdateAddress(context.Background(), testToken, 1, tt.input)
			require.NoError(t, err)
			assert.True(t, updated.IsDefault)
			tt.check(t, body)
		})
	}
}

func TestClient_Logout_ToleratesMissingEndpoint(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
	}))

	assert.NoError(t, client.Logout(context.Background(), testToken))
}

func TestAPITime_Unmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{`"2024-05-01T08:30:00Z"`, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)},
		{`"2024-05-01T08:30:00.123456"`, time.Date(2024, 5, 1, 8, 30, 0, 123456000, time.UTC)},
		{`"2024-05-01"`, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{`null`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var got apiTime
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
		})
	}

	var bad apiTime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}
