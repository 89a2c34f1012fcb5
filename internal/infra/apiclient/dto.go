package apiclient

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"socksflow/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const defaultCurrency = "CNY"

// apiTime accepts RFC 3339 as well as the zone-less timestamps the API emits,
// which are UTC.
type apiTime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	var lastErr error
	for _, layout := range apiTimeLayouts {
		parsed, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			t.Time = parsed

			return nil
		}
		lastErr = err
	}

	return lastErr
}

func (t *apiTime) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time

	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}

type tokenDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type userDTO struct {
	ID          int64           `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Phone       *string         `json:"phone"`
	IsVerified  bool            `json:"is_verified"`
	CreatedAt   apiTime         `json:"created_at"`
	Addresses   []addressDTO    `json:"addresses,omitempty"`
	SizeProfile *sizeProfileDTO `json:"size_profile,omitempty"`
}

func (d *userDTO) toEntity() *entity.User {
	u := &entity.User{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      deref(d.Phone),
		IsVerified: d.IsVerified,
		CreatedAt:  d.CreatedAt.Time,
	}
	if d.Addresses != nil {
		u.Addresses = toAddresses(d.Addresses)
	}
	if d.SizeProfile != nil {
		u.SizeProfile = d.SizeProfile.toEntity()
	}

	return u
}

type sizeProfileDTO struct {
	SockSize *string `json:"sock_size"`
	ShoeSize *string `json:"shoe_size"`
	Notes    *string `json:"notes"`
}

func (d *sizeProfileDTO) toEntity() *entity.SizeProfile {
	return &entity.SizeProfile{
		SockSize: deref(d.SockSize),
		ShoeSize: deref(d.ShoeSize),
		Notes:    deref(d.Notes),
	}
}

type updateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

type sizeProfileRequest struct {
	SockSize string  `json:"sock_size"`
	ShoeSize *string `json:"shoe_size,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type registerRequest struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Password string  `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type addressDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Province  string  `json:"province"`
	City      string  `json:"city"`
	District  string  `json:"district"`
	Address   string  `json:"address"`
	ZipCode   *string `json:"zip_code"`
	IsDefault bool    `json:"is_default"`
	Tag       *string `json:"tag"`
	UpdatedAt apiTime `json:"updated_at"`
}

func (d *addressDTO) toEntity() entity.Address {
	return entity.Address{
		ID:             d.ID,
		RecipientName:  d.Name,
		RecipientPhone: d.Phone,
		Province:       d.Province,
		City:           d.City,
		District:       d.District,
		Detail:         d.Address,
		PostalCode:     deref(d.ZipCode),
		IsDefault:      d.IsDefault,
		Tag:            entity.AddressTag(deref(d.Tag)),
		UpdatedAt:      d.UpdatedAt.Time,
	}
}

func toAddresses(in []addressDTO) entity.Addresses {
	out := make(entity.Addresses, 0, len(in))
	for i := range in {
		out = append(out, in[i].toEntity())
	}

	return out
}

type addressListDTO struct {
	Items []addressDTO `json:"items"`
	Total int          `json:"total"`
}

type addressRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Province  string  `json:"province"`
	City      string  `json:"city"`
	District  string  `json:"district"`
	Address   string  `json:"address"`
	ZipCode   *string `json:"zip_code,omitempty"`
	IsDefault bool    `json:"is_default"`
	Tag       *string `json:"tag,omitempty"`
}

// addressUpdateRequest is a partial update: the API only touches fields that are
// present, and an explicit null clears zip_code or tag.
type addressUpdateRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Province  string  `json:"province"`
	City      string  `json:"city"`
	District  string  `json:"district"`
	Address   string  `json:"address"`
	ZipCode   *string `json:"zip_code"`
	IsDefault *bool   `json:"is_default,omitempty"`
	Tag       *string `json:"tag"`
}

type shippingAddressDTO struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Province string  `json:"province"`
	City     string  `json:"city"`
	District string  `json:"district"`
	Address  string  `json:"address"`
	ZipCode  *string `json:"zip_code,omitempty"`
}

func fromShippingAddress(a entity.ShippingAddress) shippingAddressDTO {
	return shippingAddressDTO{
		Name:     a.RecipientName,
		Phone:    a.RecipientPhone,
		Province: a.Province,
		City:     a.City,
		District: a.District,
		Address:  a.Detail,
		ZipCode:  optional(a.PostalCode),
	}
}

func (d *shippingAddressDTO) toEntity() entity.ShippingAddress {
	return entity.ShippingAddress{
		RecipientName:  d.Name,
		RecipientPhone: d.Phone,
		Province:       d.Province,
		City:           d.City,
		District:       d.District,
		Detail:         d.Address,
		PostalCode:     deref(d.ZipCode),
	}
}

// stylePreferences is stored by the API as a JSON document, sometimes returned
// as an encoded string.
type stylePreferences struct {
	Size string `json:"size,omitempty"`
	Note string `json:"note,omitempty"`
}

func parseStylePreferences(raw json.RawMessage) stylePreferences {
	var prefs stylePreferences
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return prefs
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		_ = json.Unmarshal([]byte(encoded), &prefs)

		return prefs
	}
	_ = json.Unmarshal(raw, &prefs)

	return prefs
}

type subscriptionDTO struct {
	ID                int64           `json:"id"`
	PlanCode          string          `json:"plan_code"`
	PlanName          *string         `json:"plan_name"`
	Status            string          `json:"status"`
	PriceMonthly      decimal.Decimal `json:"price_monthly"`
	Currency          *string         `json:"currency"`
	StartedAt         apiTime         `json:"started_at"`
	ExpiresAt         *apiTime        `json:"expires_at"`
	NextDeliveryAt    *apiTime        `json:"next_delivery_at"`
	DeliveryFrequency int             `json:"delivery_frequency"`
	StylePreferences  json.RawMessage `json:"style_preferences"`
}

func (d *subscriptionDTO) toEntity() entity.Subscription {
	prefs := parseStylePreferences(d.StylePreferences)
	currency := deref(d.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	name := deref(d.PlanName)
	if name == "" {
		name = d.PlanCode
	}

	return entity.Subscription{
		ID:                 d.ID,
		PlanCode:           d.PlanCode,
		PlanName:           name,
		Status:             entity.SubscriptionStatus(d.Status),
		Price:              d.PriceMonthly,
		Currency:           currency,
		CurrentPeriodStart: d.StartedAt.Time,
		CurrentPeriodEnd:   d.ExpiresAt.ptr(),
		NextDeliveryAt:     d.NextDeliveryAt.ptr(),
		Preferences: entity.DeliveryPreferences{
			Frequency: entity.FrequencyFromMonths(d.DeliveryFrequency),
			Size:      prefs.Size,
			Note:      prefs.Note,
		},
	}
}

type createSubscriptionRequest struct {
	PlanCode          string             `json:"plan_code"`
	ShippingAddress   shippingAddressDTO `json:"shipping_address"`
	StylePreferences  *stylePreferences  `json:"style_preferences,omitempty"`
	DeliveryFrequency int                `json:"delivery_frequency"`
	PaymentMethod     string             `json:"payment_method,omitempty"`
	AutoRenew         bool               `json:"auto_renew"`
}

type createSubscriptionResponse struct {
	Subscription subscriptionDTO `json:"subscription"`
}

type updateSubscriptionRequest struct {
	DeliveryFrequency int               `json:"delivery_frequency"`
	StylePreferences  *stylePreferences `json:"style_preferences,omitempty"`
}

type orderItemDTO struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type orderDTO struct {
	ID              int64              `json:"id"`
	OrderNumber     string             `json:"order_number"`
	SubscriptionID  *int64             `json:"subscription_id"`
	Status          string             `json:"status"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Currency        *string            `json:"currency"`
	Items           []orderItemDTO     `json:"items"`
	ShippingAddress shippingAddressDTO `json:"shipping_address"`
	Carrier         *string            `json:"carrier"`
	TrackingNumber  *string            `json:"tracking_number"`
	CreatedAt       apiTime            `json:"created_at"`
	PaidAt          *apiTime           `json:"paid_at"`
	ShippedAt       *apiTime           `json:"shipped_at"`
	DeliveredAt     *apiTime           `json:"delivered_at"`
	CompletedAt     *apiTime           `json:"completed_at"`
}

// The API calls a completed order "delivered".
const wireStatusDelivered = "delivered"

func orderStatusFromWire(s string) entity.OrderStatus {
	if s == wireStatusDelivered {
		return entity.OrderCompleted
	}

	return entity.OrderStatus(s)
}

func orderStatusToWire(s entity.OrderStatus) string {
	if s == entity.OrderCompleted {
		return wireStatusDelivered
	}

	return string(s)
}

func (d *orderDTO) toEntity() entity.Order {
	currency := deref(d.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	items := make([]entity.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, entity.OrderItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}

	var logistics *entity.Logistics
	if tracking := deref(d.TrackingNumber); tracking != "" {
		logistics = &entity.Logistics{Carrier: deref(d.Carrier), TrackingNumber: tracking}
	}

	completedAt := d.CompletedAt.ptr()
	if completedAt == nil {
		completedAt = d.DeliveredAt.ptr()
	}

	return entity.Order{
		ID:              d.ID,
		Number:          d.OrderNumber,
		SubscriptionID:  d.SubscriptionID,
		Status:          orderStatusFromWire(d.Status),
		Total:           d.TotalAmount,
		Currency:        currency,
		Items:           items,
		ShippingAddress: d.ShippingAddress.toEntity(),
		Logistics:       logistics,
		CreatedAt:       d.CreatedAt.Time,
		PaidAt:          d.PaidAt.ptr(),
		ShippedAt:       d.ShippedAt.ptr(),
		CompletedAt:     completedAt,
	}
}

type orderListDTO struct {
	Total    int        `json:"total"`
	Items    []orderDTO `json:"items"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

type cancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

type paymentDTO struct {
	PaymentID int64  `json:"payment_id"`
	PaymentNo string `json:"payment_no"`
	PayURL    string `json:"pay_url"`
	FormHTML  string `json:"form_html"`
}
