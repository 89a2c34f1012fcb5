package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/service"
)

func toAddressRequest(in *service.AddressInput) addressRequest {
	return addressRequest{
		Name:      in.RecipientName,
		Phone:     in.RecipientPhone,
		Province:  in.Province,
		City:      in.City,
		District:  in.District,
		Address:   in.Detail,
		ZipCode:   optional(in.PostalCode),
		IsDefault: in.IsDefault,
		Tag:       optional(string(in.Tag)),
	}
}

// toAddressUpdateRequest never sends is_default=false: unmarking the default is
// not an edit, it happens when another address is made the default.
func toAddressUpdateRequest(in *service.AddressInput) addressUpdateRequest {
	req := addressUpdateRequest{
		Name:     in.RecipientName,
		Phone:    in.RecipientPhone,
		Province: in.Province,
		City:     in.City,
		District: in.District,
		Address:  in.Detail,
		ZipCode:  optional(in.PostalCode),
		Tag:      optional(string(in.Tag)),
	}
	if in.IsDefault {
		isDefault := true
		req.IsDefault = &isDefault
	}

	return req
}

func addressPath(id int64) string {
	return "/addresses/" + strconv.FormatInt(id, 10)
}

// ListAddresses returns the address book.
func (c *Client) ListAddresses(ctx context.Context, token string) (entity.Addresses, error) {
	var out addressListDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: "/addresses", token: token}, &out); err != nil {
		return nil, err
	}

	return toAddresses(out.Items), nil
}

// CreateAddress adds an address.
func (c *Client) CreateAddress(ctx context.Context, token string, input *service.AddressInput) (*entity.Address, error) {
	var out addressDTO
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/addresses",
		token:  token,
		body:   toAddressRequest(input),
	}, &out)
	if err != nil {
		return nil, err
	}
	a := out.toEntity()

	return &a, nil
}

// UpdateAddress edits an address. A blank postal code or tag clears it.
func (c *Client) UpdateAddress(ctx context.Context, token string, id int64, input *service.AddressInput) (*entity.Address, error) {
	var out addressDTO
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   addressPath(id),
		token:  token,
		body:   toAddressUpdateRequest(input),
	}, &out)
	if err != nil {
		return nil, err
	}
	a := out.toEntity()

	return &a, nil
}

// DeleteAddress removes an address.
func (c *Client) DeleteAddress(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: addressPath(id), token: token}, nil)
}

// SetDefaultAddress makes id the default; the API clears the previous one.
func (c *Client) SetDefaultAddress(ctx context.Context, token string, id int64) error {
	return c.do(ctx, request{method: http.MethodPost, path: addressPath(id) + "/default", token: token}, nil)
}
