package service

import (
	"context"

	"socksflow/internal/domain/entity"
)

// AddressInput is the editable part of an address.
type AddressInput struct {
	RecipientName  string
	RecipientPhone string
	Province       string
	City           string
	District       string
	Detail         string
	PostalCode     string
	IsDefault      bool
	Tag            entity.AddressTag
}

// AddressService is the address book part of the external API.
// The API owns the single-default invariant.
type AddressService interface {
	ListAddresses(ctx context.Context, token string) (entity.Addresses, error)
	CreateAddress(ctx context.Context, token string, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, token string, id int64, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, token string, id int64) error
	SetDefaultAddress(ctx context.Context, token string, id int64) error
}
