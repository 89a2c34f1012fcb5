package impl

import (
	"context"
	"strconv"

	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/mutation"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"go.uber.org/fx"
)

type addressService struct {
	addresses service.AddressService
	tracker   *mutation.Tracker
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	Addresses service.AddressService
	Tracker   *mutation.Tracker
}

// NewAddressService creates a new address book service
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addresses: params.Addresses,
		tracker:   params.Tracker,
	}
}

// List returns the address book with a single default.
func (s *addressService) List(ctx context.Context, sess *session.Session, confirmedDefault int64) (entity.Addresses, error) {
	book, err := s.addresses.ListAddresses(ctx, sess.Token())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return book.WithSingleDefault(confirmedDefault), nil
}

// Create adds an address.
func (s *addressService) Create(ctx context.Context, sess *session.Session, input *service.AddressInput) (*entity.Address, error) {
	var created *entity.Address
	key := mutation.Key{Session: sess.ID(), Resource: "address", Action: "create"}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		var err error
		created, err = s.addresses.CreateAddress(ctx, sess.Token(), input)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return created, nil
}

// Update edits an address.
func (s *addressService) Update(ctx context.Context, sess *session.Session, id int64, input *service.AddressInput) (*entity.Address, error) {
	var updated *entity.Address
	key := mutation.Key{Session: sess.ID(), Resource: addressResource(id), Action: "update"}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		var err error
		updated, err = s.addresses.UpdateAddress(ctx, sess.Token(), id, input)

		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update address %d", id)
	}

	return updated, nil
}

// Delete removes an address.
func (s *addressService) Delete(ctx context.Context, sess *session.Session, id int64) error {
	key := mutation.Key{Session: sess.ID(), Resource: addressResource(id), Action: "delete"}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		return s.addresses.DeleteAddress(ctx, sess.Token(), id)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete address %d", id)
	}

	return nil
}

// SetDefault makes the address the default one.
func (s *addressService) SetDefault(ctx context.Context, sess *session.Session, id int64) error {
	key := mutation.Key{Session: sess.ID(), Resource: addressResource(id), Action: "default"}
	err := s.tracker.Run(ctx, key, func(ctx context.Context) error {
		return s.addresses.SetDefaultAddress(ctx, sess.Token(), id)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to set default address %d", id)
	}

	return nil
}

func addressResource(id int64) string {
	return "address:" + strconv.FormatInt(id, 10)
}
