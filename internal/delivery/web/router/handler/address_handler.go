package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"socksflow/internal/delivery/web/middleware"
	"socksflow/internal/delivery/web/view"
	"socksflow/internal/domain/service"
	"socksflow/internal/errors"
	"socksflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const pathAddresses = "/dashboard/addresses"

// AddressHandler serves the address book.
type AddressHandler struct {
	responder
	addresses usecase.AddressUsecase
}

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	Addresses usecase.AddressUsecase
	Logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		responder: responder{logger: params.Logger},
		addresses: params.Addresses,
	}
}

// List renders the address book.
func (h *AddressHandler) List(c echo.Context) error {
	var confirmed int64
	if flash := middleware.GetFlash(c); flash != nil {
		confirmed = flash.DefaultAddressID
	}

	addresses, err := h.addresses.List(c.Request().Context(), middleware.GetSession(c), confirmed)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.render(c, http.StatusOK, "addresses", "Addresses", view.AddressesData{Addresses: addresses})
}

// Create adds an address.
func (h *AddressHandler) Create(c echo.Context) error {
	var form addressForm
	if err := bind(c, &form); err != nil {
		return h.fail(c, pathAddresses, err, formValues(c, addressFields...))
	}

	if _, err := h.addresses.Create(c.Request().Context(), middleware.GetSession(c), form.input()); err != nil {
		return h.fail(c, pathAddresses, err, formValues(c, addressFields...))
	}

	return h.success(c, pathAddresses, "Address added.")
}

// Update edits an address.
func (h *AddressHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var form addressForm
	scope := addressScope(id)
	if err := bind(c, &form); err != nil {
		return h.fail(c, pathAddresses, err, scopedFormValues(c, scope, addressFields...))
	}

	if _, err := h.addresses.Update(c.Request().Context(), middleware.GetSession(c), id, form.input()); err != nil {
		return h.fail(c, pathAddresses, err, scopedFormValues(c, scope, addressFields...))
	}

	return h.success(c, pathAddresses, "Address updated.")
}

// addressScope names the edit form of one address on the address book page.
func addressScope(id int64) string {
	return "address-" + strconv.FormatInt(id, 10)
}

// Delete removes an address.
func (h *AddressHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.addresses.Delete(c.Request().Context(), middleware.GetSession(c), id); err != nil {
		return h.fail(c, pathAddresses, err, nil)
	}

	return h.success(c, pathAddresses, "Address removed.")
}

// SetDefault marks an address as the default. The next list shows only the
// confirmed one as default.
func (h *AddressHandler) SetDefault(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.addresses.SetDefault(c.Request().Context(), middleware.GetSession(c), id); err != nil {
		return h.fail(c, pathAddresses, err, nil)
	}

	return h.redirectWithFlash(c, pathAddresses, &service.Flash{
		Kind:             service.FlashSuccess,
		Message:          "Default address updated.",
		DefaultAddressID: id,
	})
}
