package entity

import "time"

// AddressTag is an optional label on an address.
type AddressTag string

const (
	AddressTagHome  AddressTag = "home"
	AddressTagWork  AddressTag = "work"
	AddressTagOther AddressTag = "other"
)

// IsValid checks if the tag is one of the known values. Empty is allowed.
func (t AddressTag) IsValid() bool {
	switch t {
	case "", AddressTagHome, AddressTagWork, AddressTagOther:
		return true
	default:
		return false
	}
}

// Address is a delivery address in the customer's address book.
type Address struct {
	ID             int64
	RecipientName  string
	RecipientPhone string
	Province       string
	City           string
	District       string
	Detail         string // Street-level detail.
	PostalCode     string
	IsDefault      bool
	Tag            AddressTag
	UpdatedAt      time.Time
}

// Addresses is the customer's address book.
type Addresses []Address

// Default returns the default address, or nil.
func (as Addresses) Default() *Address {
	for i := range as {
		if as[i].IsDefault {
			return &as[i]
		}
	}

	return nil
}

// WithSingleDefault returns a copy in which at most one address is flagged default.
// If preferredID names an address in the list, it becomes the only default; this is
// used right after a confirmed set-default. Otherwise, when the API returned several
// defaults, the most recently updated one is kept.
func (as Addresses) WithSingleDefault(preferredID int64) Addresses {
	out := make(Addresses, len(as))
	copy(out, as)

	keep := -1
	for i := range out {
		if preferredID != 0 && out[i].ID == preferredID {
			keep = i

			break
		}
	}

	if keep == -1 {
		for i := range out {
			if !out[i].IsDefault {
				continue
			}
			if keep == -1 || out[i].UpdatedAt.After(out[keep].UpdatedAt) {
				keep = i
			}
		}
	}

	for i := range out {
		out[i].IsDefault = i == keep
	}

	return out
}

// Find returns the address with the given ID, or nil.
func (as Addresses) Find(id int64) *Address {
	for i := range as {
		if as[i].ID == id {
			return &as[i]
		}
	}

	return nil
}

// Snapshot copies the address into the shape stored on orders.
func (a *Address) Snapshot() ShippingAddress {
	return ShippingAddress{
		RecipientName:  a.RecipientName,
		RecipientPhone: a.RecipientPhone,
		Province:       a.Province,
		City:           a.City,
		District:       a.District,
		Detail:         a.Detail,
		PostalCode:     a.PostalCode,
	}
}
