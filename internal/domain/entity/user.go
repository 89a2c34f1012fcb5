// Package entity contains the core business objects of the storefront,
// as seen through the external SocksFlow API.
package entity

import (
	"strings"
	"time"
)

// User is the signed-in customer as returned by the API.
// The front-end never mutates it directly; every change round-trips through the API.
type User struct {
	ID          int64        // API identifier.
	Name        string       // Display name.
	Email       string       // Login identifier, immutable once set.
	Phone       string       // Optional contact phone.
	Addresses   Addresses    // Optional address book, nil when never loaded.
	SizeProfile *SizeProfile // Optional size profile.
	IsVerified  bool         // Whether the email was verified.
	CreatedAt   time.Time
}

// SizeProfile holds the customer's sizing. SockSize is the only required field.
type SizeProfile struct {
	SockSize string
	ShoeSize string
	Notes    string
}

// HasPhone reports whether a contact phone is on file.
func (u *User) HasPhone() bool {
	return u != nil && strings.TrimSpace(u.Phone) != ""
}

// HasAddress reports whether at least one address is on file.
func (u *User) HasAddress() bool {
	return u != nil && len(u.Addresses) > 0
}

// HasSockSize reports whether the size profile carries a sock size.
func (u *User) HasSockSize() bool {
	return u != nil && u.SizeProfile != nil && strings.TrimSpace(u.SizeProfile.SockSize) != ""
}

// SockSizes lists the sizes offered by the catalogue, smallest first.
var SockSizes = []string{"S", "M", "L", "XL"}

// DefaultSockSize is preselected when the customer has no size on file.
const DefaultSockSize = "M"
