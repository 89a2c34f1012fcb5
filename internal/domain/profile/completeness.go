// Package profile decides whether a customer's profile is complete enough to
// subscribe, and which onboarding step to show next.
package profile

import (
	"strings"

	"socksflow/internal/domain/entity"
	"socksflow/internal/errors"
)

// Field is a profile requirement that can be configured as mandatory.
type Field string

const (
	FieldPhone   Field = "phone"
	FieldAddress Field = "address"
	FieldSize    Field = "size"
)

// Names of missing requirements, in the order they are reported.
const (
	MissingLogin   = "login info"
	MissingPhone   = "phone number"
	MissingAddress = "delivery address"
	MissingSize    = "size information"
)

// fieldOrder fixes the evaluation priority regardless of configuration order.
var fieldOrder = []Field{FieldPhone, FieldAddress, FieldSize}

// Requirements is the single source of truth for which fields a complete profile needs.
type Requirements struct {
	fields map[Field]bool
}

// DefaultRequirements requires phone, address and sock size.
func DefaultRequirements() Requirements {
	return Requirements{fields: map[Field]bool{FieldPhone: true, FieldAddress: true, FieldSize: true}}
}

// ParseRequirements builds Requirements from configured field names.
// An empty list yields DefaultRequirements.
func ParseRequirements(names []string) (Requirements, error) {
	if len(names) == 0 {
		return DefaultRequirements(), nil
	}

	reqs := Requirements{fields: make(map[Field]bool, len(names))}
	for _, name := range names {
		f := Field(strings.ToLower(strings.TrimSpace(name)))
		switch f {
		case FieldPhone, FieldAddress, FieldSize:
			reqs.fields[f] = true
		default:
			return Requirements{}, errors.Errorf("unknown profile field %q", name)
		}
	}

	return reqs, nil
}

// Requires reports whether f is mandatory.
func (r Requirements) Requires(f Field) bool {
	return r.fields[f]
}

// Fields returns the mandatory fields in evaluation order.
func (r Requirements) Fields() []Field {
	out := make([]Field, 0, len(fieldOrder))
	for _, f := range fieldOrder {
		if r.fields[f] {
			out = append(out, f)
		}
	}

	return out
}

// Completeness is the result of Evaluate.
type Completeness struct {
	Complete bool
	Missing  []string
}

// Lacks reports whether name appears in the missing set.
func (c Completeness) Lacks(name string) bool {
	for _, m := range c.Missing {
		if m == name {
			return true
		}
	}

	return false
}

// Evaluate checks user against reqs. A nil user is missing only "login info".
func Evaluate(user *entity.User, reqs Requirements) Completeness {
	if user == nil {
		return Completeness{Missing: []string{MissingLogin}}
	}

	missing := make([]string, 0, len(fieldOrder))
	for _, f := range reqs.Fields() {
		if !satisfied(user, f) {
			missing = append(missing, missingName(f))
		}
	}

	return Completeness{Complete: len(missing) == 0, Missing: missing}
}

func satisfied(user *entity.User, f Field) bool {
	switch f {
	case FieldPhone:
		return user.HasPhone()
	case FieldAddress:
		return user.HasAddress()
	case FieldSize:
		return user.HasSockSize()
	default:
		return true
	}
}

func missingName(f Field) string {
	switch f {
	case FieldPhone:
		return MissingPhone
	case FieldAddress:
		return MissingAddress
	default:
		return MissingSize
	}
}
