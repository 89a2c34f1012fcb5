package service

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is the one-shot state carried across a POST/redirect/GET round-trip.
type Flash struct {
	Kind        string            `json:"kind,omitempty"`
	Message     string            `json:"msg,omitempty"`
	Form        map[string]string `json:"form,omitempty"`   // Last submitted values, minus secrets.
	FieldErrors map[string]string `json:"errors,omitempty"` // Per-field validation messages.

	// OnboardingDeferred is set when the wizard was skipped so the creation
	// surface shows a notice instead of bouncing straight back.
	OnboardingDeferred bool `json:"deferred,omitempty"`

	// DefaultAddressID is the address confirmed as default by the last mutation.
	DefaultAddressID int64 `json:"default_address,omitempty"`
}

// FormScope is the Form key naming which of several forms on one page the
// values belong to, e.g. the edit form of a single address.
const FormScope = "_scope"

// FieldError returns the validation message for field, if any. Scoped flashes
// answer only through Scoped.
func (f *Flash) FieldError(field string) string {
	if f == nil || f.scope() != "" {
		return ""
	}

	return f.FieldErrors[field]
}

// Value returns the last submitted value of field, if any. Scoped flashes
// answer only through Scoped.
func (f *Flash) Value(field string) string {
	if f == nil || f.scope() != "" {
		return ""
	}

	return f.Form[field]
}

// ValueOr returns the last submitted value of field, which may be blank, or
// fallback when the field was not submitted.
func (f *Flash) ValueOr(field, fallback string) string {
	if f == nil || f.scope() != "" {
		return fallback
	}
	if v, ok := f.Form[field]; ok {
		return v
	}

	return fallback
}

// Scoped returns the flash's form state when it was written for the form named
// scope, and nil otherwise.
func (f *Flash) Scoped(scope string) *Flash {
	if scope == "" || f.scope() != scope {
		return nil
	}

	form := make(map[string]string, len(f.Form))
	for k, v := range f.Form {
		if k != FormScope {
			form[k] = v
		}
	}

	return &Flash{Kind: f.Kind, Message: f.Message, Form: form, FieldErrors: f.FieldErrors}
}

func (f *Flash) scope() string {
	if f == nil {
		return ""
	}

	return f.Form[FormScope]
}

// FlashCodec turns a Flash into a tamper-evident cookie value and back.
type FlashCodec interface {
	Encode(flash *Flash) (string, error)
	Decode(value string) (*Flash, error)
}
