package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus is the server-authoritative state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// DeliveryFrequency is how often a box ships.
type DeliveryFrequency string

const (
	FrequencyMonthly   DeliveryFrequency = "monthly"
	FrequencyBimonthly DeliveryFrequency = "bimonthly"
	FrequencyQuarterly DeliveryFrequency = "quarterly"
)

// Months returns the number of months between deliveries, as the API encodes it.
func (f DeliveryFrequency) Months() int {
	switch f {
	case FrequencyBimonthly:
		return 2
	case FrequencyQuarterly:
		return 3
	default:
		return 1
	}
}

// FrequencyFromMonths converts the API's month count back to a frequency.
func FrequencyFromMonths(months int) DeliveryFrequency {
	switch months {
	case 2:
		return FrequencyBimonthly
	case 3:
		return FrequencyQuarterly
	default:
		return FrequencyMonthly
	}
}

// DeliveryPreferences are the customer-editable delivery settings.
type DeliveryPreferences struct {
	Frequency DeliveryFrequency
	Size      string
	Note      string
}

// Subscription is a recurring delivery plan owned by the customer.
type Subscription struct {
	ID                 int64
	PlanCode           string
	PlanName           string
	Status             SubscriptionStatus
	Price              decimal.Decimal
	Currency           string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   *time.Time
	NextDeliveryAt     *time.Time
	Preferences        DeliveryPreferences
}

// CanPause reports whether a pause request makes sense for the current status.
func (s *Subscription) CanPause() bool {
	return s.Status == SubscriptionActive
}

// CanResume reports whether a resume request makes sense for the current status.
func (s *Subscription) CanResume() bool {
	return s.Status == SubscriptionPaused
}

// CanCancel reports whether a cancel request makes sense for the current status.
func (s *Subscription) CanCancel() bool {
	return s.Status == SubscriptionActive || s.Status == SubscriptionPaused
}
