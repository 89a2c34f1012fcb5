package service

import (
	"context"
	"time"
)

// Journey event names.
const (
	EventGateLoginRequired   = "gate.login_required"
	EventGateProfileRequired = "gate.profile_required"
	EventGateCreate          = "gate.create"
	EventOnboardingStepSaved = "onboarding.step_saved"
	EventOnboardingCompleted = "onboarding.completed"
	EventOnboardingSkipped   = "onboarding.skipped"
)

// JourneyEvent records a step of the subscribe funnel for analytics.
type JourneyEvent struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	SessionID  string    `json:"session_id,omitempty"` // Hashed, never the token
	Name       string    `json:"name"`
	UserID     int64     `json:"user_id,omitempty"` // Zero for anonymous visitors
	PlanCode   string    `json:"plan_code,omitempty"`
	PlanIndex  int       `json:"plan_index"`
	Step       string    `json:"step,omitempty"`
	Missing    []string  `json:"missing,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing journey events to a message queue
type EventPublisher interface {
	// PublishJourneyEvent publishes a journey event. Callers log failures and carry on.
	PublishJourneyEvent(ctx context.Context, event *JourneyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
