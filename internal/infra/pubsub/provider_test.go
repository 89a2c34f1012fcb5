package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"socksflow/config"
	"socksflow/internal/domain/service"
	mockSvc "socksflow/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.New(slog.DiscardHandler),
	}
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("unconfigured drops events", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{}))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishJourneyEvent(context.Background(), &service.JourneyEvent{Name: service.EventGateCreate}))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "local"}))
		assert.Error(t, err)
	})

	t.Run("google requires topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "google", ProjectID: "p"}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "kafka"}))
		assert.ErrorContains(t, err, "kafka")
	})

	t.Run("event allow-list wraps the provider", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{
			Provider:      "local",
			LocalEndpoint: "http://localhost:0/events",
			Events:        []string{service.EventOnboardingCompleted},
		}))
		require.NoError(t, err)
		assert.IsType(t, &filteredPublisher{}, publisher)
	})
}

func TestWithEventFilter(t *testing.T) {
	inner := mockSvc.NewMockEventPublisher(t)
	assert.Same(t, inner, withEventFilter(inner, nil))

	publisher := withEventFilter(inner, []string{service.EventGateCreate})
	inner.EXPECT().PublishJourneyEvent(mock.Anything, mock.MatchedBy(func(e *service.JourneyEvent) bool {
		return e.Name == service.EventGateCreate
	})).Return(nil).Once()

	require.NoError(t, publisher.PublishJourneyEvent(context.Background(), &service.JourneyEvent{Name: service.EventGateCreate}))
	require.NoError(t, publisher.PublishJourneyEvent(context.Background(), &service.JourneyEvent{Name: service.EventGateLoginRequired}))
}
