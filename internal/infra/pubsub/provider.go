package pubsub

import (
	"context"
	"log/slog"

	"socksflow/config"
	"socksflow/internal/domain/constants"
	"socksflow/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops journey events when no provider is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishJourneyEvent(_ context.Context, event *service.JourneyEvent) error {
	p.logger.Debug("[NoopPubSub] Journey event dropped", slog.String("event", event.Name))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// filteredPublisher forwards only the journey events named in config.
type filteredPublisher struct {
	service.EventPublisher
	allowed map[string]struct{}
}

func (p *filteredPublisher) PublishJourneyEvent(ctx context.Context, event *service.JourneyEvent) error {
	if _, ok := p.allowed[event.Name]; !ok {
		return nil
	}

	return p.EventPublisher.PublishJourneyEvent(ctx, event)
}

// withEventFilter returns publisher unchanged when names is empty.
func withEventFilter(publisher service.EventPublisher, names []string) service.EventPublisher {
	if len(names) == 0 {
		return publisher
	}

	allowed := make(map[string]struct{}, len(names))
	for _, name := range names {
		allowed[name] = struct{}{}
	}

	return &filteredPublisher{EventPublisher: publisher, allowed: allowed}
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the journey event sink from the pubsub config.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, journey events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newProviderPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing journey event publisher")

			return publisher.Close()
		},
	})

	return withEventFilter(publisher, cfg.Events), nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for journey events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the journey event publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
