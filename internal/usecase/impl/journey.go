package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "socksflow/internal/delivery/context"
	"socksflow/internal/domain/service"

	"github.com/google/uuid"
)

// journeyRecorder publishes funnel events. Publishing never fails the caller.
type journeyRecorder struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newJourneyRecorder(publisher service.EventPublisher, logger *slog.Logger) *journeyRecorder {
	return &journeyRecorder{publisher: publisher, logger: logger, now: time.Now}
}

func (j *journeyRecorder) record(ctx context.Context, event *service.JourneyEvent) {
	if j == nil || j.publisher == nil {
		return
	}

	event.ID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.SessionID = deliverycontext.GetSessionIDFromContext(ctx)
	event.OccurredAt = j.now().UTC()

	if err := j.publisher.PublishJourneyEvent(context.WithoutCancel(ctx), event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, j.logger).Warn("Failed to publish journey event",
			slog.String("event", event.Name),
			slog.Any("error", err),
		)
	}
}
