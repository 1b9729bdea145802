package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "userreg/internal/delivery/context"
	"userreg/internal/domain/entity"
	"userreg/internal/domain/service"
)

// publishAccountEvent is best-effort: the state change is already committed, so failures are only logged.
func publishAccountEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType service.AccountEventType, account *entity.Account) {
	if publisher == nil || account == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AccountID:  account.ID.String(),
		Username:   account.Username,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishAccountEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish account event",
			slog.String("type", string(eventType)),
			slog.String("accountID", event.AccountID),
			slog.Any("error", err),
		)
	}
}
