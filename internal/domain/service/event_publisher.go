package service

import (
	"context"
	"time"
)

// AccountEventType names an account lifecycle transition.
type AccountEventType string

const (
	AccountRegistered AccountEventType = "account.registered"
	AccountDeleted    AccountEventType = "account.deleted"
)

// AccountEvent is published after an account lifecycle change has been committed.
type AccountEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       AccountEventType `json:"type"`
	AccountID  string           `json:"account_id"`
	Username   string           `json:"username"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
