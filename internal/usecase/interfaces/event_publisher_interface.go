package interfaces

import "context"

// IEventPublisher emits domain events after a successful commit.
type IEventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, payload any) error
}
