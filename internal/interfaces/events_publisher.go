package interfaces

import "context"

// EventPublisher pushes domain events to downstream consumers.
// Publishing is best effort: callers log failures but never fail a
// committed mutation because of them.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}
