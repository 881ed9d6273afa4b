package catalog

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type Hasher interface {
	Hash(password string) (string, error)
}

// Publisher delivers change events. Implementations marshal payload as JSON.
type Publisher interface {
	PublishEvent(ctx context.Context, routingKey string, payload any) error
}

type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(ctx context.Context, routingKey string, payload any) error {
	return nil
}
