package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/baechuer/hbnb-service/internal/domain"
	appCtx "github.com/baechuer/hbnb-service/internal/pkg/context"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
)

const (
	EventVersion  = 1
	EventProducer = "hbnb-service"
)

type Action string

const (
	ActionCreated         Action = "created"
	ActionUpdated         Action = "updated"
	ActionDeleted         Action = "deleted"
	ActionAmenityLinked   Action = "amenity_linked"
	ActionAmenityUnlinked Action = "amenity_unlinked"
)

// ChangeEnvelope is the contract for every change event this service emits.
type ChangeEnvelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

// MessageKey lets the broker adapter reuse MessageID as the AMQP message id.
func (e ChangeEnvelope[T]) MessageKey() string { return e.MessageID }

// EntityChangedPayload is the body of <kind>.created|updated|deleted.
type EntityChangedPayload struct {
	Kind   domain.Kind `json:"kind"`
	ID     string      `json:"id"`
	Action Action      `json:"action"`
}

// AmenityLinkPayload is the body of place.amenity_linked|amenity_unlinked.
type AmenityLinkPayload struct {
	PlaceID   string `json:"place_id"`
	AmenityID string `json:"amenity_id"`
}

// RoutingKey builds keys like "place.created".
func RoutingKey(kind domain.Kind, action Action) string {
	return strings.ToLower(string(kind)) + "." + string(action)
}

func (s *Service) emitEntity(ctx context.Context, e domain.Entity, action Action) {
	s.emit(ctx, RoutingKey(e.Kind(), action), EntityChangedPayload{
		Kind:   e.Kind(),
		ID:     e.EntityID(),
		Action: action,
	})
}

// emit is best-effort: a broker failure is logged, never returned.
func (s *Service) emit(ctx context.Context, rk string, payload any) {
	env := ChangeEnvelope[any]{
		Version:    EventVersion,
		Producer:   EventProducer,
		MessageID:  uuid.NewString(),
		TraceID:    appCtx.GetRequestID(ctx),
		OccurredAt: s.clock.Now().UTC(),
		Payload:    payload,
	}
	if err := s.pub.PublishEvent(ctx, rk, env); err != nil {
		zlog.Error().
			Err(err).
			Str("rk", rk).
			Str("message_id", env.MessageID).
			Msg("publish change event failed")
	}
}
