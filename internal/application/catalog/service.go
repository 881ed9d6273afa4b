package catalog

import (
	"context"
	"strings"

	"github.com/baechuer/hbnb-service/internal/domain"
)

// Service implements the CRUD use-cases over an injected domain.Storage.
type Service struct {
	store  domain.Storage
	hasher Hasher
	pub    Publisher
	clock  Clock
}

func New(store domain.Storage, hasher Hasher, pub Publisher, clock Clock) *Service {
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{store: store, hasher: hasher, pub: pub, clock: clock}
}

func (s *Service) Storage() domain.Storage { return s.store }

func missing(field string) error {
	return domain.ErrValidationMeta("Missing "+field, map[string]string{field: "required"})
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// create stamps a fresh base onto e, saves it and emits <kind>.created.
func (s *Service) create(ctx context.Context, e domain.Entity) error {
	*e.Meta() = domain.NewBase(s.clock.Now())
	if err := s.store.Save(ctx, e); err != nil {
		return err
	}
	s.emitEntity(ctx, e, ActionCreated)
	return nil
}

// update fetches id, applies the allow-listed fields, touches and saves.
// extra runs after the patcher for fields that need more than a plain setter.
func update[T domain.Entity](
	ctx context.Context,
	s *Service,
	id string,
	patch domain.Patcher[T],
	fields map[string]any,
	extra func(T) error,
) (T, error) {
	e, err := domain.Lookup[T](ctx, s.store, id)
	if err != nil {
		var zero T
		return zero, err
	}
	if _, err := patch.Apply(e, fields); err != nil {
		var zero T
		return zero, err
	}
	if extra != nil {
		if err := extra(e); err != nil {
			var zero T
			return zero, err
		}
	}
	e.Meta().Touch(s.clock.Now())
	if err := s.store.Save(ctx, e); err != nil {
		var zero T
		return zero, err
	}
	s.emitEntity(ctx, e, ActionUpdated)
	return e, nil
}

func remove[T domain.Entity](ctx context.Context, s *Service, id string) error {
	e, err := domain.Lookup[T](ctx, s.store, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, e); err != nil {
		return err
	}
	s.emitEntity(ctx, e, ActionDeleted)
	return nil
}
