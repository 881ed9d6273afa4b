package catalog

import (
	"context"

	"github.com/baechuer/hbnb-service/internal/domain"
)

type CreateStateCmd struct {
	Name string
}

func (s *Service) ListStates(ctx context.Context) ([]*domain.State, error) {
	return domain.List[*domain.State](ctx, s.store)
}

func (s *Service) GetState(ctx context.Context, id string) (*domain.State, error) {
	return domain.Lookup[*domain.State](ctx, s.store, id)
}

func (s *Service) CreateState(ctx context.Context, cmd CreateStateCmd) (*domain.State, error) {
	if blank(cmd.Name) {
		return nil, missing("name")
	}
	st := &domain.State{Name: cmd.Name}
	if err := s.create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) UpdateState(ctx context.Context, id string, fields map[string]any) (*domain.State, error) {
	return update(ctx, s, id, domain.StatePatch, fields, nil)
}

// DeleteState also removes the state's cities and their places.
func (s *Service) DeleteState(ctx context.Context, id string) error {
	return remove[*domain.State](ctx, s, id)
}
