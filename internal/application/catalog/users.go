package catalog

import (
	"context"

	"github.com/baechuer/hbnb-service/internal/domain"
)

type CreateUserCmd struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return domain.List[*domain.User](ctx, s.store)
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return domain.Lookup[*domain.User](ctx, s.store, id)
}

func (s *Service) CreateUser(ctx context.Context, cmd CreateUserCmd) (*domain.User, error) {
	if blank(cmd.Email) {
		return nil, missing("email")
	}
	if cmd.Password == "" {
		return nil, missing("password")
	}
	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Email:     cmd.Email,
		Password:  hash,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
	}
	if err := s.create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser ignores email; a new password is hashed before it is stored.
func (s *Service) UpdateUser(ctx context.Context, id string, fields map[string]any) (*domain.User, error) {
	return update(ctx, s, id, domain.UserPatch, fields, func(u *domain.User) error {
		raw, ok := fields["password"]
		if !ok {
			return nil
		}
		pw, ok := raw.(string)
		if !ok || pw == "" {
			return domain.ErrValidationMeta("invalid field type", map[string]string{
				"password": "must be a non-empty string",
			})
		}
		hash, err := s.hasher.Hash(pw)
		if err != nil {
			return err
		}
		u.Password = hash
		return nil
	})
}

// DeleteUser also removes the places the user owns.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return remove[*domain.User](ctx, s, id)
}
