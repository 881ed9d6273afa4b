package catalog

import (
	"context"

	"github.com/baechuer/hbnb-service/internal/domain"
)

// Stats counts stored objects per kind.
func (s *Service) Stats(ctx context.Context) (map[domain.Kind]int, error) {
	out := make(map[domain.Kind]int, len(domain.Kinds))
	for _, k := range domain.Kinds {
		n, err := domain.Count(ctx, s.store, k)
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}
