package commands

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/config"
	"github.com/baechuer/hbnb-service/internal/domain"
	"github.com/baechuer/hbnb-service/internal/infrastructure/db/postgres"
	"github.com/baechuer/hbnb-service/internal/infrastructure/memory"
	"github.com/baechuer/hbnb-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/hbnb-service/internal/infrastructure/security"
)

// sysClock implements catalog.Clock using system time.
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// backend is the storage chosen by STORAGE plus whatever must be closed.
type backend struct {
	store domain.Storage
	db    *sql.DB
}

func (b *backend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func openBackend(ctx context.Context, c *config.Config) (*backend, error) {
	switch c.Storage {
	case config.StoragePostgres:
		db, err := postgres.Open(ctx, c.DBDriver, c.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if c.DBAutoMigrate {
			if err := postgres.Migrate(db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		zlog.Info().Str("driver", c.DBDriver).Msg("postgres storage ready")
		return &backend{store: postgres.New(db), db: db}, nil

	case config.StorageMemory:
		if c.StorageFile == "" {
			zlog.Info().Msg("in-memory storage, nothing is persisted")
			return &backend{store: memory.New()}, nil
		}
		s, err := memory.Open(c.StorageFile)
		if err != nil {
			return nil, err
		}
		zlog.Info().Str("file", c.StorageFile).Msg("file storage ready")
		return &backend{store: s}, nil

	default:
		return nil, fmt.Errorf("unknown STORAGE %q", c.Storage)
	}
}

// openPublisher returns the RabbitMQ publisher when RABBIT_URL is set. The
// closer is always safe to call.
func openPublisher(c *config.Config) (catalog.Publisher, io.Closer, error) {
	if c.RabbitURL == "" {
		zlog.Warn().Msg("RABBIT_URL empty: change events will not be published")
		return catalog.NoopPublisher{}, nopCloser{}, nil
	}
	p, err := rabbitmq.NewPublisher(c.RabbitURL, c.RabbitExchange)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbit publisher: %w", err)
	}
	zlog.Info().Str("exchange", c.RabbitExchange).Msg("rabbit publisher ready")
	return p, p, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newService(store domain.Storage, pub catalog.Publisher, c *config.Config) *catalog.Service {
	return catalog.New(store, security.NewBcryptHasher(c.BcryptCost), pub, sysClock{})
}
