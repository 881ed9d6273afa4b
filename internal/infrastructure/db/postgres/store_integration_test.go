//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/baechuer/hbnb-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestStore_Integration_CascadesAndLinks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17",
		tcpostgres.WithDatabase("hbnb"),
		tcpostgres.WithUsername("hbnb"),
		tcpostgres.WithPassword("hbnb"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	for _, driver := range []string{"postgres", "pgx"} {
		t.Run(driver, func(t *testing.T) {
			db, err := Open(ctx, driver, dsn)
			require.NoError(t, err)
			defer db.Close()

			require.NoError(t, Migrate(db))
			require.NoError(t, Migrate(db)) // no change
			_, err = db.ExecContext(ctx, `TRUNCATE states, users, amenities CASCADE`)
			require.NoError(t, err)

			s := New(db)
			now := time.Now().UTC().Truncate(time.Microsecond)
			b := func(id string) domain.Base { return domain.Base{ID: id, CreatedAt: now, UpdatedAt: now} }

			require.NoError(t, s.Save(ctx, &domain.State{Base: b("s1"), Name: "CA"}))
			require.NoError(t, s.Save(ctx, &domain.User{Base: b("u1"), Email: "a@b.c", Password: "x"}))
			require.NoError(t, s.Save(ctx, &domain.Amenity{Base: b("a1"), Name: "wifi"}))
			require.NoError(t, s.Save(ctx, &domain.City{Base: b("c1"), StateID: "s1", Name: "SF"}))
			require.NoError(t, s.Save(ctx, &domain.Place{Base: b("p1"), CityID: "c1", UserID: "u1", Name: "Loft", AmenityIDs: []string{"a1"}}))

			err = s.Save(ctx, &domain.City{Base: b("c2"), StateID: "ghost"})
			assert.True(t, domain.HasCode(err, domain.CodeInvalidState))

			p, err := domain.Lookup[*domain.Place](ctx, s, "p1")
			require.NoError(t, err)
			assert.Equal(t, []string{"a1"}, p.AmenityIDs)

			require.NoError(t, s.Delete(ctx, &domain.Amenity{Base: b("a1")}))
			p, err = domain.Lookup[*domain.Place](ctx, s, "p1")
			require.NoError(t, err)
			assert.Empty(t, p.AmenityIDs)

			require.NoError(t, s.Delete(ctx, &domain.State{Base: b("s1")}))
			n, err := s.Count(ctx, domain.KindPlace)
			require.NoError(t, err)
			assert.Equal(t, 0, n)
		})
	}
}
