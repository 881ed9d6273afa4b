package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/hbnb-service/internal/config"
	"github.com/baechuer/hbnb-service/internal/domain"
	"github.com/baechuer/hbnb-service/internal/infrastructure/memory"
)

func memConfig(file string) *config.Config {
	return &config.Config{
		Storage:               config.StorageMemory,
		StorageFile:           file,
		SearchAmenityFallback: "empty",
		BcryptCost:            4,
		CORSAllowedOrigins:    []string{"*"},
		HTTPAddr:              "127.0.0.1:0",
		ShutdownTimeout:       time.Second,
	}
}

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		be, err := openBackend(ctx, memConfig(""))
		require.NoError(t, err)
		defer be.Close()
		assert.IsType(t, &memory.Store{}, be.store)
		assert.Nil(t, be.db)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.json")
		be, err := openBackend(ctx, memConfig(path))
		require.NoError(t, err)
		assert.Equal(t, path, be.store.(*memory.Store).Path())
	})

	t.Run("unknown", func(t *testing.T) {
		c := memConfig("")
		c.Storage = "mongo"
		_, err := openBackend(ctx, c)
		assert.Error(t, err)
	})
}

func TestRunSeed_PersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.json")
	fixture := `{"states":[{"id":"s1","name":"CA"}],"cities":[{"id":"c1","state_id":"s1","name":"SF"}],
		"users":[{"id":"u1","email":"a@b.c","password":"pw"}]}`

	counts, err := runSeed(context.Background(), memConfig(path), strings.NewReader(fixture))
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.KindCity])

	s, err := memory.Open(path)
	require.NoError(t, err)
	u, err := domain.Lookup[*domain.User](context.Background(), s, "u1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", u.Password)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"SF"`)
}

func TestNewApp_ServesStatus(t *testing.T) {
	app, err := NewApp(context.Background(), memConfig(""))
	require.NoError(t, err)
	defer app.Close()

	rr := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "127.0.0.1:0", app.Server.Addr)
}

func TestNewApp_RejectsBadFallback(t *testing.T) {
	c := memConfig("")
	c.SearchAmenityFallback = "sometimes"
	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed"}, names)
}
