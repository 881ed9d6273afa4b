package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	keys := []string{
		"APP_ENV", "HTTP_ADDR", "HBNB_API_HOST", "HBNB_API_PORT",
		"STORAGE", "STORAGE_FILE", "DATABASE_URL", "DB_DRIVER",
		"RABBIT_URL", "SEARCH_AMENITY_FALLBACK", "CORS_ALLOWED_ORIGINS",
		"RL_ENABLED", "HTTP_READ_TIMEOUT",
	}
	cleanup := func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	}
	t.Cleanup(cleanup)

	t.Run("defaults_to_memory_storage_on_port_5000", func(t *testing.T) {
		cleanup()
		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, StorageMemory, cfg.Storage)
		assert.Equal(t, "0.0.0.0:5000", cfg.HTTPAddr)
		assert.Equal(t, "hbnb.events", cfg.RabbitExchange)
		assert.Equal(t, "empty", cfg.SearchAmenityFallback)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
		assert.True(t, cfg.RLEnabled)
		assert.Equal(t, 10*time.Second, cfg.HTTPReadTimeout)
	})

	t.Run("legacy_host_and_port", func(t *testing.T) {
		cleanup()
		os.Setenv("HBNB_API_HOST", "127.0.0.1")
		os.Setenv("HBNB_API_PORT", "8080")
		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	})

	t.Run("http_addr_wins_over_legacy", func(t *testing.T) {
		cleanup()
		os.Setenv("HTTP_ADDR", ":9000")
		os.Setenv("HBNB_API_PORT", "8080")
		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, ":9000", cfg.HTTPAddr)
	})

	t.Run("postgres_requires_database_url", func(t *testing.T) {
		cleanup()
		os.Setenv("STORAGE", "postgres")
		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "missing DATABASE_URL")
	})

	t.Run("rejects_unknown_storage", func(t *testing.T) {
		cleanup()
		os.Setenv("STORAGE", "mongo")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects_unknown_driver", func(t *testing.T) {
		cleanup()
		os.Setenv("DB_DRIVER", "mysql")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects_unknown_fallback", func(t *testing.T) {
		cleanup()
		os.Setenv("SEARCH_AMENITY_FALLBACK", "sometimes")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("should_fail_in_prod_if_rabbit_url_is_missing", func(t *testing.T) {
		cleanup()
		os.Setenv("APP_ENV", "prod")
		cfg, err := Load()
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "missing RABBIT_URL")
	})

	t.Run("cors_origins_list", func(t *testing.T) {
		cleanup()
		os.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	})
}

func TestGetEnv(t *testing.T) {
	t.Run("should_trim_whitespace", func(t *testing.T) {
		os.Setenv("TEST_KEY", "  value_with_spaces  ")
		defer os.Unsetenv("TEST_KEY")

		assert.Equal(t, "value_with_spaces", getEnv("TEST_KEY", "default"))
	})
}

func TestGetDuration(t *testing.T) {
	t.Run("should_parse_valid_duration", func(t *testing.T) {
		os.Setenv("TEST_DUR", "5s")
		defer os.Unsetenv("TEST_DUR")
		assert.Equal(t, 5*time.Second, getDuration("TEST_DUR", 10*time.Second))
	})

	t.Run("should_return_default_on_invalid_format", func(t *testing.T) {
		os.Setenv("TEST_DUR", "invalid")
		defer os.Unsetenv("TEST_DUR")
		assert.Equal(t, 10*time.Second, getDuration("TEST_DUR", 10*time.Second))
	})
}

func TestGetBool(t *testing.T) {
	os.Setenv("TEST_BOOL", "false")
	defer os.Unsetenv("TEST_BOOL")
	assert.False(t, getBool("TEST_BOOL", true))

	os.Setenv("TEST_BOOL", "nope")
	assert.True(t, getBool("TEST_BOOL", true))
}
