package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks out every variable Load reads. Empty values count as set for cleanenv,
// so the storage variables that carry defaults are unset instead.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG_PATH", "ENV", "PORT", "STORAGE_DRIVER", "MONGO_URI", "MONGO_DATABASE",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "tuition", cfg.Storage.Mongo.Database)
}

func TestLoad_EmptyPortFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", EnvProd)
	t.Setenv("PORT", "8081")
	t.Setenv("STORAGE_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "tuition")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "tuition")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDev())
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "host=db port=5432 user=tuition password=pw dbname=tuition sslmode=disable", cfg.Storage.Postgres.DSN())
}

func TestLoad_PostgresRequiresSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", DriverPostgres)

	_, err := Load()
	assert.ErrorContains(t, err, "DB_HOST")
}

func TestLoad_UnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown STORAGE_DRIVER")
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "env: prod\nport: \"4000\"\nstorage:\n  driver: mongo\n  mongo:\n    uri: mongodb://mongo:27017\n    database: school\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "school", cfg.Storage.Mongo.Database)
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS students")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock, zerolog.Nop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE")).WillReturnError(errors.New("permission denied"))

	err = EnsureSchema(context.Background(), mock, zerolog.Nop())
	assert.ErrorContains(t, err, "unable to create schema")
}
