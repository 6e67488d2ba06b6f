package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB_NAME", "")
	t.Setenv("DB_DSN", "")

	LoadEnv()

	assert.Equal(t, "3000", Env.AppPort)
	assert.Equal(t, "mongodb://localhost:27017", Env.MongoURI)
	assert.Equal(t, "leaps", Env.MongoDB)
	assert.Equal(t, "test-secret", Env.JWTSecret)
}

func TestLoadEnvExplicitValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("MONGO_DB_NAME", "leaps_staging")

	LoadEnv()

	assert.Equal(t, "8080", Env.AppPort)
	assert.Equal(t, "leaps_staging", Env.MongoDB)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("LEAPS_TEST_KEY", "")
	assert.Equal(t, "fallback", envOr("LEAPS_TEST_KEY", "fallback"))

	t.Setenv("LEAPS_TEST_KEY", "set")
	assert.Equal(t, "set", envOr("LEAPS_TEST_KEY", "fallback"))
}
