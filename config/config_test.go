package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: userreg
jwt:
  key: from-file
  issuer: userreg
  audience: userreg-clients
picture:
  maxWidth: 0
`

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("JWT_ISSUER", "issuer-from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.JWT)
	assert.Equal(t, "from-file", cfg.JWT.Key)
	assert.Equal(t, "issuer-from-env", cfg.JWT.Issuer)
	assert.Equal(t, "userreg-clients", cfg.JWT.Audience)
	assert.Equal(t, "userreg", cfg.Env.ServiceName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
	require.NotNil(t, cfg.Picture)
	assert.Equal(t, 200, cfg.Picture.MaxWidth)
	assert.Equal(t, 200, cfg.Picture.MaxHeight)
	assert.Equal(t, 4096*4096, cfg.Picture.MaxSourcePixels)
	assert.Equal(t, []string{".jpg", ".png"}, cfg.Picture.AllowedExtensions)
}

func TestValidate(t *testing.T) {
	t.Run("missing jwt key", func(t *testing.T) {
		cfg := &Config{JWT: &JWTConfig{Key: "  "}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt issuer", func(t *testing.T) {
		cfg := &Config{JWT: &JWTConfig{Key: "secret", Audience: "clients"}, Postgres: &postgres.DBConn{}}
		assert.ErrorContains(t, cfg.Validate(), "jwt.issuer")
	})

	t.Run("missing jwt audience", func(t *testing.T) {
		cfg := &Config{JWT: &JWTConfig{Key: "secret", Issuer: "userreg", Audience: " "}, Postgres: &postgres.DBConn{}}
		assert.ErrorContains(t, cfg.Validate(), "jwt.audience")
	})

	t.Run("missing postgres", func(t *testing.T) {
		cfg := &Config{JWT: &JWTConfig{Key: "secret", Issuer: "userreg", Audience: "clients"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("complete", func(t *testing.T) {
		cfg := &Config{JWT: &JWTConfig{Key: "secret", Issuer: "userreg", Audience: "clients"}, Postgres: &postgres.DBConn{}}
		assert.NoError(t, cfg.Validate())
	})
}
