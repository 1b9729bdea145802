package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"userreg/config"
	domainerrors "userreg/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	t.Run("debug logs caller identity", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
		accountID := uuid.New()

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), httptest.NewRecorder())
		err := m.Handle(func(c echo.Context) error {
			c.Set(contextKeyAccountID, accountID)
			c.Set(contextKeyUsername, "john")

			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"account_id":"`+accountID.String()+`"`)
		assert.Contains(t, buf.String(), `"username":"john"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("quiet outside debug for client errors", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		err := m.Handle(func(echo.Context) error { return domainerrors.ErrNotFound })(c)

		assert.Error(t, err)
		assert.Empty(t, buf.String())
	})
}
