package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "userreg/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	m := NewRequestIDMiddleware(logger)

	t.Run("reuses caller id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		err := m.Process(func(c echo.Context) error {
			ctx := c.Request().Context()
			assert.Equal(t, "abc-123", deliverycontext.GetRequestIDFromContext(ctx))
			deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside")

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "abc-123", deliverycontext.GetRequestID(c))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
		assert.Contains(t, buf.String(), `"path":"/api/users/me"`)
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, deliverycontext.GetRequestID(c))
	})
}

func TestGetLoggerOrDefault_OutsideRequest(t *testing.T) {
	fallback := slog.Default()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Same(t, fallback, deliverycontext.GetLoggerOrDefault(req.Context(), fallback))
}
