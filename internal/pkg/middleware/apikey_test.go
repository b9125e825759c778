package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func invokeWithKey(t *testing.T, configured, provided string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.GET("/guarded", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, APIKeyMiddleware(configured))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if provided != "" {
		req.Header.Set("X-API-Key", provided)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAPIKeyMiddleware_ValidKey(t *testing.T) {
	rec := invokeWithKey(t, "secret", "secret")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyMiddleware_InvalidKey(t *testing.T) {
	rec := invokeWithKey(t, "secret", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyMiddleware_MissingKey(t *testing.T) {
	rec := invokeWithKey(t, "secret", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyMiddleware_EmptyConfigDisablesCheck(t *testing.T) {
	rec := invokeWithKey(t, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
