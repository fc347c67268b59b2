package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVisitorRejectsMissingUID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws/chat", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewWebSocketHandler(nil, nil, nil)
	require.NoError(t, h.HandleVisitor(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestHandleAdminRejectsMissingUID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ws/admin/chat", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewWebSocketHandler(nil, nil, nil)
	require.NoError(t, h.HandleAdmin(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
}
