package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/pkg/errors"
)

type fakeAuthenticator struct {
	mu      sync.Mutex
	tokens  map[string]string
	touched []string
}

func newFakeAuthenticator() *fakeAuthenticator {
	return &fakeAuthenticator{tokens: make(map[string]string)}
}

func (f *fakeAuthenticator) VerifyToken(ctx context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if uid, ok := f.tokens[token]; ok {
		return uid, nil
	}
	return "", errors.Unauthorized("Invalid or expired token", nil)
}

func (f *fakeAuthenticator) TouchLastActive(ctx context.Context, uid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, uid)
}

func (f *fakeAuthenticator) touchedUIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.touched...)
}

func invokeAuthenticate(t *testing.T, auth *fakeAuthenticator, target string, header string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("uid").(string))
	}
	err := NewAuthMiddleware(auth).Authenticate(next)(c)
	return rec, err
}

func TestAuthenticateRejectsMissingCredentials(t *testing.T) {
	_, err := invokeAuthenticate(t, newFakeAuthenticator(), "/v1/auth/me", "")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateRejectsGarbledHeader(t *testing.T) {
	auth := newFakeAuthenticator()
	auth.tokens["good-token"] = "uid-1"

	for _, header := range []string{"Bearer", "Token good-token", "Bearer good token extra"} {
		_, err := invokeAuthenticate(t, auth, "/v1/auth/me", header)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	_, err := invokeAuthenticate(t, newFakeAuthenticator(), "/v1/auth/me", "Bearer bogus")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticatePassesUIDToHandler(t *testing.T) {
	auth := newFakeAuthenticator()
	auth.tokens["good-token"] = "uid-1"

	rec, err := invokeAuthenticate(t, auth, "/v1/auth/me", "Bearer good-token")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", rec.Body.String())
	assert.Eventually(t, func() bool {
		return len(auth.touchedUIDs()) == 1 && auth.touchedUIDs()[0] == "uid-1"
	}, time.Second, 10*time.Millisecond)
}

func TestAuthenticateAcceptsQueryTokenFallback(t *testing.T) {
	auth := newFakeAuthenticator()
	auth.tokens["good-token"] = "uid-1"

	rec, err := invokeAuthenticate(t, auth, "/ws/chat?token=good-token", "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", rec.Body.String())
}
