package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "portfolio/pkg/errors"
)

func record(t *testing.T, write func(c echo.Context) error) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, write(c))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestErrorMapsAppError(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Error(c, apperrors.NotFound("Room", nil))
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Room not found", body.Error.Message)
	assert.NotEmpty(t, body.Timestamp)
}

func TestErrorMapsWrappedAppError(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Error(c, fmt.Errorf("lookup: %w", apperrors.Unauthorized("Invalid or expired token", nil)))
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestErrorMapsValidationErrors(t *testing.T) {
	input := struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}{Email: "not-an-email", Password: "secret99"}

	err := validator.New().Struct(input)
	require.Error(t, err)

	rec, body := record(t, func(c echo.Context) error {
		return Error(c, err)
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "email must be a valid email address", body.Error.Message)
}

func TestErrorFallsBackToInternal(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Error(c, fmt.Errorf("firestore unavailable"))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestSuccessEnvelope(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Success(c, map[string]string{"status": "ok"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Timestamp)
}

func TestSuccessPaginatedEnvelope(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return SuccessPaginated(c, []string{"a", "b"}, 5, 2, 2)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)

	raw, err := json.Marshal(body.Data)
	require.NoError(t, err)
	var page PaginatedResponse
	require.NoError(t, json.Unmarshal(raw, &page))

	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
}
