package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/reactive-web/reactive-cms/internal/domain/errors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/blog/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_NotFoundKeepsRealMessage(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrNotFound.WithDetails("Route: /blog/missing Not found."))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Page not found", body.Message)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Route: /blog/missing Not found.", body.Error.Details)
}

func TestErrorMiddleware_WrappedAppErrorStillResolves(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not valid user", body.Message)
}

func TestErrorMiddleware_ServerErrorsAreRedacted(t *testing.T) {
	rec, body := handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "failed to create user"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_UnknownErrorsAreRedacted(t *testing.T) {
	rec, body := handleError(t, errors.New("sensitive internal detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "sensitive internal detail")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", body.Message)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}
