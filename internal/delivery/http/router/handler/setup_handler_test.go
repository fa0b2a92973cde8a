package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactive-web/reactive-cms/internal/delivery/http/response"
	"github.com/reactive-web/reactive-cms/internal/delivery/http/validator"
	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// stubSetupUsecase is a minimal test double for the setup flow.
type stubSetupUsecase struct {
	initialized bool
	bootstrap   func(input *usecase.SetupInput) (*usecase.SetupOutput, error)
}

func (s *stubSetupUsecase) IsInitialized(context.Context) (bool, error) {
	return s.initialized, nil
}

func (s *stubSetupUsecase) Bootstrap(_ context.Context, input *usecase.SetupInput) (*usecase.SetupOutput, error) {
	return s.bootstrap(input)
}

func newSetupTestContext(t *testing.T, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	e := echo.New()
	e.Validator = validator.New()

	return e.NewContext(req, rec), rec
}

func TestSetupHandler_ShowSetup_RedirectsWhenInitialized(t *testing.T) {
	h := NewSetupHandler(&stubSetupUsecase{initialized: true}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSetupTestContext(t, http.MethodGet, "/setup", nil)

	require.NoError(t, h.ShowSetup(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
}

func TestSetupHandler_ShowSetup_ServesFormWhenUninitialized(t *testing.T) {
	h := NewSetupHandler(&stubSetupUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newSetupTestContext(t, http.MethodGet, "/setup", nil)

	require.NoError(t, h.ShowSetup(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Setup required", body.Message)
}

func TestSetupHandler_Bootstrap_BindsFormFields(t *testing.T) {
	var got *usecase.SetupInput
	stub := &stubSetupUsecase{
		bootstrap: func(input *usecase.SetupInput) (*usecase.SetupOutput, error) {
			got = input

			return &usecase.SetupOutput{
				User:    &entity.User{ID: uuid.New(), UserName: input.UserName, Role: entity.RoleAdmin},
				Setting: &entity.Setting{PageTitle: "DASHBOARD"},
				Site:    &entity.Site{Name: input.SiteName},
			}, nil
		},
	}
	h := NewSetupHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	form := url.Values{}
	form.Set("setup_site_name", "Acme")
	form.Set("setup_site_url", "https://acme.test")
	form.Set("setup_first_name", "Ada")
	form.Set("setup_user_email", "ada@acme.test")
	form.Set("setup_user_name", "ada")
	form.Set("setup_user_pass", "secret123")

	c, rec := newSetupTestContext(t, http.MethodPost, "/setup", form)

	require.NoError(t, h.Bootstrap(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.SiteName)
	assert.Equal(t, "ada", got.UserName)
	assert.Equal(t, "secret123", got.Password)

	// The password never appears in the response body.
	assert.NotContains(t, rec.Body.String(), "secret123")
}

func TestSetupHandler_Bootstrap_RejectsOverlongField(t *testing.T) {
	stub := &stubSetupUsecase{
		bootstrap: func(*usecase.SetupInput) (*usecase.SetupOutput, error) {
			t.Fatal("bootstrap must not run for rejected input")

			return nil, nil
		},
	}
	h := NewSetupHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	form := url.Values{}
	form.Set("setup_user_name", strings.Repeat("a", 256))

	c, rec := newSetupTestContext(t, http.MethodPost, "/setup", form)

	require.NoError(t, h.Bootstrap(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}
