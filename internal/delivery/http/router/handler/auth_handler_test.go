package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactive-web/reactive-cms/internal/delivery/http/middleware"
	"github.com/reactive-web/reactive-cms/internal/delivery/http/response"
	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// stubAuthUsecase is a minimal test double for the login flow.
type stubAuthUsecase struct {
	login func(input *usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubAuthUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.login(input)
}

func (s *stubAuthUsecase) Logout(context.Context, uuid.UUID) error {
	return nil
}

func (s *stubAuthUsecase) Authenticate(context.Context, string) (*entity.SessionUser, error) {
	return nil, nil
}

type stubAdminUsecase struct{}

func (stubAdminUsecase) Dashboard(context.Context) (*usecase.DashboardView, error) {
	return &usecase.DashboardView{Title: "DASHBOARD", ItemsPerPage: 20}, nil
}

func newAuthHandler(t *testing.T, authUC usecase.AuthUsecase) *AuthHandler {
	t.Helper()

	return NewAuthHandler(
		authUC,
		&stubSetupUsecase{initialized: true},
		stubAdminUsecase{},
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	userID := uuid.New()
	stub := &stubAuthUsecase{
		login: func(input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "ada", input.UserName)

			return &usecase.LoginOutput{
				Token: "signed-token",
				User:  &entity.SessionUser{ID: userID, UserName: "ada", Role: entity.RoleAdmin},
			}, nil
		},
	}
	h := newAuthHandler(t, stub)

	form := url.Values{}
	form.Set("user_name", "ada")
	form.Set("user_pass", "secret123")

	c, rec := newSetupTestContext(t, http.MethodPost, "/admin/login", form)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Login_RejectsOverlongCredentials(t *testing.T) {
	stub := &stubAuthUsecase{
		login: func(*usecase.LoginInput) (*usecase.LoginOutput, error) {
			t.Fatal("login must not run for rejected input")

			return nil, nil
		},
	}
	h := newAuthHandler(t, stub)

	form := url.Values{}
	form.Set("user_name", strings.Repeat("a", 256))
	form.Set("user_pass", "secret123")

	c, rec := newSetupTestContext(t, http.MethodPost, "/admin/login", form)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}
