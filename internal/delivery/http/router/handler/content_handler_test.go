package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// stubContentUsecase returns canned views for the public site handlers.
type stubContentUsecase struct {
	archive func(page int) (*usecase.PostArchiveView, error)
}

func (s *stubContentUsecase) HomePage(context.Context) (*usecase.PageView, error) {
	return &usecase.PageView{Template: "default/index"}, nil
}

func (s *stubContentUsecase) PageBySlug(context.Context, string) (*usecase.PageView, error) {
	return &usecase.PageView{}, nil
}

func (s *stubContentUsecase) PostBySlug(context.Context, string) (*usecase.PostView, error) {
	return &usecase.PostView{}, nil
}

func (s *stubContentUsecase) PostArchive(_ context.Context, page int) (*usecase.PostArchiveView, error) {
	return s.archive(page)
}

func newContentHandler(stub *stubContentUsecase) *ContentHandler {
	return NewContentHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestContentHandler_Blog_RedirectsToFirstPage(t *testing.T) {
	h := newContentHandler(&stubContentUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Blog(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/blog/page/1", rec.Header().Get(echo.HeaderLocation))
}

func TestContentHandler_Archive_ParsesPageParam(t *testing.T) {
	var gotPage int
	h := newContentHandler(&stubContentUsecase{
		archive: func(page int) (*usecase.PostArchiveView, error) {
			gotPage = page

			return &usecase.PostArchiveView{CurrentPage: page}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/blog/page/3", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("page")
	c.SetParamValues("3")

	require.NoError(t, h.Archive(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, gotPage)
}

func TestContentHandler_Archive_RejectsNonNumericPage(t *testing.T) {
	h := newContentHandler(&stubContentUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/blog/page/abc", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("page")
	c.SetParamValues("abc")

	require.NoError(t, h.Archive(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
