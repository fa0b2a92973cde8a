package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reactive-web/reactive-cms/internal/delivery/http/response"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// ContentHandler holds dependencies for the public site handlers.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(contentUC usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		contentUC: contentUC,
		logger:    logger,
	}
}

// Home serves the configured home page.
func (h *ContentHandler) Home(c echo.Context) error {
	view, err := h.contentUC.HomePage(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Page serves a single page by slug.
func (h *ContentHandler) Page(c echo.Context) error {
	view, err := h.contentUC.PageBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Post serves a single blog post by slug.
func (h *ContentHandler) Post(c echo.Context) error {
	view, err := h.contentUC.PostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Blog redirects the bare archive route to its first page.
func (h *ContentHandler) Blog(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/blog/page/1")
}

// Archive serves one page of the blog archive.
func (h *ContentHandler) Archive(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid archive page number")
	}

	view, err := h.contentUC.PostArchive(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
