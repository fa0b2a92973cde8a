// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reactive-web/reactive-cms/internal/delivery/http/response"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// SetupHandler holds dependencies for the first-run setup handlers.
type SetupHandler struct {
	setupUC usecase.SetupUsecase
	logger  *slog.Logger
}

// NewSetupHandler is the constructor for SetupHandler, injected by Fx.
func NewSetupHandler(setupUC usecase.SetupUsecase, logger *slog.Logger) *SetupHandler {
	return &SetupHandler{
		setupUC: setupUC,
		logger:  logger,
	}
}

// ShowSetup serves the setup view. Once the system is initialized the setup
// route only redirects to the admin entry point.
func (h *SetupHandler) ShowSetup(c echo.Context) error {
	initialized, err := h.setupUC.IsInitialized(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if initialized {
		return c.Redirect(http.StatusFound, "/admin")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"action": "/setup",
	}, "Setup required")
}

// Bootstrap handles the setup form submission.
func (h *SetupHandler) Bootstrap(c echo.Context) error {
	var input usecase.SetupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setup input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.setupUC.Bootstrap(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Plaintext and hash never leave the server; return only identifiers.
	return response.Success(c, http.StatusCreated, map[string]any{
		"user_id":   output.User.ID,
		"user_name": output.User.UserName,
		"site_name": output.Site.Name,
	}, "Setup completed successfully")
}
