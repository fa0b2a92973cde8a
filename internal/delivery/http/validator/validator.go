// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validator *playgroundvalidator.Validate
}

// New creates the echo validator backed by go-playground/validator.
func New() *CustomValidator {
	return &CustomValidator{
		validator: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Handlers translate the returned
// error into the 400 response envelope.
func (v *CustomValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
