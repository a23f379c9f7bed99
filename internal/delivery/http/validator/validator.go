// Package validator adapts go-playground/validator to echo's Validator
// interface. Request DTOs declare their shape with validate tags; any
// violation is rejected before a handler body runs.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "mesto/internal/domain/errors"
)

type requestValidator struct {
	validate *playground.Validate
}

// New builds the echo validator used by the HTTP server.
func New() echo.Validator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations map to the incorrect
// request error so the central error handler turns them into a 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrIncorrectRequest.WithDetails(err.Error())
	}

	return nil
}
