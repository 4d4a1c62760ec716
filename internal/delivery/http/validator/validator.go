// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	validatorLib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type structValidator struct {
	validate *validatorLib.Validate
}

// New creates the request validator used by the Echo server.
func New() echo.Validator {
	return &structValidator{
		validate: validatorLib.New(validatorLib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Handlers decide how to surface
// the validation error.
func (v *structValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
