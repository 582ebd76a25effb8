// Package validation plugs go-playground/validator into Echo so handlers can
// call c.Validate on bound request payloads.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validator adapts a validator.Validate instance to Echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// New returns a ready-to-register Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
