// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound input structs.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for Echo.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the struct tags of the given input. Failures surface as
// the validation error of the application taxonomy so the outer error
// handler maps them to a 400.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
