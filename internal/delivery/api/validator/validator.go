// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"foodcart/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that also rejects whitespace-only strings tagged "notblank".
// It panics when a custom tag cannot be registered, so a broken tag fails at startup.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerTags(validate); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: validate}
}

func registerTags(validate *validator.Validate) error {
	err := validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return errors.Wrap(err, "register notblank validation")
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	return nil
}

// FieldErrors flattens validation errors into field -> failed tag.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}

	return fields
}
