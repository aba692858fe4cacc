// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"learnhub/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field name to the rule it failed.
type FieldErrors map[string]string

// Error lists the failed fields in a stable order.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range slices.Sorted(maps.Keys(fe)) {
		parts = append(parts, field+": "+fe[field])
	}

	return "invalid fields: " + strings.Join(parts, ", ")
}

// CustomValidator validates bound request bodies.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json tag.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Rule violations come back as FieldErrors.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}

	return fields
}
