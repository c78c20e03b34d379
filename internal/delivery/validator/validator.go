// Package validator adapts go-playground/validator to echo and the command line.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "painel/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate returns ErrValidationFailed with one message per failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validation")
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(formatValidationErrors(validationErrs)))
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		field := err.Field()

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s é obrigatório", field)
		case "email":
			message = fmt.Sprintf("%s deve ser um e-mail válido", field)
		case "min":
			message = fmt.Sprintf("%s deve ter pelo menos %s caracteres", field, err.Param())
		case "max":
			message = fmt.Sprintf("%s deve ter no máximo %s caracteres", field, err.Param())
		case "len":
			message = fmt.Sprintf("%s deve ter %s caracteres", field, err.Param())
		case "numeric":
			message = fmt.Sprintf("%s deve conter apenas números", field)
		case "oneof":
			message = fmt.Sprintf("%s deve ser um de: %s", field, err.Param())
		case "datetime":
			message = fmt.Sprintf("%s deve estar no formato %s", field, err.Param())
		default:
			message = fmt.Sprintf("%s é inválido (%s)", field, err.Tag())
		}
		messages = append(messages, message)
	}

	return strings.Join(messages, "; ")
}
