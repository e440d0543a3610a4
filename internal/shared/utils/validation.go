package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"residconnect/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in validation errors so messages match the
	// wire field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct against its validate tags and
// returns a user-facing validation error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Requête invalide")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, getFieldErrorMessage(fieldError))
	}

	return errors.NewValidationError(strings.Join(messages, "; "))
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Le champ %s est requis", field)
	case "email":
		return fmt.Sprintf("Le champ %s doit être une adresse email valide", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Le champ %s doit contenir au moins %s caractères", field, param)
		}
		return fmt.Sprintf("Le champ %s doit être au moins %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Le champ %s ne peut pas dépasser %s caractères", field, param)
		}
		return fmt.Sprintf("Le champ %s ne peut pas dépasser %s", field, param)
	case "oneof":
		return fmt.Sprintf("Le champ %s doit être parmi [%s]", field, param)
	default:
		return fmt.Sprintf("Le champ %s est invalide", field)
	}
}
