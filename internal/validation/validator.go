package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is the sentinel wrapped by every validation failure so
// callers can classify them with errors.Is.
var ErrValidation = errors.New("validation failed")

// Validator wraps the go-playground validator with custom rules and error
// formatting.
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance.
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("notblank", validateNotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a tagged struct and folds all field failures
// into a single error wrapping ErrValidation.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "notblank":
		return fmt.Sprintf("%s cannot be blank", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s is out of range", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// validateNotBlank rejects strings that are empty or whitespace-only.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
