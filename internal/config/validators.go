package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/cryptsynth/internal/encryption"
)

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive.
// It registers both the validation logic and a human-readable error message,
// and reports fields by their flag label.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} is mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	otherFieldName := fl.Param()
	field := fl.Field()
	otherField := fl.Parent().FieldByName(otherFieldName)

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}

// registerCipher adds a validator accepting every cipher name the transforms resolve,
// aliases and spelling variants included.
func registerCipher(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"cipher",
		validateCipher,
		"{0} must name a cipher: rotation (caesar), one_time_pad (otp) or prf (prf_scheme)",
	); err != nil {
		return fmt.Errorf("registering cipher validation: %w", err)
	}

	return nil
}

func validateCipher(fl validator.FieldLevel) bool {
	_, err := encryption.ParseCipher(fl.Field().String())

	return err == nil
}
