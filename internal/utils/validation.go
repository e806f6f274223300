package utils

import (
	"github.com/ATClus/psa-api-sub000/internal/models"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the closed-enum validation rules
// on the given validator instance. Gin's binding engine is a
// *validator.Validate, so request payloads using the `region` and
// `intensity` tags are rejected before they reach the service layer.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return models.Region(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("intensity", func(fl validator.FieldLevel) bool {
		return models.Intensity(fl.Field().String()).Valid()
	})
}
