// Package validators holds custom validator tags shared by request models.
package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Custom tag names
const (
	KeySizeTag        = "keySizeValidation"
	TransformationTag = "transformationValidation"
)

// New returns a validator with the custom tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation(KeySizeTag, KeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation(TransformationTag, TransformationValidation); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}

	return validate, nil
}
