package commands

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-provider/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// KeyGenerationRequest describes a key to generate
type KeyGenerationRequest struct {
	Algorithm string `validate:"required,oneof=AES RSA ChaCha20-Poly1305 XChaCha20-Poly1305"`
	KeySize   uint   `validate:"keySizeValidation"`
	KeyDir    string `validate:"required"`
}

// Validate for validating KeyGenerationRequest struct
func (r *KeyGenerationRequest) Validate() error {
	return validateRequest(r)
}

// CipherRequest describes an encrypt or decrypt invocation
type CipherRequest struct {
	Algorithm  string `validate:"required,transformationValidation"`
	InputFile  string `validate:"required"`
	OutputFile string `validate:"required"`
	KeyFile    string `validate:"required"`
}

// Validate for validating CipherRequest struct
func (r *CipherRequest) Validate() error {
	return validateRequest(r)
}

// DigestRequest describes a digest or HMAC invocation. KeyFile is only used for HMACs.
type DigestRequest struct {
	Algorithm string `validate:"required,min=2,max=64"`
	InputFile string `validate:"required"`
	KeyFile   string
}

// Validate for validating DigestRequest struct
func (r *DigestRequest) Validate() error {
	return validateRequest(r)
}

func validateRequest(request any) error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	err = validate.Struct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
