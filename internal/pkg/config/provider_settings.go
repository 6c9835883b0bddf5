package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ProviderSettings controls how the XCrypto provider is resolved at startup.
type ProviderSettings struct {
	// Install registers a freshly created provider in the registry when none is found.
	Install bool `mapstructure:"install" yaml:"install"`
	// RSAKeySize is the key size used by the CLI when generating RSA keys.
	RSAKeySize uint `mapstructure:"rsa_key_size" yaml:"rsa_key_size" validate:"required,oneof=2048 3072 4096"`
	// KeyDir is the directory generated key files are written to.
	KeyDir string `mapstructure:"key_dir" yaml:"key_dir" validate:"required"`
}

// Validate checks that all fields in ProviderSettings are valid
func (s *ProviderSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ProviderSettings: %w", err)
	}

	return nil
}
