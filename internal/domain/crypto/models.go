package crypto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ProviderInfo describes a provider as listed by a registry.
type ProviderInfo struct {
	Name     string                   `mapstructure:"name" json:"name" validate:"required,excludesall=/"`
	Version  string                   `mapstructure:"version" json:"version" validate:"required"`
	Info     string                   `mapstructure:"info" json:"info"`
	Services map[ServiceType][]string `mapstructure:"services" json:"services,omitempty"`
}

// DescribeProvider collects the metadata and service tables of a provider.
func DescribeProvider(p Provider) ProviderInfo {
	services := make(map[ServiceType][]string)
	for _, st := range ServiceTypes {
		if algs := p.Services(st); len(algs) > 0 {
			services[st] = algs
		}
	}

	return ProviderInfo{
		Name:     p.Name(),
		Version:  p.Version(),
		Info:     p.Info(),
		Services: services,
	}
}

// Validate for validating ProviderInfo struct
func (p *ProviderInfo) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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
