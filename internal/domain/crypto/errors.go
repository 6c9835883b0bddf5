package crypto

import "errors"

var (
	// ErrAlgorithmUnavailable is returned when a provider has no implementation for an algorithm or mode
	ErrAlgorithmUnavailable = errors.New("algorithm unavailable")

	// ErrPaddingUnavailable is returned when the algorithm and mode are known but the padding is not
	ErrPaddingUnavailable = errors.New("padding unavailable")

	// ErrCertificateUnsupported is returned when certificate handling cannot be initialized
	ErrCertificateUnsupported = errors.New("certificate support unavailable")

	// ErrInvalidKey is returned when a key does not match the cipher it is used with
	ErrInvalidKey = errors.New("invalid key")

	// ErrProviderNotFound is returned when no provider is registered under a name
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderAlreadyRegistered is returned when a provider name is already taken
	ErrProviderAlreadyRegistered = errors.New("provider already registered")
)
