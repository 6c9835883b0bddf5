// Package cryptography implements the cryptography providers, the provider registry, the generic
// cryptography facade and the XCrypto provider adapter handed to the rest of the application.
package cryptography
