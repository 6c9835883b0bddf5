// Package crypto defines the core contracts for pluggable cryptography providers, the generic
// cryptography facade built on top of them, cipher transformations and the errors surfaced when a
// provider lacks support for a requested algorithm, padding or certificate type.
package crypto
