package crypto

import (
	"crypto/x509"
	"hash"
)

// Cipher is a configured encryption/decryption handle for one algorithm/mode/padding combination.
// Handles hold no per-operation state and are safe for concurrent use.
type Cipher interface {
	// Algorithm returns the resolved transformation, e.g. "RSA/NONE/PKCS1Padding".
	Algorithm() string

	// Provider returns the name of the provider backing this cipher.
	Provider() string

	// BlockSize returns the cipher block size in bytes, or 0 for stream and RSA ciphers.
	BlockSize() int

	// Encrypt encrypts plaintext with the given key.
	// RSA ciphers expect *rsa.PublicKey (or *rsa.PrivateKey), symmetric ciphers expect []byte.
	Encrypt(key any, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with the given key.
	// RSA ciphers expect *rsa.PrivateKey, symmetric ciphers expect []byte.
	Decrypt(key any, ciphertext []byte) ([]byte, error)
}

// CertificateFactory parses certificates of one certificate type.
type CertificateFactory interface {
	// Type returns the certificate type, e.g. "X.509".
	Type() string

	// GenerateCertificate parses the first certificate found in PEM or DER data.
	GenerateCertificate(data []byte) (*x509.Certificate, error)

	// GenerateCertificates parses every certificate found in PEM or DER data.
	GenerateCertificates(data []byte) ([]*x509.Certificate, error)
}

// Provider is a pluggable implementation of cryptographic primitives registered under a name.
type Provider interface {
	Name() string
	Version() string
	Info() string

	// Services lists the algorithms offered for a service type, sorted by name.
	Services(serviceType ServiceType) []string

	NewCipher(transformation Transformation) (Cipher, error)
	NewDigest(algorithm string) (hash.Hash, error)
	NewMac(algorithm string, key []byte) (hash.Hash, error)
	NewCertificateFactory(certificateType string) (CertificateFactory, error)
}

// Registry holds providers by name.
type Registry interface {
	// Register adds a provider; the name must not be taken.
	Register(provider Provider) error

	// Unregister removes the provider registered under name.
	Unregister(name string) error

	// Provider looks up a provider by name.
	Provider(name string) (Provider, bool)

	// Providers returns all providers in registration order.
	Providers() []Provider

	// ResolveOrInstall looks up the candidate's name and returns the registered provider when
	// sameKind accepts it, otherwise the candidate. With install set, an unused name is claimed
	// for the candidate. Lookup and install happen atomically.
	ResolveOrInstall(candidate Provider, sameKind func(Provider) bool, install bool) (Provider, bool, error)
}

// Crypto is the generic cryptography facade handed to the rest of the application.
type Crypto interface {
	// Provider returns the provider every operation is delegated to.
	Provider() Provider

	// Cipher returns a cipher handle for the transformation.
	Cipher(algorithm string) (Cipher, error)

	// Digest returns a fresh message digest.
	Digest(algorithm string) (hash.Hash, error)
	MD5() (hash.Hash, error)
	SHA1() (hash.Hash, error)
	SHA256() (hash.Hash, error)
	SHA512() (hash.Hash, error)

	// Mac returns a fresh keyed MAC.
	Mac(algorithm string, key []byte) (hash.Hash, error)
	HmacSHA1(key []byte) (hash.Hash, error)
	HmacSHA256(key []byte) (hash.Hash, error)
	HmacSHA512(key []byte) (hash.Hash, error)

	// CertFactory returns the X.509 certificate factory created at construction.
	CertFactory() CertificateFactory
}
