package cryptography

import (
	"hash"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
)

// baseProvider implements cryptoDomain.Provider over a service table.
type baseProvider struct {
	name    string
	version string
	info    string
	table   *serviceTable
}

func (p *baseProvider) Name() string    { return p.name }
func (p *baseProvider) Version() string { return p.version }
func (p *baseProvider) Info() string    { return p.info }

// Services lists the algorithms offered for a service type, sorted by name.
func (p *baseProvider) Services(serviceType cryptoDomain.ServiceType) []string {
	return p.table.services(serviceType)
}

// NewCipher returns a cipher handle for the transformation.
func (p *baseProvider) NewCipher(transformation cryptoDomain.Transformation) (cryptoDomain.Cipher, error) {
	return p.table.newCipher(p.name, transformation)
}

// NewDigest returns a fresh message digest.
func (p *baseProvider) NewDigest(algorithm string) (hash.Hash, error) {
	return p.table.newDigest(p.name, algorithm)
}

// NewMac returns a fresh HMAC keyed with key.
func (p *baseProvider) NewMac(algorithm string, key []byte) (hash.Hash, error) {
	return p.table.newMac(p.name, algorithm, key)
}

// NewCertificateFactory returns a parser for the certificate type.
func (p *baseProvider) NewCertificateFactory(certificateType string) (cryptoDomain.CertificateFactory, error) {
	return p.table.newCertificateFactory(p.name, certificateType)
}
