//go:build unit
// +build unit

package cryptography

import (
	"crypto/x509"
	"hash"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// mockProvider is a mock implementation of cryptoDomain.Provider
type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Name() string {
	return m.Called().String(0)
}

func (m *mockProvider) Version() string {
	return m.Called().String(0)
}

func (m *mockProvider) Info() string {
	return m.Called().String(0)
}

func (m *mockProvider) Services(serviceType cryptoDomain.ServiceType) []string {
	args := m.Called(serviceType)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *mockProvider) NewCipher(transformation cryptoDomain.Transformation) (cryptoDomain.Cipher, error) {
	args := m.Called(transformation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cryptoDomain.Cipher), args.Error(1)
}

func (m *mockProvider) NewDigest(algorithm string) (hash.Hash, error) {
	args := m.Called(algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(hash.Hash), args.Error(1)
}

func (m *mockProvider) NewMac(algorithm string, key []byte) (hash.Hash, error) {
	args := m.Called(algorithm, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(hash.Hash), args.Error(1)
}

func (m *mockProvider) NewCertificateFactory(certificateType string) (cryptoDomain.CertificateFactory, error) {
	args := m.Called(certificateType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cryptoDomain.CertificateFactory), args.Error(1)
}

// mockCrypto is a mock implementation of cryptoDomain.Crypto
type mockCrypto struct {
	mock.Mock
}

func (m *mockCrypto) Provider() cryptoDomain.Provider {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(cryptoDomain.Provider)
}

func (m *mockCrypto) Cipher(algorithm string) (cryptoDomain.Cipher, error) {
	args := m.Called(algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cryptoDomain.Cipher), args.Error(1)
}

func (m *mockCrypto) Digest(algorithm string) (hash.Hash, error) {
	args := m.Called(algorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(hash.Hash), args.Error(1)
}

func (m *mockCrypto) MD5() (hash.Hash, error)    { return m.Digest(cryptoDomain.DigestMD5) }
func (m *mockCrypto) SHA1() (hash.Hash, error)   { return m.Digest(cryptoDomain.DigestSHA1) }
func (m *mockCrypto) SHA256() (hash.Hash, error) { return m.Digest(cryptoDomain.DigestSHA256) }
func (m *mockCrypto) SHA512() (hash.Hash, error) { return m.Digest(cryptoDomain.DigestSHA512) }

func (m *mockCrypto) Mac(algorithm string, key []byte) (hash.Hash, error) {
	args := m.Called(algorithm, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(hash.Hash), args.Error(1)
}

func (m *mockCrypto) HmacSHA1(key []byte) (hash.Hash, error) {
	return m.Mac(cryptoDomain.MacHmacSHA1, key)
}

func (m *mockCrypto) HmacSHA256(key []byte) (hash.Hash, error) {
	return m.Mac(cryptoDomain.MacHmacSHA256, key)
}

func (m *mockCrypto) HmacSHA512(key []byte) (hash.Hash, error) {
	return m.Mac(cryptoDomain.MacHmacSHA512, key)
}

func (m *mockCrypto) CertFactory() cryptoDomain.CertificateFactory {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(cryptoDomain.CertificateFactory)
}

// stubCipher is a fixed cipher handle returned by mocks
type stubCipher struct {
	algorithm string
}

func (s *stubCipher) Algorithm() string                        { return s.algorithm }
func (s *stubCipher) Provider() string                         { return "stub" }
func (s *stubCipher) BlockSize() int                           { return 0 }
func (s *stubCipher) Encrypt(_ any, in []byte) ([]byte, error) { return in, nil }
func (s *stubCipher) Decrypt(_ any, in []byte) ([]byte, error) { return in, nil }

// stubCertificateFactory is a certificate factory that never parses anything
type stubCertificateFactory struct{}

func (stubCertificateFactory) Type() string { return cryptoDomain.CertificateTypeX509 }

func (stubCertificateFactory) GenerateCertificate([]byte) (*x509.Certificate, error) {
	return nil, nil
}

func (stubCertificateFactory) GenerateCertificates([]byte) ([]*x509.Certificate, error) {
	return nil, nil
}

// impostorProvider claims the XCrypto name without being an *XCryptoProvider
type impostorProvider struct {
	*StdlibProvider
}

func newImpostorProvider() *impostorProvider {
	return &impostorProvider{StdlibProvider: NewStdlibProvider()}
}

func (p *impostorProvider) Name() string {
	return XCryptoProviderName
}
