package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestRSAKeySize is the size of the shared test key
const TestRSAKeySize = 2048

var (
	rsaKey     *rsa.PrivateKey
	rsaKeyErr  error
	rsaKeyOnce sync.Once
)

// RSAKey returns an RSA key generated once per test binary.
func RSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	rsaKeyOnce.Do(func() {
		rsaKey, rsaKeyErr = rsa.GenerateKey(rand.Reader, TestRSAKeySize)
	})
	require.NoError(t, rsaKeyErr)

	return rsaKey
}

// SelfSignedCertificate creates a self-signed certificate for key and returns its DER and PEM forms.
func SelfSignedCertificate(t *testing.T, key *rsa.PrivateKey, commonName string) ([]byte, []byte) {
	t.Helper()

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	return der, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}
