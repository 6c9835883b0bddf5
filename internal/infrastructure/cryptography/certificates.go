package cryptography

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

const pemCertificateType = "CERTIFICATE"

// x509CertificateFactory parses PEM or DER encoded X.509 certificates.
type x509CertificateFactory struct {
	certificateType string
}

func (f *x509CertificateFactory) Type() string {
	return f.certificateType
}

// GenerateCertificate returns the first certificate in data.
func (f *x509CertificateFactory) GenerateCertificate(data []byte) (*x509.Certificate, error) {
	certs, err := f.GenerateCertificates(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// GenerateCertificates returns every certificate in data. PEM blocks of other types are skipped.
func (f *x509CertificateFactory) GenerateCertificates(data []byte) ([]*x509.Certificate, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("certificate data cannot be empty")
	}

	if !bytes.Contains(data, []byte("-----BEGIN")) {
		certs, err := x509.ParseCertificates(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DER certificate: %w", err)
		}
		if len(certs) == 0 {
			return nil, errors.New("no certificates found")
		}
		return certs, nil
	}

	var certs []*x509.Certificate
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != pemCertificateType {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PEM certificate: %w", err)
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, errors.New("no certificates found")
	}
	return certs, nil
}
