package cryptography

import (
	"crypto/hmac"
	"fmt"
	"hash"
	"sort"
	"strings"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
)

type cipherBuilder func(provider string) cryptoDomain.Cipher

type cipherSpec struct {
	name  string
	build cipherBuilder
}

type hashSpec struct {
	name string
	new  func() hash.Hash
}

// serviceTable maps algorithm names to implementations. Lookups are case-insensitive.
// Tables are filled once at provider construction and only read afterwards.
type serviceTable struct {
	ciphers    map[string]cipherSpec
	algorithms map[string]string
	modes      map[string]struct{}
	digests    map[string]hashSpec
	macs       map[string]hashSpec
	certs      map[string]string
}

func newServiceTable() *serviceTable {
	return &serviceTable{
		ciphers:    make(map[string]cipherSpec),
		algorithms: make(map[string]string),
		modes:      make(map[string]struct{}),
		digests:    make(map[string]hashSpec),
		macs:       make(map[string]hashSpec),
		certs:      make(map[string]string),
	}
}

// addCipher registers a transformation. Panics on malformed names since tables are static.
func (t *serviceTable) addCipher(transformation string, build cipherBuilder) {
	tr, err := cryptoDomain.ParseTransformation(transformation)
	if err != nil {
		panic(fmt.Sprintf("invalid cipher transformation %q: %v", transformation, err))
	}

	t.ciphers[tr.Key()] = cipherSpec{name: transformation, build: build}
	t.algorithms[tr.AlgorithmKey()] = tr.Algorithm
	if !tr.IsBare() {
		t.modes[tr.ModeKey()] = struct{}{}
	}
}

// addAlias maps an extra name onto an already registered transformation.
func (t *serviceTable) addAlias(alias, target string) {
	tr, err := cryptoDomain.ParseTransformation(target)
	if err != nil {
		panic(fmt.Sprintf("invalid cipher transformation %q: %v", target, err))
	}
	spec, ok := t.ciphers[tr.Key()]
	if !ok {
		panic(fmt.Sprintf("alias %q targets unregistered transformation %q", alias, target))
	}

	aliasTr, err := cryptoDomain.ParseTransformation(alias)
	if err != nil {
		panic(fmt.Sprintf("invalid cipher alias %q: %v", alias, err))
	}
	t.ciphers[aliasTr.Key()] = cipherSpec{name: alias, build: spec.build}
	t.algorithms[aliasTr.AlgorithmKey()] = aliasTr.Algorithm
}

func (t *serviceTable) addDigest(name string, newHash func() hash.Hash) {
	t.digests[strings.ToUpper(name)] = hashSpec{name: name, new: newHash}
}

// addMac registers an HMAC over the given digest constructor.
func (t *serviceTable) addMac(name string, newHash func() hash.Hash) {
	t.macs[strings.ToUpper(name)] = hashSpec{name: name, new: newHash}
}

func (t *serviceTable) addCertificateType(name string) {
	t.certs[strings.ToUpper(name)] = name
}

func (t *serviceTable) newCipher(provider string, tr cryptoDomain.Transformation) (cryptoDomain.Cipher, error) {
	if spec, ok := t.ciphers[tr.Key()]; ok {
		return spec.build(provider), nil
	}

	if _, ok := t.algorithms[tr.AlgorithmKey()]; !ok {
		return nil, fmt.Errorf("%w: cipher %s not supported by provider %s", cryptoDomain.ErrAlgorithmUnavailable, tr, provider)
	}
	if tr.IsBare() {
		return nil, fmt.Errorf("%w: cipher %s requires mode and padding with provider %s", cryptoDomain.ErrAlgorithmUnavailable, tr, provider)
	}
	if _, ok := t.modes[tr.ModeKey()]; !ok {
		return nil, fmt.Errorf("%w: mode %s not supported for %s by provider %s", cryptoDomain.ErrAlgorithmUnavailable, tr.Mode, tr.Algorithm, provider)
	}
	return nil, fmt.Errorf("%w: padding %s not supported for %s/%s by provider %s", cryptoDomain.ErrPaddingUnavailable, tr.Padding, tr.Algorithm, tr.Mode, provider)
}

func (t *serviceTable) newDigest(provider, name string) (hash.Hash, error) {
	spec, ok := t.digests[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: message digest %s not supported by provider %s", cryptoDomain.ErrAlgorithmUnavailable, name, provider)
	}
	return spec.new(), nil
}

func (t *serviceTable) newMac(provider, name string, key []byte) (hash.Hash, error) {
	spec, ok := t.macs[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: mac %s not supported by provider %s", cryptoDomain.ErrAlgorithmUnavailable, name, provider)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: mac key cannot be empty", cryptoDomain.ErrInvalidKey)
	}
	return hmac.New(spec.new, key), nil
}

func (t *serviceTable) newCertificateFactory(provider, certificateType string) (cryptoDomain.CertificateFactory, error) {
	name, ok := t.certs[strings.ToUpper(certificateType)]
	if !ok {
		return nil, fmt.Errorf("%w: certificate type %s not supported by provider %s", cryptoDomain.ErrCertificateUnsupported, certificateType, provider)
	}
	return &x509CertificateFactory{certificateType: name}, nil
}

func (t *serviceTable) services(serviceType cryptoDomain.ServiceType) []string {
	var names []string
	switch serviceType {
	case cryptoDomain.ServiceCipher:
		for _, spec := range t.ciphers {
			names = append(names, spec.name)
		}
	case cryptoDomain.ServiceMessageDigest:
		for _, spec := range t.digests {
			names = append(names, spec.name)
		}
	case cryptoDomain.ServiceMac:
		for _, spec := range t.macs {
			names = append(names, spec.name)
		}
	case cryptoDomain.ServiceCertificateFactory:
		for _, name := range t.certs {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
