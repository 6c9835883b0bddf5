package cryptography

import (
	"fmt"
	"sync"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-provider/internal/pkg/logger"
)

var (
	defaultResolver     *ProviderResolver
	defaultResolverOnce sync.Once
)

// ResolverOption configures a ProviderResolver
type ResolverOption func(*ProviderResolver)

// WithInstall registers the freshly created provider when the registry holds none under its name
func WithInstall(install bool) ResolverOption {
	return func(r *ProviderResolver) {
		r.install = install
	}
}

// WithLogger logs the outcome of the resolution
func WithLogger(l logger.Logger) ResolverOption {
	return func(r *ProviderResolver) {
		r.logger = l
	}
}

// ProviderResolver resolves the XCrypto provider handle exactly once: an instance of the same
// kind already registered under the XCrypto name is reused, otherwise a new one is kept.
type ProviderResolver struct {
	registry cryptoDomain.Registry
	install  bool
	logger   logger.Logger

	once     sync.Once
	provider *XCryptoProvider
	reused   bool
	err      error
}

// NewProviderResolver creates a resolver over registry. Share one resolver per process.
func NewProviderResolver(registry cryptoDomain.Registry, opts ...ResolverOption) *ProviderResolver {
	r := &ProviderResolver{registry: registry}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultProviderResolver returns the process-wide resolver over DefaultRegistry.
func DefaultProviderResolver() *ProviderResolver {
	defaultResolverOnce.Do(func() {
		defaultResolver = NewProviderResolver(DefaultRegistry())
	})
	return defaultResolver
}

// ResolveXCryptoProvider returns the process-wide XCrypto provider handle.
func ResolveXCryptoProvider() (*XCryptoProvider, error) {
	return DefaultProviderResolver().Resolve()
}

// Resolve returns the provider handle. Every call after the first returns the same result.
func (r *ProviderResolver) Resolve() (*XCryptoProvider, error) {
	r.once.Do(r.resolve)
	return r.provider, r.err
}

// Reused reports whether the handle is an instance that was already registered.
func (r *ProviderResolver) Reused() bool {
	r.once.Do(r.resolve)
	return r.reused
}

func (r *ProviderResolver) resolve() {
	candidate := NewXCryptoProvider()

	if r.registry == nil {
		r.provider = candidate
		return
	}

	resolved, reused, err := r.registry.ResolveOrInstall(candidate, isXCryptoProvider, r.install)
	if err != nil {
		r.err = fmt.Errorf("failed to resolve %s provider: %w", XCryptoProviderName, err)
		return
	}

	provider, ok := resolved.(*XCryptoProvider)
	if !ok {
		r.err = fmt.Errorf("failed to resolve %s provider: registry returned %T", XCryptoProviderName, resolved)
		return
	}

	r.provider = provider
	r.reused = reused

	if r.logger != nil {
		if reused {
			r.logger.Info("Reusing registered ", XCryptoProviderName, " provider")
		} else {
			r.logger.Info("Using new ", XCryptoProviderName, " provider instance (install=", r.install, ")")
		}
	}
}
