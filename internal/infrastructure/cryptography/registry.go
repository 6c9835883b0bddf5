package cryptography

import (
	"errors"
	"fmt"
	"sync"

	cryptoDomain "github.com/MGTheTrain/crypto-provider/internal/domain/crypto"
)

var (
	defaultRegistry     *ProviderRegistry
	defaultRegistryOnce sync.Once
)

// ProviderRegistry manages provider instances by name
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]cryptoDomain.Provider
	order     []string
}

// NewRegistry creates a new, empty provider registry
func NewRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]cryptoDomain.Provider),
	}
}

// DefaultRegistry returns the process-wide registry. It starts out holding the standard
// library provider.
func DefaultRegistry() *ProviderRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := defaultRegistry.Register(NewStdlibProvider()); err != nil {
			panic(fmt.Sprintf("failed to register %s provider: %v", StdlibProviderName, err))
		}
	})
	return defaultRegistry
}

// Register registers a provider instance
func (r *ProviderRegistry) Register(provider cryptoDomain.Provider) error {
	if provider == nil {
		return errors.New("provider cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.register(provider)
}

// register expects r.mu to be held for writing.
func (r *ProviderRegistry) register(provider cryptoDomain.Provider) error {
	info := cryptoDomain.ProviderInfo{
		Name:    provider.Name(),
		Version: provider.Version(),
		Info:    provider.Info(),
	}
	if err := info.Validate(); err != nil {
		return fmt.Errorf("invalid provider: %w", err)
	}

	if _, exists := r.providers[info.Name]; exists {
		return fmt.Errorf("%w: %s", cryptoDomain.ErrProviderAlreadyRegistered, info.Name)
	}

	r.providers[info.Name] = provider
	r.order = append(r.order, info.Name)
	return nil
}

// Unregister removes a provider from the registry
func (r *ProviderRegistry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[name]; !exists {
		return fmt.Errorf("%w: %s", cryptoDomain.ErrProviderNotFound, name)
	}

	delete(r.providers, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Provider looks up a provider by name
func (r *ProviderRegistry) Provider(name string) (cryptoDomain.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[name]
	return provider, ok
}

// Providers returns all providers in registration order
func (r *ProviderRegistry) Providers() []cryptoDomain.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]cryptoDomain.Provider, 0, len(r.order))
	for _, name := range r.order {
		providers = append(providers, r.providers[name])
	}
	return providers
}

// ResolveOrInstall returns the provider registered under the candidate's name when sameKind
// accepts it, otherwise the candidate. With install set the candidate claims a free name;
// a name held by a provider of another kind is never replaced.
func (r *ProviderRegistry) ResolveOrInstall(candidate cryptoDomain.Provider, sameKind func(cryptoDomain.Provider) bool, install bool) (cryptoDomain.Provider, bool, error) {
	if candidate == nil {
		return nil, false, errors.New("candidate provider cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if installed, ok := r.providers[candidate.Name()]; ok {
		if sameKind != nil && sameKind(installed) {
			return installed, true, nil
		}
		return candidate, false, nil
	}

	if install {
		if err := r.register(candidate); err != nil {
			return nil, false, err
		}
	}
	return candidate, false, nil
}

var _ cryptoDomain.Registry = (*ProviderRegistry)(nil)
