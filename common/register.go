package common

import (
	"fmt"
	"sync"
)

// Registry maps a plain language code (not validated against ISO 639, since
// this module only ever registers "zho" and "jpn") to the MatchProviders
// available for it.
type Registry struct {
	mu        sync.RWMutex
	providers map[string][]MatchProvider
}

var GlobalRegistry = &Registry{providers: map[string][]MatchProvider{}}

// Register adds p to languageCode's provider list. Re-registering the same
// provider Name for a language replaces the earlier entry rather than
// appending a duplicate.
func Register(languageCode string, p MatchProvider) error {
	if languageCode == "" {
		return fmt.Errorf("common: empty language code")
	}
	if p == nil {
		return fmt.Errorf("common: nil provider for language %q", languageCode)
	}
	GlobalRegistry.mu.Lock()
	defer GlobalRegistry.mu.Unlock()
	existing := GlobalRegistry.providers[languageCode]
	for i, e := range existing {
		if e.Name() == p.Name() {
			existing[i] = p
			GlobalRegistry.providers[languageCode] = existing
			return nil
		}
	}
	GlobalRegistry.providers[languageCode] = append(existing, p)
	return nil
}

// Providers returns the MatchProviders registered for languageCode, in
// registration order.
func Providers(languageCode string) ([]MatchProvider, bool) {
	GlobalRegistry.mu.RLock()
	defer GlobalRegistry.mu.RUnlock()
	p, ok := GlobalRegistry.providers[languageCode]
	return p, ok
}

// ProviderByType returns the first registered provider for languageCode
// whose GetType matches t.
func ProviderByType(languageCode string, t ProviderType) (MatchProvider, bool) {
	GlobalRegistry.mu.RLock()
	defer GlobalRegistry.mu.RUnlock()
	for _, p := range GlobalRegistry.providers[languageCode] {
		if p.GetType() == t {
			return p, true
		}
	}
	return nil, false
}

// IsRegistered reports whether any provider exists for languageCode.
func IsRegistered(languageCode string) bool {
	GlobalRegistry.mu.RLock()
	defer GlobalRegistry.mu.RUnlock()
	_, ok := GlobalRegistry.providers[languageCode]
	return ok
}
