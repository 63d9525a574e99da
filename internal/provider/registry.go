package provider

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register adds a provider to the registry, replacing any provider with the
// same name.
func Register(p Provider) {
	mu.Lock()
	defer mu.Unlock()
	providers[p.Name()] = p
}

// Get returns a provider by name, or nil if not found.
func Get(name string) Provider {
	mu.RLock()
	defer mu.RUnlock()
	return providers[name]
}

// Lookup is like Get but returns ErrProviderNotFound for unknown names.
func Lookup(name string) (Provider, error) {
	if p := Get(name); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q (registered: %v)", ErrProviderNotFound, name, Names())
}

// Names returns the names of all registered providers, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes all registered providers. For testing only.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	providers = make(map[string]Provider)
}
