package roster

import (
	"slices"
	"sync"
)

var (
	catalog   = make(map[string]*Registry)
	catalogMu sync.RWMutex
)

// Use returns the registry cataloged under typeName or builds and catalogs one.
// build runs at most once per name until Reset is called.
func Use(typeName string, build func() *Registry) *Registry {
	// Fast path: read-lock cache check
	catalogMu.RLock()
	if cached, ok := catalog[typeName]; ok {
		catalogMu.RUnlock()
		return cached
	}
	catalogMu.RUnlock()

	// Slow path: build and cache with write-lock
	catalogMu.Lock()
	defer catalogMu.Unlock()

	// Double-check pattern
	if cached, ok := catalog[typeName]; ok {
		return cached
	}

	r := build()
	if r == nil {
		r = New(nil, WithTypeName(typeName))
	}
	catalog[typeName] = r
	return r
}

// Lookup returns the registry cataloged under typeName.
func Lookup(typeName string) (*Registry, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	r, ok := catalog[typeName]
	return r, ok
}

// Cataloged returns the cataloged type names in sorted order.
func Cataloged() []string {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset clears the catalog.
// This is primarily useful for test isolation.
func Reset() {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = make(map[string]*Registry)
}
