package transport

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a performer. Factories are registered with Register and
// called by NewPerformer.
type Factory func() Performer

var (
	registryMu sync.RWMutex
	performers = make(map[string]Factory)
)

// Register makes a performer available under name. It is typically called
// from init in the performer's package:
//
//	func init() {
//	    transport.Register("smig", func() transport.Performer {
//	        return New()
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("transport: Register factory is nil")
	}
	if _, dup := performers[name]; dup {
		panic("transport: Register called twice for " + name)
	}
	performers[name] = factory
}

// Unregister removes a performer. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(performers, name)
}

// NewPerformer creates the performer registered under name.
func NewPerformer(name string) (Performer, error) {
	registryMu.RLock()
	factory, ok := performers[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("transport: unknown performer %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustPerformer is like NewPerformer but panics on error.
func MustPerformer(name string) Performer {
	p, err := NewPerformer(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Performers returns the registered names in sorted order.
func Performers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(performers))
	for name := range performers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := performers[name]
	return ok
}
