package schema

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Spec)
)

// Register registers a spec in the global registry
func Register(s *Spec) error {
	if s == nil {
		return fmt.Errorf("cannot register nil spec")
	}
	if s.Name == "" {
		return fmt.Errorf("spec must have a name")
	}
	seen := map[string]bool{}
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("spec %q has a field without a name", s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("spec %q declares field %q twice", s.Name, f.Name)
		}
		seen[f.Name] = true
		if f.New == nil || f.Get == nil || f.Set == nil {
			return fmt.Errorf("spec %q field %q needs New, Get and Set", s.Name, f.Name)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[s.Name]; exists {
		return fmt.Errorf("spec %q already registered", s.Name)
	}

	registry[s.Name] = s
	return nil
}

// MustRegister is Register for package-init registration calls.
func MustRegister(s *Spec) *Spec {
	if err := Register(s); err != nil {
		panic(err)
	}
	return s
}

// Lookup looks up a spec by name
func Lookup(name string) *Spec {
	mu.RLock()
	defer mu.RUnlock()
	s := registry[name]
	return s
}

// All returns all registered specs
func All() map[string]*Spec {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]*Spec, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}
