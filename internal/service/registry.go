package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, cmd types.Command, sess *session.Session) types.Outcome
}

type route struct {
	provider  Provider
	operation types.Operation
}

// Registry maps console verbs to the providers that serve them
type Registry struct {
	services sync.Map
	mu       sync.RWMutex
	verbs    map[string]route
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{
		verbs: make(map[string]route),
	}
}

// Register adds a service provider. A verb may be served by only one
// provider.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services.Load(def.ID); exists {
		return fmt.Errorf("service already registered: %s", def.ID)
	}
	for _, op := range def.Operations {
		if op.Verb == "" {
			return fmt.Errorf("service %s has an operation without a verb", def.ID)
		}
		if owner, taken := r.verbs[op.Verb]; taken {
			return fmt.Errorf("verb %q already served by %s", op.Verb, owner.provider.Definition().ID)
		}
	}

	for _, op := range def.Operations {
		r.verbs[op.Verb] = route{provider: provider, operation: op}
	}
	r.services.Store(def.ID, provider)
	return nil
}

// Lookup finds the provider and operation contract for a verb. Verbs are
// case-sensitive.
func (r *Registry) Lookup(verb string) (Provider, types.Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.verbs[verb]
	if !ok {
		return nil, types.Operation{}, false
	}
	return rt.provider, rt.operation, true
}

// Verbs returns every registered verb in sorted order
func (r *Registry) Verbs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	verbs := make([]string, 0, len(r.verbs))
	for verb := range r.verbs {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, streaming int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		def := value.(Provider).Definition()
		total++
		categories[string(def.Category)]++
		for _, op := range def.Operations {
			if op.Streaming {
				streaming++
			}
		}
		return true
	})

	return map[string]interface{}{
		"total_services":  total,
		"total_verbs":     len(r.Verbs()),
		"streaming_verbs": streaming,
		"categories":      categories,
	}
}
