package mbms

import (
	"errors"
	"fmt"
	"sync"
)

// Registry manages the decision models of the service by name.
type Registry interface {
	Register(model Model) error
	Get(name string) (Model, error)
	List() []string
}

type modelRegistry struct {
	models map[string]Model
	mu     sync.RWMutex
}

// NewRegistry creates an empty model registry.
func NewRegistry() Registry {
	return &modelRegistry{
		models: make(map[string]Model),
	}
}

// Register adds a model to the registry at application startup.
func (r *modelRegistry) Register(model Model) error {
	if model == nil {
		return errors.New("model cannot be nil")
	}

	name := model.Name()
	if name == "" {
		return errors.New("model name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[name]; exists {
		return fmt.Errorf("model '%s' is already registered", name)
	}

	r.models[name] = model
	return nil
}

// Get returns the model registered under name.
func (r *modelRegistry) Get(name string) (Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, exists := r.models[name]
	if !exists {
		return nil, fmt.Errorf("model '%s' not found in registry", name)
	}

	return model, nil
}

// List returns the names of all registered models.
func (r *modelRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}

	return names
}
