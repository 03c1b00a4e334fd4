package techniques

import (
	"fmt"
	"sort"
	"sync"

	"github.com/teilomillet/promptgen/utils"
)

// Factory builds a technique from its configuration.
type Factory func(cfg Config, logger utils.Logger) (Technique, error)

// Registry maps technique IDs to factories and holds one live instance
// per ID. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	order     []string
	instances map[string]Technique
	logger    utils.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(logger utils.Logger) *Registry {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]Technique),
		logger:    logger,
	}
}

// SetLogger replaces the registry's logger. Instances created afterwards
// log through it too.
func (r *Registry) SetLogger(logger utils.Logger) {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	r.mu.Lock()
	r.logger = logger
	r.mu.Unlock()
}

// Clone returns a registry with the same factories in the same order and
// no instances. It logs through a no-op logger until SetLogger is called.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := NewRegistry(nil)
	c.order = append(c.order, r.order...)
	for id, f := range r.factories {
		c.factories[id] = f
	}
	return c
}

// Register adds a factory under id. Registering an existing id replaces the
// factory and keeps its listing position.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		r.logger.Warn("Overwriting existing technique", "technique", id)
	} else {
		r.order = append(r.order, id)
	}
	r.factories[id] = f
	r.logger.Debug("Registered technique", "technique", id)
}

func (r *Registry) log() utils.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}

// IsRegistered reports whether a factory exists for id.
func (r *Registry) IsRegistered(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]
	return ok
}

// CreateInstance builds the technique registered under id and makes it the
// live instance for that id.
func (r *Registry) CreateInstance(id string, cfg Config) (Technique, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	logger := r.logger
	r.mu.RUnlock()
	if !ok {
		return nil, NewError(ErrorTypeUnknownTechnique, id, "no factory registered", nil)
	}

	t, err := f(cfg, logger)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.instances[id] = t
	r.mu.Unlock()
	return t, nil
}

// InitializeAll creates an instance for every registered factory. cfgs
// supplies per-ID configuration; IDs without one get an enabled default
// with priority 1.
func (r *Registry) InitializeAll(cfgs map[string]Config) error {
	for _, id := range r.ListAvailable() {
		cfg, ok := cfgs[id]
		if !ok {
			cfg = DefaultConfig(id)
		}
		if cfg.Name == "" {
			cfg.Name = id
		}
		if _, err := r.CreateInstance(id, cfg); err != nil {
			return fmt.Errorf("failed to initialize technique %s: %w", id, err)
		}
	}
	r.log().Info("Initialized techniques", "count", len(r.ListAvailable()))
	return nil
}

// DefaultConfig returns the configuration used for a technique that has
// none of its own.
func DefaultConfig(id string) Config {
	enabled := true
	return Config{
		Name:       id,
		Enabled:    &enabled,
		Priority:   1,
		Parameters: map[string]any{},
	}
}

// Instance returns the live instance for id.
func (r *Registry) Instance(id string) (Technique, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.instances[id]
	return t, ok
}

// Instances returns a copy of the live instances keyed by id.
func (r *Registry) Instances() map[string]Technique {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Technique, len(r.instances))
	for id, t := range r.instances {
		out[id] = t
	}
	return out
}

// ApplyTechnique applies one technique. A disabled technique, or one whose
// ValidateInput rejects the input, returns text unchanged.
func (r *Registry) ApplyTechnique(id, text string, ctx Context) (string, error) {
	t, ok := r.Instance(id)
	if !ok {
		return "", NewError(ErrorTypeNotInitialized, id, "technique not initialized", nil)
	}

	if !t.Enabled() {
		r.log().Warn("Technique is disabled", "technique", id)
		return text, nil
	}

	if !t.ValidateInput(text, ctx) {
		r.log().Warn("Input validation failed for technique", "technique", id)
		return text, nil
	}
	r.log().Debug("Validation passed for technique", "technique", id)

	result, err := t.Apply(text, ctx)
	if err != nil {
		r.log().Error("Error applying technique", "technique", id, "error", err)
		return "", NewError(ErrorTypeApply, id, "apply failed", err)
	}
	r.log().Info("Successfully applied technique", "technique", id)
	return result, nil
}

// SortByPriority orders ids by instance priority, highest first. Ties keep
// their input order; ids without an instance count as priority 0.
func (r *Registry) SortByPriority(ids []string) []string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	priority := func(id string) int {
		if t, ok := r.Instance(id); ok {
			return t.Priority()
		}
		return 0
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return priority(sorted[i]) > priority(sorted[j])
	})
	return sorted
}

// ApplyMultiple applies techniques in priority order, feeding each result
// into the next. Failures are logged and skipped. It returns the final text
// and the ids that were applied.
func (r *Registry) ApplyMultiple(ids []string, text string, ctx Context) (string, []string) {
	result := text
	applied := make([]string, 0, len(ids))

	for _, id := range r.SortByPriority(ids) {
		out, err := r.ApplyTechnique(id, result, ctx)
		if err != nil {
			r.log().Error("Failed to apply technique", "technique", id, "error", err)
			continue
		}
		result = out
		applied = append(applied, id)
	}

	r.log().Info("Applied techniques", "techniques", applied)
	return result, applied
}

// ListAvailable returns registered ids in registration order.
func (r *Registry) ListAvailable() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ListEnabled returns the ids of enabled instances in registration order.
func (r *Registry) ListEnabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.instances))
	for _, id := range r.order {
		if t, ok := r.instances[id]; ok && t.Enabled() {
			out = append(out, id)
		}
	}
	return out
}

var defaultRegistry = NewRegistry(nil)

// DefaultRegistry returns the shared registry. Every built-in technique is
// registered in it when the package loads; instances are created by
// InitializeAll.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
