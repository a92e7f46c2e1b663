package modelx

import "fmt"

// Mixer is implemented by reusable mixins that can be applied to
// models. Implementations live in the mixin package; hosts may
// register their own.
type Mixer interface {
	// Name is the mixin name used in the "mixins" section of a
	// definition document.
	Name() string
	// Apply mutates the model according to the mixin configuration.
	Apply(m *Model, config any) error
}

// Registry holds the model handles of a host application, indexed by
// name, together with the mixins available to them. It is passed
// explicitly wherever models are resolved; there is no ambient
// process-wide registry.
type Registry struct {
	models map[string]*Model
	order  []string
	mixers map[string]Mixer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[string]*Model),
		mixers: make(map[string]Mixer),
	}
}

// Define creates and registers a new model handle. It fails if a model
// with the same name is already registered.
func (r *Registry) Define(name string) (*Model, error) {
	if name == "" {
		return nil, fmt.Errorf("modelx: model name cannot be empty")
	}
	if _, ok := r.models[name]; ok {
		return nil, fmt.Errorf("modelx: model %q already defined", name)
	}
	m := &Model{
		registry:   r,
		name:       name,
		settings:   make(Settings),
		properties: make(map[string]Property),
		mixins:     make(map[string]any),
		methods:    make(map[string]Method),
	}
	r.models[name] = m
	r.order = append(r.order, name)
	return m, nil
}

// MustDefine creates and registers a new model handle.
// It panics if the model cannot be defined.
func (r *Registry) MustDefine(name string) *Model {
	m, err := r.Define(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the named model handle.
func (r *Registry) Lookup(name string) (*Model, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Model returns the named model handle, or a NotFoundError when the
// name is not registered.
func (r *Registry) Model(name string) (*Model, error) {
	m, ok := r.models[name]
	if !ok {
		return nil, NewNotFoundError(name)
	}
	return m, nil
}

// Models returns all registered model handles in definition order.
func (r *Registry) Models() []*Model {
	models := make([]*Model, 0, len(r.order))
	for _, name := range r.order {
		models = append(models, r.models[name])
	}
	return models
}

// RegisterMixin registers mixins for use by the models of this
// registry. Registering a name again replaces the previous mixin.
func (r *Registry) RegisterMixin(mixers ...Mixer) {
	for _, mx := range mixers {
		r.mixers[mx.Name()] = mx
	}
}

// Mixer returns the registered mixin with the given name.
func (r *Registry) Mixer(name string) (Mixer, bool) {
	mx, ok := r.mixers[name]
	return mx, ok
}
