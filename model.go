package modelx

import "maps"

type (
	// Settings holds the freeform configuration of a model, keyed by
	// setting name. Values are arbitrary JSON-like data: scalars,
	// []any sequences or map[string]any mappings.
	Settings map[string]any

	// Property is one declarative property definition of a model.
	// It is the decoded form of a "properties" entry in a definition
	// document, e.g. {"type": "boolean", "required": true}.
	Property map[string]any

	// Relation connects a model to a target model. Relations are
	// created through the relation methods of Model and replaced
	// wholesale when redefined under the same name.
	Relation struct {
		// Name of the relation, also used as the "as" alias in the
		// option bag.
		Name string
		// Rel holds the relation kind.
		Rel Rel
		// Target is the related model.
		Target *Model
		// Options is the remaining relation option bag. It never
		// contains the "model" or "type" keys and always carries the
		// relation name under "as".
		Options map[string]any
	}

	// Method is a callable attached to a model by a behavior.
	Method func(args ...any) (any, error)
)

// Type returns the property type descriptor, or the empty string when
// the definition carries none.
func (p Property) Type() string {
	t, _ := p["type"].(string)
	return t
}

// Required reports whether the property is marked required.
func (p Property) Required() bool {
	r, _ := p["required"].(bool)
	return r
}

// Default returns the declared default value of the property.
func (p Property) Default() (any, bool) {
	v, ok := p["default"]
	return v, ok
}

// Clone returns a shallow copy of the property definition.
func (p Property) Clone() Property {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// Model is the in-memory handle of one named entity type. Handles are
// created by a Registry and mutated in place by the extension pass;
// the extension pass never creates one.
type Model struct {
	registry *Registry
	name     string
	settings Settings

	properties map[string]Property
	propOrder  []string

	relations []*Relation

	mixins map[string]any

	methods map[string]Method
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Registry returns the registry that owns the model.
func (m *Model) Registry() *Registry { return m.registry }

// Settings returns the mutable settings map of the model.
func (m *Model) Settings() Settings { return m.settings }

// Setting returns the value stored under the given setting name.
func (m *Model) Setting(name string) (any, bool) {
	v, ok := m.settings[name]
	return v, ok
}

// SetSetting stores a value under the given setting name, replacing
// any existing value. Merging policy is applied by the extend package,
// not here.
func (m *Model) SetSetting(name string, value any) {
	m.settings[name] = value
}

// DefineProperty adds or overwrites the named property. Properties are
// replaced wholesale; there is no per-property merge.
func (m *Model) DefineProperty(name string, def Property) {
	if _, ok := m.properties[name]; !ok {
		m.propOrder = append(m.propOrder, name)
	}
	m.properties[name] = def.Clone()
}

// Property returns the named property definition.
func (m *Model) Property(name string) (Property, bool) {
	p, ok := m.properties[name]
	return p, ok
}

// PropertyNames returns the property names in definition order.
func (m *Model) PropertyNames() []string {
	names := make([]string, len(m.propOrder))
	copy(names, m.propOrder)
	return names
}

// Relations returns the relations of the model in creation order.
func (m *Model) Relations() []*Relation {
	rels := make([]*Relation, len(m.relations))
	copy(rels, m.relations)
	return rels
}

// Relation returns the named relation.
func (m *Model) Relation(name string) (*Relation, bool) {
	for _, r := range m.relations {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// HasOne connects the model to at most one instance of target under
// the given relation name.
func (m *Model) HasOne(name string, target *Model, options map[string]any) (*Relation, error) {
	return m.relate(HasOne, name, target, options)
}

// HasMany connects the model to many instances of target under the
// given relation name.
func (m *Model) HasMany(name string, target *Model, options map[string]any) (*Relation, error) {
	return m.relate(HasMany, name, target, options)
}

// BelongsTo connects the model to the target owning it under the given
// relation name.
func (m *Model) BelongsTo(name string, target *Model, options map[string]any) (*Relation, error) {
	return m.relate(BelongsTo, name, target, options)
}

// ReferencesMany embeds a list of target references under the given
// relation name.
func (m *Model) ReferencesMany(name string, target *Model, options map[string]any) (*Relation, error) {
	return m.relate(ReferencesMany, name, target, options)
}

// Relate creates a relation of the given kind. It is the kind-generic
// form of the HasOne/HasMany/BelongsTo/ReferencesMany methods.
func (m *Model) Relate(kind Rel, name string, target *Model, options map[string]any) (*Relation, error) {
	return m.relate(kind, name, target, options)
}

func (m *Model) relate(kind Rel, name string, target *Model, options map[string]any) (*Relation, error) {
	switch kind {
	case HasOne, HasMany, BelongsTo, ReferencesMany:
	default:
		return nil, NewRelationError(m.name, name, kind.String(), "unsupported relation kind", nil)
	}
	if target == nil {
		return nil, NewRelationError(m.name, name, kind.String(), "nil target model", nil)
	}
	for _, key := range []string{"through", "polymorphic"} {
		if _, ok := options[key]; ok {
			return nil, NewRelationError(m.name, name, kind.String(), key+" relations are not supported", nil)
		}
	}
	bag := make(map[string]any, len(options)+1)
	maps.Copy(bag, options)
	// Reserved for relation dispatch; never part of the option bag.
	delete(bag, "model")
	delete(bag, "type")
	bag["as"] = name
	rel := &Relation{Name: name, Rel: kind, Target: target, Options: bag}
	for i, r := range m.relations {
		if r.Name == name {
			m.relations[i] = rel
			return rel, nil
		}
	}
	m.relations = append(m.relations, rel)
	return rel, nil
}

// Mix applies the named mixin with the given configuration. The mixin
// is resolved through the registry's mixin registrations; reapplying a
// name replaces its recorded configuration.
func (m *Model) Mix(name string, config any) error {
	mx, ok := m.registry.Mixer(name)
	if !ok {
		return NewMixinError(m.name, name, "mixin is not registered", nil)
	}
	if err := mx.Apply(m, config); err != nil {
		return NewMixinError(m.name, name, "apply failed", err)
	}
	m.mixins[name] = config
	return nil
}

// Mixins returns the applied mixin configurations keyed by mixin name.
func (m *Model) Mixins() map[string]any {
	return maps.Clone(m.mixins)
}

// SetMethod attaches a callable member under the given name,
// replacing any existing one. Behaviors use this to attach methods
// and statics to a model.
func (m *Model) SetMethod(name string, fn Method) {
	m.methods[name] = fn
}

// Method returns the named callable member.
func (m *Model) Method(name string) (Method, bool) {
	fn, ok := m.methods[name]
	return fn, ok
}
