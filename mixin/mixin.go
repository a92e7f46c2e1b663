// Package mixin provides ready-to-use mixin implementations for
// extended models.
//
// These mixins are OPTIONAL and provided as convenient starting
// points. Hosts register their own implementations of modelx.Mixer for
// project-specific needs.
//
// Available mixins:
//   - Timestamps: adds createdAt and updatedAt properties
//   - SoftDelete: adds a deletedAt property
//   - UUID: adds a string id property with a UUID generator method
//
// Usage:
//
//	reg := modelx.NewRegistry()
//	mixin.Install(reg)
//
// and in a definition document:
//
//	{
//	    "mixins": {
//	        "timestamps": true,
//	        "softDelete": {"property": "removedAt"}
//	    }
//	}
package mixin

import (
	"github.com/google/uuid"

	"github.com/syssam/modelx"
)

// Install registers all built-in mixins on the registry.
func Install(reg *modelx.Registry) {
	reg.RegisterMixin(Timestamps{}, SoftDelete{}, UUID{})
}

// configProperty reads a property-name override from a mixin
// configuration of the form {"<key>": "<name>"}.
func configProperty(config any, key, fallback string) string {
	cfg, ok := config.(map[string]any)
	if !ok {
		return fallback
	}
	if name, ok := cfg[key].(string); ok && name != "" {
		return name
	}
	return fallback
}

// Timestamps adds createdAt and updatedAt date properties.
// The configuration may rename either property:
//
//	"mixins": {"timestamps": {"createdAt": "created", "updatedAt": "modified"}}
type Timestamps struct{}

// Name of the mixin as used in definition documents.
func (Timestamps) Name() string { return "timestamps" }

// Apply defines the timestamp properties on the model.
func (Timestamps) Apply(m *modelx.Model, config any) error {
	m.DefineProperty(configProperty(config, "createdAt", "createdAt"), modelx.Property{
		"type":     "date",
		"required": true,
	})
	m.DefineProperty(configProperty(config, "updatedAt", "updatedAt"), modelx.Property{
		"type":     "date",
		"required": true,
	})
	return nil
}

// timestamps mixin must implement `Mixer` interface.
var _ modelx.Mixer = (*Timestamps)(nil)

// SoftDelete adds a nullable deletedAt date property. An unset value
// means the record is not deleted. The configuration may rename the
// property:
//
//	"mixins": {"softDelete": {"property": "removedAt"}}
type SoftDelete struct{}

// Name of the mixin as used in definition documents.
func (SoftDelete) Name() string { return "softDelete" }

// Apply defines the soft-delete property on the model.
func (SoftDelete) Apply(m *modelx.Model, config any) error {
	m.DefineProperty(configProperty(config, "property", "deletedAt"), modelx.Property{
		"type": "date",
	})
	return nil
}

// soft delete mixin must implement `Mixer` interface.
var _ modelx.Mixer = (*SoftDelete)(nil)

// UUID adds a string id property and attaches a "generateId" method
// returning a fresh UUID, for hosts that create records through the
// model handle. The configuration may rename the property:
//
//	"mixins": {"uuid": {"property": "guid"}}
type UUID struct{}

// Name of the mixin as used in definition documents.
func (UUID) Name() string { return "uuid" }

// Apply defines the id property and the generator method.
func (UUID) Apply(m *modelx.Model, config any) error {
	m.DefineProperty(configProperty(config, "property", "id"), modelx.Property{
		"type":      "string",
		"id":        true,
		"generated": true,
	})
	m.SetMethod("generateId", func(...any) (any, error) {
		return uuid.NewString(), nil
	})
	return nil
}

// uuid mixin must implement `Mixer` interface.
var _ modelx.Mixer = (*UUID)(nil)
