// Package definition loads and decodes the definition documents that
// drive model extension.
//
// A definition document is a JSON or YAML file mapping setting names
// to arbitrary values. The keys "properties", "relations" and "mixins"
// are structural and decoded into dedicated sections; the reserved
// keys "name" and "base" are dropped; every remaining key is a
// freeform setting merged into the model by the extend package.
package definition

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/modelx"
)

// Document is the decoded form of one definition document.
type Document struct {
	// Properties holds the property definitions to apply, keyed by
	// property name.
	Properties map[string]modelx.Property
	// Relations holds the relation specs to apply, keyed by relation
	// name.
	Relations map[string]RelationSpec
	// Mixins holds the mixin configurations to apply, keyed by mixin
	// name.
	Mixins map[string]any
	// Settings holds every non-structural key of the document.
	Settings map[string]any
}

// RelationSpec describes how to connect the extended model to another
// model. The "type" and "model" keys of the raw entry are split out;
// Options carries everything else.
type RelationSpec struct {
	// Type is the relation kind as written in the document, e.g.
	// "hasOne" or "belongsTo".
	Type string
	// Model names the target model, resolved against the registry at
	// application time.
	Model string
	// Options is the remaining relation option bag.
	Options map[string]any
}

// Reserved document keys, only meaningful at model-creation time.
// They are dropped at decode time and never applied to a model.
const (
	keyName = "name"
	keyBase = "base"
)

// Decode builds a Document from the raw key/value form of a
// definition file.
func Decode(raw map[string]any) (*Document, error) {
	doc := &Document{
		Properties: make(map[string]modelx.Property),
		Relations:  make(map[string]RelationSpec),
		Mixins:     make(map[string]any),
		Settings:   make(map[string]any),
	}
	for key, value := range raw {
		switch key {
		case keyName, keyBase:
		case "properties":
			props, ok := value.(map[string]any)
			if !ok {
				return nil, modelx.NewDefinitionError("", "", fmt.Sprintf("properties: expected mapping, got %T", value), nil)
			}
			for name, def := range props {
				pm, ok := def.(map[string]any)
				if !ok {
					return nil, modelx.NewDefinitionError("", "", fmt.Sprintf("property %q: expected mapping, got %T", name, def), nil)
				}
				doc.Properties[name] = modelx.Property(pm)
			}
		case "relations":
			rels, ok := value.(map[string]any)
			if !ok {
				return nil, modelx.NewDefinitionError("", "", fmt.Sprintf("relations: expected mapping, got %T", value), nil)
			}
			for name, def := range rels {
				rm, ok := def.(map[string]any)
				if !ok {
					return nil, modelx.NewDefinitionError("", "", fmt.Sprintf("relation %q: expected mapping, got %T", name, def), nil)
				}
				doc.Relations[name] = newRelationSpec(rm)
			}
		case "mixins":
			mixins, ok := value.(map[string]any)
			if !ok {
				return nil, modelx.NewDefinitionError("", "", fmt.Sprintf("mixins: expected mapping, got %T", value), nil)
			}
			for name, config := range mixins {
				doc.Mixins[name] = config
			}
		default:
			doc.Settings[key] = value
		}
	}
	return doc, nil
}

func newRelationSpec(raw map[string]any) RelationSpec {
	spec := RelationSpec{Options: make(map[string]any, len(raw))}
	for key, value := range raw {
		switch key {
		case "type":
			spec.Type, _ = value.(string)
		case "model":
			spec.Model, _ = value.(string)
		default:
			spec.Options[key] = value
		}
	}
	return spec
}

// SettingNames returns the freeform setting names of the document in
// sorted order. The merge of one setting is independent of the others,
// so a sorted application order keeps the pass deterministic.
func (d *Document) SettingNames() []string {
	names := make([]string, 0, len(d.Settings))
	for name := range d.Settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse decodes the raw bytes of a definition file. The format is
// selected by the file extension: ".yaml" and ".yml" are parsed as
// YAML, everything else as JSON.
func Parse(data []byte, ext string) (*Document, error) {
	raw := make(map[string]any)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, modelx.NewDefinitionError("", "", "malformed YAML document", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, modelx.NewDefinitionError("", "", "malformed JSON document", err)
		}
	}
	return Decode(raw)
}

// Load reads and decodes the definition file at path. A missing or
// malformed file is fatal for the model being extended; there is no
// fallback.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, modelx.NewDefinitionError("", path, "cannot read definition file", err)
	}
	doc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		if defErr, ok := err.(*modelx.DefinitionError); ok {
			defErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}
