// Package extend implements the model extension pass: it merges
// definition documents into registered model handles and invokes the
// behaviors attached to them.
//
// The pass runs once at application boot, synchronously, before the
// host starts serving. Extension of a model is all-or-nothing and a
// failure aborts the remaining models of the pass; nothing is retried.
package extend

import (
	"fmt"

	"github.com/syssam/modelx"
	"github.com/syssam/modelx/definition"
)

// Behavior attaches methods, statics or any other mutation to a model
// handle after its definition document has been applied. It is the
// static counterpart of the companion code file of other runtimes.
type Behavior func(*modelx.Model) error

// Request describes the extension of one model: which model to extend
// and where to find its definition file.
type Request struct {
	// Name of the model to extend. The model must already be
	// registered; extension never creates one.
	Name string
	// FilePath is the explicit definition file path. When set it wins
	// over FolderPath and FileName.
	FilePath string
	// FolderPath is the folder searched for the definition file.
	// Defaults to "models".
	FolderPath string
	// FileName is the definition file name inside FolderPath.
	// Defaults to the kebab-cased model name plus ".json".
	FileName string
	// Behavior is invoked after the definition document has been
	// applied. Optional.
	Behavior Behavior
}

func (r Request) path() string {
	return definition.Resolve(r.Name, r.FilePath, r.FolderPath, r.FileName)
}

// Extend runs one extension pass over the given models.
//
// models accepts a single model name, a Request, or a sequence mixing
// names, Requests and {name, options} mappings. Requests are applied
// in order; the first failure aborts the pass.
func Extend(reg *modelx.Registry, models any, opts ...Option) error {
	o, err := NewOptions(opts...)
	if err != nil {
		return err
	}
	reqs, err := normalizeRequests(models, o)
	if err != nil {
		return err
	}
	for _, req := range reqs {
		if err := extendOne(reg, req, o); err != nil {
			return err
		}
	}
	return nil
}

// normalizeRequests turns the caller-supplied models value into an
// ordered request list. Malformed entries are not rejected here; a
// request whose name does not resolve to a registered model fails at
// lookup time instead.
func normalizeRequests(models any, o *Options) ([]Request, error) {
	var reqs []Request
	switch v := models.(type) {
	case string:
		reqs = []Request{{Name: v}}
	case Request:
		reqs = []Request{v}
	case *Request:
		reqs = []Request{*v}
	case []string:
		for _, name := range v {
			reqs = append(reqs, Request{Name: name})
		}
	case []Request:
		reqs = append(reqs, v...)
	case map[string]any:
		reqs = []Request{requestFromMap(v)}
	case []any:
		for _, entry := range v {
			switch e := entry.(type) {
			case string:
				reqs = append(reqs, Request{Name: e})
			case Request:
				reqs = append(reqs, e)
			case *Request:
				reqs = append(reqs, *e)
			case map[string]any:
				reqs = append(reqs, requestFromMap(e))
			default:
				return nil, fmt.Errorf("modelx: unsupported models entry of type %T", entry)
			}
		}
	default:
		return nil, fmt.Errorf("modelx: unsupported models value of type %T", models)
	}
	for i := range reqs {
		if reqs[i].FolderPath == "" {
			reqs[i].FolderPath = o.FolderPath
		}
		if reqs[i].Behavior == nil {
			reqs[i].Behavior = o.Behaviors[reqs[i].Name]
		}
	}
	return reqs, nil
}

// requestFromMap decodes the {name, options} mapping form of a models
// entry, e.g. {"name": "User", "options": {"fileName": "user.yaml"}}.
func requestFromMap(entry map[string]any) Request {
	var req Request
	req.Name, _ = entry["name"].(string)
	if opts, ok := entry["options"].(map[string]any); ok {
		req.FilePath, _ = opts["filePath"].(string)
		req.FolderPath, _ = opts["folderPath"].(string)
		req.FileName, _ = opts["fileName"].(string)
	}
	return req
}

func extendOne(reg *modelx.Registry, req Request, o *Options) error {
	model, err := reg.Model(req.Name)
	if err != nil {
		return err
	}
	path := req.path()
	o.Logger.Debug().Str("model", req.Name).Str("path", path).Msg("extending model")
	doc, err := definition.Load(path)
	if err != nil {
		if defErr, ok := err.(*modelx.DefinitionError); ok {
			defErr.Model = req.Name
		}
		return err
	}
	if err := ApplyDocument(model, doc); err != nil {
		return err
	}
	if req.Behavior != nil {
		if err := req.Behavior(model); err != nil {
			return fmt.Errorf("modelx: behavior for model %q: %w", req.Name, err)
		}
	}
	o.Logger.Info().
		Str("model", req.Name).
		Int("properties", len(doc.Properties)).
		Int("relations", len(doc.Relations)).
		Int("mixins", len(doc.Mixins)).
		Int("settings", len(doc.Settings)).
		Msg("model extended")
	return nil
}

// ApplyDocument merges one decoded definition document into the model:
// properties are defined (full replacement per name), relations are
// created against the model's registry, mixins are applied, and every
// freeform setting is merged by MergeSetting. The reserved keys "name"
// and "base" were already dropped at decode time.
func ApplyDocument(m *modelx.Model, doc *definition.Document) error {
	for _, name := range sortedKeys(doc.Properties) {
		m.DefineProperty(name, doc.Properties[name])
	}
	for _, name := range sortedKeys(doc.Relations) {
		if err := applyRelation(m, name, doc.Relations[name]); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(doc.Mixins) {
		if err := m.Mix(name, doc.Mixins[name]); err != nil {
			return err
		}
	}
	for _, name := range doc.SettingNames() {
		existing, _ := m.Setting(name)
		m.SetSetting(name, MergeSetting(existing, doc.Settings[name]))
	}
	return nil
}

// applyRelation creates one relation from its spec: the target model
// is resolved through the owning model's registry and the relation
// kind dispatches to the matching creation method.
func applyRelation(m *modelx.Model, name string, spec definition.RelationSpec) error {
	kind, err := modelx.ParseRel(spec.Type)
	if err != nil {
		if relErr, ok := err.(*modelx.RelationError); ok {
			relErr.Model = m.Name()
			relErr.Relation = name
		}
		return err
	}
	target, ok := m.Registry().Lookup(spec.Model)
	if !ok {
		return modelx.NewRelationError(m.Name(), name, spec.Type,
			fmt.Sprintf("target model %q not found", spec.Model), modelx.ErrModelNotFound)
	}
	_, err = m.Relate(kind, name, target, spec.Options)
	return err
}
